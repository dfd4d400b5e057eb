package student

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/attainment/core"
	"github.com/trezcool/attainment/core/session"
)

const (
	unauthorizedText = "Unauthorized: Please log in again."
	updatedText      = "Student updated successfully!"
	updateFailedText = "Failed to update student. Please try again."
)

var errInvalidStudent = errors.New("student has validation errors")

type (
	// API is the remote student API.
	API interface {
		Students(ctx context.Context, deptID string) ([]Student, error)
		UpdateStudent(ctx context.Context, token string, s Student) error
	}

	Service struct {
		api      API
		sessions session.Store
		notifier core.Notifier
		logger   core.Logger
	}
)

func NewService(api API, sessions session.Store, notifier core.Notifier, logger core.Logger) *Service {
	return &Service{
		api:      api,
		sessions: sessions,
		notifier: notifier,
		logger:   logger,
	}
}

// department is the logged in user's department: its dept_id, or its own id for department accounts.
func department(cred session.Credential) string {
	if cred.User.DeptID != "" {
		return cred.User.DeptID.String()
	}
	return cred.User.ID.String()
}

// Load fetches the students of the logged in user's department.
func (svc *Service) Load(ctx context.Context) ([]Student, error) {
	cred, ok := svc.sessions.Credential(ctx)
	if !ok || department(cred) == "" {
		return nil, core.ErrUnauthorized
	}
	students, err := svc.api.Students(ctx, department(cred))
	if err != nil {
		svc.logger.Error("fetching students", err, cred.User)
		return nil, errors.Wrap(err, "fetching students")
	}
	return students, nil
}

// Update validates s, sends it and returns the reloaded student list.
// Validation failures are returned as a *core.ValidationError and nothing is sent.
func (svc *Service) Update(ctx context.Context, s Student) ([]Student, error) {
	if errs := ValidateUpdate(s); len(errs) > 0 {
		flds := make([]core.FieldError, 0, len(errs))
		for fld, msg := range errs {
			flds = append(flds, core.FieldError{Field: fld, Error: msg})
		}
		return nil, core.NewValidationError(errInvalidStudent, flds...)
	}

	cred, ok := session.Authorized(ctx, svc.sessions)
	if !ok || department(cred) == "" {
		svc.notifier.Notify(core.NewFailure(unauthorizedText))
		return nil, core.ErrUnauthorized
	}
	s.DeptID = core.ID(department(cred))

	if err := svc.api.UpdateStudent(ctx, cred.AccessToken, s); err != nil {
		svc.logger.Error("updating student", err, cred.User)
		svc.notifier.Notify(core.NewFailure(updateFailedText))
		return nil, errors.Wrap(err, "updating student")
	}
	svc.notifier.Notify(core.NewSuccess(updatedText))
	return svc.Load(ctx)
}
