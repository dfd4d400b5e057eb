package course

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/attainment/core"
	"github.com/trezcool/attainment/core/session"
)

const (
	unauthorizedText = "Unauthorized: Please log in again."
	addedText        = "Course added successfully!"
	addFailedText    = "Failed to add course. Please try again."
	updatedText      = "Course updated successfully!"
	updateFailedText = "Failed to update course. Please try again."
)

type (
	// API is the remote course API.
	API interface {
		AddCourse(ctx context.Context, token string, p Payload) error
		UpdateCourse(ctx context.Context, token, courseID string, p Payload) error
		Courses(ctx context.Context, token string) ([]Payload, error)
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

// Submit validates the form and sends it as a new course.
// On success the form is reset; on failure it is left as is so that the user can retry.
func (svc *Service) Submit(ctx context.Context, form *Form) error {
	return svc.submit(ctx, form, addedText, addFailedText, func(token string, p Payload) error {
		return svc.api.AddCourse(ctx, token, p)
	})
}

// Update validates the form and sends it as the new version of course `courseID`.
func (svc *Service) Update(ctx context.Context, courseID string, form *Form) error {
	return svc.submit(ctx, form, updatedText, updateFailedText, func(token string, p Payload) error {
		return svc.api.UpdateCourse(ctx, token, courseID, p)
	})
}

func (svc *Service) submit(
	ctx context.Context,
	form *Form,
	successText, failureText string,
	send func(token string, p Payload) error,
) error {
	if !form.Validate() {
		return core.NewValidationError(core.ErrInvalidForm, form.Errors.FieldErrors()...)
	}

	cred, ok := session.Authorized(ctx, svc.sessions)
	if !ok {
		svc.notifier.Notify(core.NewFailure(unauthorizedText))
		return core.ErrUnauthorized
	}

	if err := send(cred.AccessToken, form.Record.Payload()); err != nil {
		svc.logger.Error("submitting course", err, cred.User)
		msg := core.ServerMessage(err)
		if msg == "" {
			msg = failureText
		}
		svc.notifier.Notify(core.NewFailure(msg))
		return errors.Wrap(err, "submitting course")
	}

	form.Reset()
	svc.notifier.Notify(core.NewSuccess(successText))
	return nil
}

// List fetches every course, for the courses screen.
func (svc *Service) List(ctx context.Context) ([]Payload, error) {
	cred, ok := session.Authorized(ctx, svc.sessions)
	if !ok {
		svc.notifier.Notify(core.NewFailure(unauthorizedText))
		return nil, core.ErrUnauthorized
	}
	courses, err := svc.api.Courses(ctx, cred.AccessToken)
	if err != nil {
		svc.logger.Error("fetching courses", err, cred.User)
		return nil, errors.Wrap(err, "fetching courses")
	}
	return courses, nil
}
