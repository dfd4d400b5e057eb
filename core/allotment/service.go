package allotment

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/attainment/core"
	"github.com/trezcool/attainment/core/session"
)

const (
	unauthorizedText    = "Unauthorized: Please log in again."
	facultyFailedText   = "Failed to fetch course allotment data! Please try again later."
	allottedFailedText  = "Failed to fetch course allotments. Please try again."
	noAllotmentsText    = "No course allotments found."
	coordinatorFailText = "Failed to fetch courses. Please try again."
)

var ErrNoAllotments = errors.New(noAllotmentsText)

type (
	// API is the remote course allotment API.
	API interface {
		FacultyCourses(ctx context.Context, userID string) ([]Course, error)
		CoordinatorCourses(ctx context.Context, token, facultyID string) ([]Course, error)
		AllottedCourses(ctx context.Context, token string) ([]Course, error)
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

// FacultyCourses fetches the courses the logged in faculty member enters marks for.
func (svc *Service) FacultyCourses(ctx context.Context) ([]Course, error) {
	cred, ok := svc.sessions.Credential(ctx)
	if !ok || cred.User.ID == "" {
		return nil, core.ErrUnauthorized
	}
	courses, err := svc.api.FacultyCourses(ctx, cred.User.ID.String())
	if err != nil {
		svc.logger.Error("fetching faculty courses", err, cred.User)
		svc.notifier.Notify(core.NewFailure(facultyFailedText))
		return nil, errors.Wrap(err, "fetching faculty courses")
	}
	return courses, nil
}

// CoordinatorCourses fetches the courses coordinated by the logged in user.
func (svc *Service) CoordinatorCourses(ctx context.Context) ([]Course, error) {
	cred, ok := session.Authorized(ctx, svc.sessions)
	if !ok {
		return nil, core.ErrUnauthorized
	}
	courses, err := svc.api.CoordinatorCourses(ctx, cred.AccessToken, cred.User.ID.String())
	if err != nil {
		svc.logger.Error("fetching coordinator courses", err, cred.User)
		svc.notifier.Notify(core.NewFailure(coordinatorFailText))
		return nil, errors.Wrap(err, "fetching coordinator courses")
	}
	return courses, nil
}

// AllottedCourses fetches every course allotment, for reports & analysis.
// An empty result is reported as ErrNoAllotments.
func (svc *Service) AllottedCourses(ctx context.Context) ([]Course, error) {
	cred, ok := session.Authorized(ctx, svc.sessions)
	if !ok {
		svc.notifier.Notify(core.NewFailure(unauthorizedText))
		return nil, core.ErrUnauthorized
	}
	courses, err := svc.api.AllottedCourses(ctx, cred.AccessToken)
	if err != nil {
		svc.logger.Error("fetching allotted courses", err, cred.User)
		svc.notifier.Notify(core.NewFailure(allottedFailedText))
		return nil, errors.Wrap(err, "fetching allotted courses")
	}
	if len(courses) == 0 {
		return nil, ErrNoAllotments
	}
	return courses, nil
}
