package allotment_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/attainment/core"
	"github.com/trezcool/attainment/core/allotment"
	"github.com/trezcool/attainment/core/session"
	testutil "github.com/trezcool/attainment/tests"
)

var (
	faculty     = session.User{ID: "12", Name: "Meera", Role: session.RoleFaculty}
	coordinator = session.User{ID: "20", Name: "Kabir", Role: session.RoleCoordinator}

	ds  = allotment.Course{CourseID: "CS201", CourseName: "Data Structures", AcademicYear: "2023-24", Sem: "3", FacultyID: "12"}
	dbs = allotment.Course{CourseID: "CS301", CourseName: "Databases", AcademicYear: "2023-24", Sem: "5", FacultyID: "20"}
)

func setup(t *testing.T, seed ...allotment.Course) (*testutil.Env, *allotment.Service) {
	env := testutil.Setup(t)
	env.Stub.SeedAllotments(seed...)
	return env, allotment.NewService(env.Client, env.Sessions, env.Notifier, env.Logger)
}

func TestFacultyCourses(t *testing.T) {
	ctx := context.Background()

	t.Run("by user id, without token", func(t *testing.T) {
		env, svc := setup(t, ds, dbs)
		require.NoError(t, env.Sessions.Save(ctx, session.Credential{AccessToken: "opaque", User: faculty}))

		courses, err := svc.FacultyCourses(ctx)
		require.NoError(t, err)
		assert.Equal(t, []allotment.Course{ds}, courses)

		reqs := env.Stub.RequestsTo(http.MethodGet, "/marks/faculty_addmarks/12")
		require.Len(t, reqs, 1)
		assert.Empty(t, reqs[0].Authorization)
	})

	t.Run("not logged in", func(t *testing.T) {
		env, svc := setup(t, ds)
		_, err := svc.FacultyCourses(ctx)
		assert.Equal(t, core.ErrUnauthorized, err)
		assert.Empty(t, env.Stub.Requests())
	})

	t.Run("failure", func(t *testing.T) {
		env, svc := setup(t, ds)
		env.Login(t, faculty)
		env.Stub.Fail(http.MethodGet, "/marks/faculty_addmarks/12", http.StatusInternalServerError, "boom")

		_, err := svc.FacultyCourses(ctx)
		require.Error(t, err)
		assert.Equal(t, core.NewFailure("Failed to fetch course allotment data! Please try again later."), env.LastNotification(t))
	})
}

func TestCoordinatorCourses(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		env, svc := setup(t, ds, dbs)
		cred := env.Login(t, coordinator)

		courses, err := svc.CoordinatorCourses(ctx)
		require.NoError(t, err)
		assert.Equal(t, []allotment.Course{dbs}, courses)

		reqs := env.Stub.RequestsTo(http.MethodGet, "/attainment/coordinator-courses")
		require.Len(t, reqs, 1)
		assert.Equal(t, "faculty_id=20", reqs[0].Query)
		assert.Equal(t, "Bearer "+cred.AccessToken, reqs[0].Authorization)
	})

	t.Run("no credential", func(t *testing.T) {
		env, svc := setup(t, ds)
		_, err := svc.CoordinatorCourses(ctx)
		assert.Equal(t, core.ErrUnauthorized, err)
		assert.Empty(t, env.Stub.Requests())
	})

	t.Run("failure", func(t *testing.T) {
		env, svc := setup(t)
		env.Login(t, coordinator)
		env.Stub.Fail(http.MethodGet, "/attainment/coordinator-courses", http.StatusForbidden, "permission denied")

		_, err := svc.CoordinatorCourses(ctx)
		require.Error(t, err)
		assert.Equal(t, core.NewFailure("Failed to fetch courses. Please try again."), env.LastNotification(t))
	})
}

func TestAllottedCourses(t *testing.T) {
	ctx := context.Background()

	t.Run("data envelope", func(t *testing.T) {
		env, svc := setup(t, ds, dbs)
		env.Login(t, session.User{ID: "1", Role: session.RoleAdmin})

		courses, err := svc.AllottedCourses(ctx)
		require.NoError(t, err)
		assert.Equal(t, []allotment.Course{ds, dbs}, courses)
	})

	t.Run("none", func(t *testing.T) {
		env, svc := setup(t)
		env.Login(t, session.User{ID: "1", Role: session.RoleAdmin})

		_, err := svc.AllottedCourses(ctx)
		assert.Equal(t, allotment.ErrNoAllotments, err)
		assert.Equal(t, "No course allotments found.", err.Error())
	})

	t.Run("no credential", func(t *testing.T) {
		env, svc := setup(t, ds)
		_, err := svc.AllottedCourses(ctx)
		assert.Equal(t, core.ErrUnauthorized, err)
		assert.Equal(t, core.NewFailure("Unauthorized: Please log in again."), env.LastNotification(t))
	})

	t.Run("failure", func(t *testing.T) {
		env, svc := setup(t, ds)
		env.Login(t, session.User{ID: "1", Role: session.RoleAdmin})
		env.Stub.Fail(http.MethodGet, "/admin/allotment/get-allotted-courses", http.StatusInternalServerError, "")

		_, err := svc.AllottedCourses(ctx)
		require.Error(t, err)
		assert.Equal(t, core.NewFailure("Failed to fetch course allotments. Please try again."), env.LastNotification(t))
	})
}
