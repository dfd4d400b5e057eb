package student_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/attainment/core"
	"github.com/trezcool/attainment/core/session"
	"github.com/trezcool/attainment/core/student"
	testutil "github.com/trezcool/attainment/tests"
)

var (
	deptAdmin = session.User{ID: "9", Name: "Computer Dept", Role: session.RoleAdmin}
	asha      = student.Student{
		RollNo:       "101",
		Name:         "Asha Patil",
		Email:        "asha@college.edu",
		MobileNo:     "9876543210",
		Class:        "SE1",
		AcademicYear: "2023-24",
		DeptID:       "9",
	}
	other = student.Student{RollNo: "501", Name: "Other Dept", Class: "SE1", DeptID: "4"}
)

func setup(t *testing.T) (*testutil.Env, *student.Service) {
	env := testutil.Setup(t)
	env.Stub.SeedStudents(asha, other)
	return env, student.NewService(env.Client, env.Sessions, env.Notifier, env.Logger)
}

func TestServiceLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("department of the user", func(t *testing.T) {
		env, svc := setup(t)
		env.Login(t, deptAdmin)

		students, err := svc.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []student.Student{asha}, students)

		reqs := env.Stub.RequestsTo(http.MethodGet, "/admin/student/get-students")
		require.Len(t, reqs, 1)
		assert.Equal(t, "dept_id=9", reqs[0].Query)
	})

	t.Run("dept_id wins over the user id", func(t *testing.T) {
		env, svc := setup(t)
		env.Login(t, session.User{ID: "77", Role: session.RoleAdmin, DeptID: "4"})

		students, err := svc.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []student.Student{other}, students)
	})

	t.Run("no credential", func(t *testing.T) {
		env, svc := setup(t)
		_, err := svc.Load(ctx)
		assert.Equal(t, core.ErrUnauthorized, err)
		assert.Empty(t, env.Stub.Requests())
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success reloads", func(t *testing.T) {
		env, svc := setup(t)
		cred := env.Login(t, deptAdmin)

		edited := asha
		edited.MobileNo = "9123456780"
		edited.DeptID = ""
		students, err := svc.Update(ctx, edited)
		require.NoError(t, err)

		edited.DeptID = "9"
		assert.Equal(t, []student.Student{edited}, students)
		assert.Equal(t, core.NewSuccess("Student updated successfully!"), env.LastNotification(t))

		reqs := env.Stub.RequestsTo(http.MethodPut, "/admin/student/update-student/101")
		require.Len(t, reqs, 1)
		assert.Equal(t, "Bearer "+cred.AccessToken, reqs[0].Authorization)
		var sent student.Student
		require.NoError(t, json.Unmarshal(reqs[0].Body, &sent))
		assert.Equal(t, edited, sent)
	})

	t.Run("invalid student is not sent", func(t *testing.T) {
		env, svc := setup(t)
		env.Login(t, deptAdmin)

		bad := asha
		bad.Email = "asha@college"
		_, err := svc.Update(ctx, bad)
		require.True(t, core.IsValidation(err))
		assert.Equal(t, map[string]string{"email": "Invalid email format."}, err.(*core.ValidationError).FieldMap())
		assert.Empty(t, env.Stub.Requests())
		assert.Empty(t, env.Notifier.Notifications())
	})

	t.Run("failure", func(t *testing.T) {
		env, svc := setup(t)
		env.Login(t, deptAdmin)

		unknown := asha
		unknown.RollNo = "999"
		_, err := svc.Update(ctx, unknown)
		require.Error(t, err)
		assert.Equal(t, core.NewFailure("Failed to update student. Please try again."), env.LastNotification(t))
		assert.Empty(t, env.Stub.RequestsTo(http.MethodGet, "/admin/student/get-students"))
	})
}
