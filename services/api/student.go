package apisvc

import (
	"context"
	"net/http"
	"net/url"

	"github.com/trezcool/attainment/core/student"
)

var _ student.API = (*Client)(nil)

func (c *Client) Students(ctx context.Context, deptID string) ([]student.Student, error) {
	q := url.Values{"dept_id": {deptID}}
	var students []student.Student
	err := c.list(ctx, request{op: "students", path: "/admin/student/get-students?" + q.Encode()}, &students)
	return students, err
}

func (c *Client) UpdateStudent(ctx context.Context, token string, s student.Student) error {
	return c.do(ctx, request{
		op:     "update_student",
		method: http.MethodPut,
		path:   "/admin/student/update-student/" + url.PathEscape(s.RollNo.String()),
		token:  token,
		body:   s,
	}, nil)
}
