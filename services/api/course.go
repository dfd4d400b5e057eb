package apisvc

import (
	"context"
	"net/http"
	"net/url"

	"github.com/trezcool/attainment/core/course"
)

var _ course.API = (*Client)(nil)

func (c *Client) AddCourse(ctx context.Context, token string, p course.Payload) error {
	return c.do(ctx, request{
		op:     "add_course",
		method: http.MethodPost,
		path:   "/admin/course/add-course",
		token:  token,
		body:   p,
	}, nil)
}

func (c *Client) UpdateCourse(ctx context.Context, token, courseID string, p course.Payload) error {
	return c.do(ctx, request{
		op:     "update_course",
		method: http.MethodPut,
		path:   "/admin/course/update-course/" + url.PathEscape(courseID),
		token:  token,
		body:   p,
	}, nil)
}

func (c *Client) Courses(ctx context.Context, token string) ([]course.Payload, error) {
	var courses []course.Payload
	err := c.list(ctx, request{op: "courses", path: "/admin/course/get-courses", token: token}, &courses)
	return courses, err
}
