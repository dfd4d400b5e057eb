package apisvc

import (
	"context"
	"net/url"

	"github.com/trezcool/attainment/core/allotment"
)

var _ allotment.API = (*Client)(nil)

// FacultyCourses is public: the backend only needs the faculty member's id.
func (c *Client) FacultyCourses(ctx context.Context, userID string) ([]allotment.Course, error) {
	var courses []allotment.Course
	err := c.list(ctx, request{
		op:   "faculty_courses",
		path: "/marks/faculty_addmarks/" + url.PathEscape(userID),
	}, &courses)
	return courses, err
}

func (c *Client) CoordinatorCourses(ctx context.Context, token, facultyID string) ([]allotment.Course, error) {
	q := url.Values{"faculty_id": {facultyID}}
	var courses []allotment.Course
	err := c.list(ctx, request{
		op:    "coordinator_courses",
		path:  "/attainment/coordinator-courses?" + q.Encode(),
		token: token,
	}, &courses)
	return courses, err
}

func (c *Client) AllottedCourses(ctx context.Context, token string) ([]allotment.Course, error) {
	var courses []allotment.Course
	err := c.list(ctx, request{
		op:    "allotted_courses",
		path:  "/admin/allotment/get-allotted-courses",
		token: token,
	}, &courses)
	return courses, err
}
