// Package apistub is an in-process fake of the attainment backend, for tests.
package apistub

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/attainment/core/allotment"
	"github.com/trezcool/attainment/core/course"
	"github.com/trezcool/attainment/core/session"
	"github.com/trezcool/attainment/core/student"
)

type (
	// Request is a captured incoming request.
	Request struct {
		Method        string
		Path          string
		Query         string
		Authorization string
		RequestID     string
		Body          []byte
	}

	failure struct {
		status  int
		message string
	}

	account struct {
		user     User
		password []byte // bcrypt hash
	}

	Server struct {
		URL string

		app *echo.Echo
		srv *httptest.Server

		mu         sync.Mutex
		accounts   map[string]account // by email
		courses    []course.Payload
		students   []student.Student
		allotments []allotment.Course
		requests   []Request
		failures   map[string]failure
	}
)

// New starts a stub server; Close it when done.
func New() *Server {
	s := &Server{
		app:      echo.New(),
		accounts: make(map[string]account),
		failures: make(map[string]failure),
	}
	s.setup()
	s.srv = httptest.NewServer(s.app)
	s.URL = s.srv.URL
	return s
}

func (s *Server) setup() {
	s.app.HideBanner = true
	s.app.Logger.SetLevel(log.OFF)
	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(s.capture, s.inject)
	s.app.HTTPErrorHandler = httpErrorHandler

	jwt := middleware.JWTWithConfig(jwtConfig)

	s.app.POST("/auth/login", s.login)

	adm := s.app.Group("/admin")
	admin := roleMiddleware(session.AdminRoles...)
	adm.POST("/course/add-course", s.addCourse, jwt, admin)
	adm.PUT("/course/update-course/:course_id", s.updateCourse, jwt, admin)
	adm.GET("/course/get-courses", s.listCourses, jwt, admin)
	adm.GET("/student/get-students", s.listStudents)
	adm.PUT("/student/update-student/:roll_no", s.updateStudent, jwt, admin)
	adm.GET("/allotment/get-allotted-courses", s.allottedCourses, jwt, admin)

	s.app.GET("/marks/faculty_addmarks/:user_id", s.facultyCourses)
	s.app.GET("/attainment/coordinator-courses", s.coordinatorCourses, jwt, roleMiddleware(session.CoordinatorRoles...))
}

func (s *Server) Close() { s.srv.Close() }

// ServeHTTP lets tests hit the stub without a network round trip.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.app.ServeHTTP(w, r)
}

// Fail makes every following `method path` request answer status with {"error": message}.
// An empty message gives an empty body.
func (s *Server) Fail(method, path string, status int, message string) {
	s.mu.Lock()
	s.failures[method+" "+path] = failure{status: status, message: message}
	s.mu.Unlock()
}

// Requests returns the requests received so far, in order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestsTo returns the requests received for `method path`.
func (s *Server) RequestsTo(method, path string) []Request {
	reqs := make([]Request, 0)
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			reqs = append(reqs, r)
		}
	}
	return reqs
}

func (s *Server) capture(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		req := ctx.Request()
		var body []byte
		if req.Body != nil {
			body, _ = io.ReadAll(req.Body)
			req.Body = io.NopCloser(bytes.NewReader(body))
		}
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        req.Method,
			Path:          req.URL.Path,
			Query:         req.URL.RawQuery,
			Authorization: req.Header.Get(echo.HeaderAuthorization),
			RequestID:     req.Header.Get(echo.HeaderXRequestID),
			Body:          body,
		})
		s.mu.Unlock()
		return next(ctx)
	}
}

func (s *Server) inject(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		s.mu.Lock()
		f, ok := s.failures[ctx.Request().Method+" "+ctx.Request().URL.Path]
		s.mu.Unlock()
		if !ok {
			return next(ctx)
		}
		if f.message == "" {
			return ctx.NoContent(f.status)
		}
		return echo.NewHTTPError(f.status, f.message)
	}
}
