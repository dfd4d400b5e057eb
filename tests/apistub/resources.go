package apistub

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/attainment/core"
	"github.com/trezcool/attainment/core/allotment"
	"github.com/trezcool/attainment/core/course"
	"github.com/trezcool/attainment/core/student"
)

// SeedCourses, SeedStudents and SeedAllotments replace the stub's data.
func (s *Server) SeedCourses(courses ...course.Payload) {
	s.mu.Lock()
	s.courses = append([]course.Payload(nil), courses...)
	s.mu.Unlock()
}

func (s *Server) SeedStudents(students ...student.Student) {
	s.mu.Lock()
	s.students = append([]student.Student(nil), students...)
	s.mu.Unlock()
}

func (s *Server) SeedAllotments(courses ...allotment.Course) {
	s.mu.Lock()
	s.allotments = append([]allotment.Course(nil), courses...)
	s.mu.Unlock()
}

func (s *Server) Courses() []course.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]course.Payload(nil), s.courses...)
}

func (s *Server) Students() []student.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]student.Student(nil), s.students...)
}

func (s *Server) addCourse(ctx echo.Context) error {
	p := new(course.Payload)
	if err := ctx.Bind(p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid course data")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.courses {
		if c.CourseID == p.CourseID {
			return echo.NewHTTPError(http.StatusConflict, "Course already exists")
		}
	}
	s.courses = append(s.courses, *p)
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "Course added successfully"})
}

func (s *Server) updateCourse(ctx echo.Context) error {
	p := new(course.Payload)
	if err := ctx.Bind(p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid course data")
	}
	id := ctx.Param("course_id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.courses {
		if c.CourseID == id {
			s.courses[i] = *p
			return ctx.JSON(http.StatusOK, echo.Map{"message": "Course updated successfully"})
		}
	}
	return errHttpNotFound
}

func (s *Server) listCourses(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.Courses())
}

func (s *Server) listStudents(ctx echo.Context) error {
	dept := ctx.QueryParam("dept_id")
	res := make([]student.Student, 0)
	for _, st := range s.Students() {
		if st.DeptID.String() == dept {
			res = append(res, st)
		}
	}
	return ctx.JSON(http.StatusOK, res)
}

func (s *Server) updateStudent(ctx echo.Context) error {
	st := new(student.Student)
	if err := ctx.Bind(st); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid student data")
	}
	roll := core.ID(ctx.Param("roll_no"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.students {
		if cur.RollNo == roll {
			st.RollNo = roll
			s.students[i] = *st
			return ctx.JSON(http.StatusOK, echo.Map{"message": "Student updated successfully"})
		}
	}
	return errHttpNotFound
}

func (s *Server) allotmentsOf(facultyID string) []allotment.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]allotment.Course, 0)
	for _, c := range s.allotments {
		if facultyID == "" || c.FacultyID.String() == facultyID {
			res = append(res, c)
		}
	}
	return res
}

func (s *Server) facultyCourses(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.allotmentsOf(ctx.Param("user_id")))
}

func (s *Server) coordinatorCourses(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.allotmentsOf(ctx.QueryParam("faculty_id")))
}

func (s *Server) allottedCourses(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"data": s.allotmentsOf("")})
}
