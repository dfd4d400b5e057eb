package allotment

import (
	"sort"
	"strconv"
	"strings"

	"github.com/trezcool/attainment/core"
)

// Course is a course allotted to a faculty member for an academic year & semester.
type Course struct {
	CourseID     string  `json:"course_id"`
	CourseName   string  `json:"course_name"`
	AcademicYear string  `json:"academic_yr"`
	Sem          string  `json:"sem"`
	Class        string  `json:"class,omitempty"`
	DeptID       core.ID `json:"dept_id,omitempty"`
	FacultyID    core.ID `json:"faculty_id,omitempty"`
	FacultyName  string  `json:"faculty_name,omitempty"`
}

// Filter narrows a course list; empty criteria match everything.
type Filter struct {
	Search       string // course name or id, case-insensitive
	AcademicYear string
	Sem          string
}

func (f *Filter) IsEmpty() bool {
	return f.Search == "" && f.AcademicYear == "" && f.Sem == ""
}

func (f *Filter) Reset() { *f = Filter{} }

func (f Filter) Match(c Course) bool {
	if f.AcademicYear != "" && c.AcademicYear != f.AcademicYear {
		return false
	}
	if f.Sem != "" && c.Sem != f.Sem {
		return false
	}
	if f.Search != "" && !core.ContainsFold(c.CourseName, f.Search) && !core.ContainsFold(c.CourseID, f.Search) {
		return false
	}
	return true
}

// Apply returns the courses matching f, in order.
func (f Filter) Apply(courses []Course) []Course {
	filtered := make([]Course, 0, len(courses))
	for _, c := range courses {
		if f.Match(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// AcademicYears lists the distinct academic years, for the filter drop-down.
func AcademicYears(courses []Course) []string {
	vals := make([]string, 0, len(courses))
	for _, c := range courses {
		vals = append(vals, c.AcademicYear)
	}
	return core.UniqueStrings(vals)
}

// Semesters lists the distinct semesters.
func Semesters(courses []Course) []string {
	vals := make([]string, 0, len(courses))
	for _, c := range courses {
		vals = append(vals, c.Sem)
	}
	return core.UniqueStrings(vals)
}

func (c Course) sortKey(field string) (string, bool) {
	switch field {
	case "course_id":
		return c.CourseID, true
	case "course_name":
		return strings.ToLower(c.CourseName), true
	case "academic_yr":
		return c.AcademicYear, true
	case "sem":
		return c.Sem, true
	case "faculty_name":
		return strings.ToLower(c.FacultyName), true
	default:
		return "", false
	}
}

// Sort orders courses in place by the given orderings; unknown fields are ignored.
// Keys that are both integers (eg. semesters) compare numerically.
// The sort is stable so that equal courses keep their API order.
func Sort(courses []Course, orderings []core.Ordering) {
	sort.SliceStable(courses, func(i, j int) bool {
		for _, ord := range orderings {
			a, ok := courses[i].sortKey(ord.Field)
			if !ok {
				continue
			}
			b, _ := courses[j].sortKey(ord.Field)
			cmp := compareKeys(a, b)
			if cmp == 0 {
				continue
			}
			if ord.Ascending {
				return cmp < 0
			}
			return cmp > 0
		}
		return false
	})
}

func compareKeys(a, b string) int {
	an, aErr := strconv.Atoi(a)
	bn, bErr := strconv.Atoi(b)
	if aErr == nil && bErr == nil {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
