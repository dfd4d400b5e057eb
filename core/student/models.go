package student

import (
	"strings"

	"github.com/trezcool/attainment/core"
)

type Student struct {
	RollNo       core.ID `json:"roll_no"`
	Name         string  `json:"name" validate:"alphaspace"`
	Email        string  `json:"email" validate:"portalemail"`
	MobileNo     string  `json:"mobile_no" validate:"mobile"`
	Class        string  `json:"class"` // year + division, eg. "SE2"
	AcademicYear string  `json:"academic_yr"`
	DeptID       core.ID `json:"dept_id,omitempty"`
}

// Year is the year level part of the class, eg. "SE".
func (s Student) Year() string {
	if len(s.Class) < 2 {
		return s.Class
	}
	return s.Class[:2]
}

// Filter narrows a student list; empty criteria match everything.
type Filter struct {
	AcademicYear string
	Year         string // class contains
	Division     string // class ends with
	Search       string // name (case-insensitive) or roll number contains
}

func (f *Filter) IsEmpty() bool {
	return f.AcademicYear == "" && f.Year == "" && f.Division == "" && f.Search == ""
}

func (f *Filter) Reset() { *f = Filter{} }

func (f Filter) Match(s Student) bool {
	if f.AcademicYear != "" && s.AcademicYear != f.AcademicYear {
		return false
	}
	if f.Year != "" && !strings.Contains(s.Class, f.Year) {
		return false
	}
	if f.Division != "" && !strings.HasSuffix(s.Class, f.Division) {
		return false
	}
	if f.Search != "" && !core.ContainsFold(s.Name, f.Search) && !strings.Contains(s.RollNo.String(), f.Search) {
		return false
	}
	return true
}

// Apply returns the students matching f, in order.
func (f Filter) Apply(students []Student) []Student {
	filtered := make([]Student, 0, len(students))
	for _, s := range students {
		if f.Match(s) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// AcademicYears lists the distinct academic years, for the filter drop-down.
func AcademicYears(students []Student) []string {
	vals := make([]string, 0, len(students))
	for _, s := range students {
		vals = append(vals, s.AcademicYear)
	}
	return core.UniqueStrings(vals)
}

// Years lists the distinct year levels.
func Years(students []Student) []string {
	vals := make([]string, 0, len(students))
	for _, s := range students {
		vals = append(vals, s.Year())
	}
	return core.UniqueStrings(vals)
}

// Divisions lists the distinct classes, restricted to those starting with `year` when set.
func Divisions(students []Student, year string) []string {
	vals := make([]string, 0, len(students))
	for _, s := range students {
		if year == "" || strings.HasPrefix(s.Class, year) {
			vals = append(vals, s.Class)
		}
	}
	return core.UniqueStrings(vals)
}
