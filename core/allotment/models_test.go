package allotment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/attainment/core"
)

var courses = []Course{
	{CourseID: "CS201", CourseName: "Data Structures", AcademicYear: "2023-24", Sem: "3", FacultyName: "Meera"},
	{CourseID: "CS101", CourseName: "programming Basics", AcademicYear: "2022-23", Sem: "1", FacultyName: "asha"},
	{CourseID: "MA101", CourseName: "Discrete Maths", AcademicYear: "2023-24", Sem: "1", FacultyName: "Kabir"},
	{CourseID: "CS301", CourseName: "Databases", AcademicYear: "2023-24", Sem: "5", FacultyName: "Meera"},
}

func ids(courses []Course) []string {
	res := make([]string, 0, len(courses))
	for _, c := range courses {
		res = append(res, c.CourseID)
	}
	return res
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filter", Filter{}, []string{"CS201", "CS101", "MA101", "CS301"}},
		{"search name", Filter{Search: "data"}, []string{"CS201", "CS301"}},
		{"search id", Filter{Search: "cs1"}, []string{"CS101"}},
		{"academic year", Filter{AcademicYear: "2023-24"}, []string{"CS201", "MA101", "CS301"}},
		{"semester", Filter{Sem: "1"}, []string{"CS101", "MA101"}},
		{"combined", Filter{AcademicYear: "2023-24", Sem: "1", Search: "math"}, []string{"MA101"}},
		{"no match", Filter{Sem: "8"}, []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ids(tc.filter.Apply(courses))); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	f := Filter{Sem: "1"}
	f.Reset()
	assert.True(t, f.IsEmpty())
}

func TestOptions(t *testing.T) {
	assert.Equal(t, []string{"2023-24", "2022-23"}, AcademicYears(courses))
	assert.Equal(t, []string{"3", "1", "5"}, Semesters(courses))
}

func TestSort(t *testing.T) {
	tests := []struct {
		orderings string
		want      []string
	}{
		{"", []string{"CS201", "CS101", "MA101", "CS301"}},
		{"course_id", []string{"CS101", "CS201", "CS301", "MA101"}},
		{"-course_id", []string{"MA101", "CS301", "CS201", "CS101"}},
		{"course_name", []string{"CS201", "CS301", "MA101", "CS101"}},
		{"-academic_yr,sem", []string{"MA101", "CS201", "CS301", "CS101"}},
		{"faculty_name,-sem", []string{"CS101", "MA101", "CS301", "CS201"}},
		{"unknown,sem", []string{"CS101", "MA101", "CS201", "CS301"}},
	}
	for _, tc := range tests {
		t.Run(tc.orderings, func(t *testing.T) {
			list := append([]Course(nil), courses...)
			Sort(list, core.ParseOrderings(tc.orderings))
			if diff := cmp.Diff(tc.want, ids(list)); diff != "" {
				t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortNumericKeys(t *testing.T) {
	list := []Course{
		{CourseID: "A", Sem: "10"},
		{CourseID: "B", Sem: "2"},
		{CourseID: "C", Sem: "1"},
		{CourseID: "D", Sem: "II"},
	}
	Sort(list, core.ParseOrderings("sem"))
	if diff := cmp.Diff([]string{"C", "B", "A", "D"}, ids(list)); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}

	Sort(list, core.ParseOrderings("-sem"))
	if diff := cmp.Diff([]string{"D", "A", "B", "C"}, ids(list)); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
}
