package course

import (
	"strconv"

	"github.com/trezcool/attainment/core"
)

// Fields, named after their JSON keys.
const (
	FieldCourseID   = "course_id"
	FieldCourseName = "course_name"
	FieldClass      = "class"
	FieldUT         = "ut"
	FieldInSem      = "insem"
	FieldEndSem     = "endsem"
	FieldFinalSem   = "finalsem" // derived: insem + endsem
)

var (
	// Classes are the year levels a course can be taught in; the `courseclass` tag checks against it.
	Classes = []string{"FE", "SE", "TE", "BE"}

	// EditableFields in display order.
	EditableFields = []string{FieldCourseID, FieldCourseName, FieldClass, FieldUT, FieldInSem, FieldEndSem}

	markFields = map[string]struct{}{FieldUT: {}, FieldInSem: {}, FieldEndSem: {}}
)

// Record holds the raw text of the course form, as typed.
type Record struct {
	CourseID   string `json:"course_id" validate:"notblank,alphanum"`
	CourseName string `json:"course_name" validate:"notblank,alphaspace"`
	Class      string `json:"class" validate:"required,courseclass"`
	UT         string `json:"ut" validate:"required,wholenum"`
	InSem      string `json:"insem" validate:"required,wholenum"`
	EndSem     string `json:"endsem" validate:"required,wholenum"`
	FinalSem   int    `json:"finalsem"`
}

// Get returns the text value of an editable field.
func (r Record) Get(field string) (string, bool) {
	switch field {
	case FieldCourseID:
		return r.CourseID, true
	case FieldCourseName:
		return r.CourseName, true
	case FieldClass:
		return r.Class, true
	case FieldUT:
		return r.UT, true
	case FieldInSem:
		return r.InSem, true
	case FieldEndSem:
		return r.EndSem, true
	default:
		return "", false
	}
}

func (r *Record) set(field, value string) bool {
	switch field {
	case FieldCourseID:
		r.CourseID = value
	case FieldCourseName:
		r.CourseName = value
	case FieldClass:
		r.Class = value
	case FieldUT:
		r.UT = value
	case FieldInSem:
		r.InSem = value
	case FieldEndSem:
		r.EndSem = value
	default:
		return false
	}
	return true
}

// Payload coerces the marks to integers, leaving the other fields as typed.
func (r Record) Payload() Payload {
	return Payload{
		CourseID:   r.CourseID,
		CourseName: r.CourseName,
		Class:      r.Class,
		UT:         core.AtoiOrZero(r.UT),
		InSem:      core.AtoiOrZero(r.InSem),
		EndSem:     core.AtoiOrZero(r.EndSem),
		FinalSem:   r.FinalSem,
	}
}

// Payload is the course as sent to the API.
type Payload struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	Class      string `json:"class"`
	UT         int    `json:"ut"`
	InSem      int    `json:"insem"`
	EndSem     int    `json:"endsem"`
	FinalSem   int    `json:"finalsem"`
}

// Record turns a stored course back into form text, eg. to prefill the update form.
func (p Payload) Record() Record {
	return Record{
		CourseID:   p.CourseID,
		CourseName: p.CourseName,
		Class:      p.Class,
		UT:         strconv.Itoa(p.UT),
		InSem:      strconv.Itoa(p.InSem),
		EndSem:     strconv.Itoa(p.EndSem),
		FinalSem:   p.InSem + p.EndSem,
	}
}

// ErrorMap holds one message per field; a missing key or "" means no error.
type ErrorMap map[string]string

func (m ErrorMap) Get(field string) string { return m[field] }

// Valid reports whether no field has an error.
func (m ErrorMap) Valid() bool {
	for _, msg := range m {
		if msg != "" {
			return false
		}
	}
	return true
}

func (m ErrorMap) Clone() ErrorMap {
	c := make(ErrorMap, len(m))
	for fld, msg := range m {
		c[fld] = msg
	}
	return c
}

// FieldErrors lists the non-empty entries, for core.ValidationError.
func (m ErrorMap) FieldErrors() []core.FieldError {
	flds := make([]core.FieldError, 0, len(m))
	for _, fld := range EditableFields {
		if msg := m[fld]; msg != "" {
			flds = append(flds, core.FieldError{Field: fld, Error: msg})
		}
	}
	return flds
}

func isMarkField(field string) bool {
	_, ok := markFields[field]
	return ok
}
