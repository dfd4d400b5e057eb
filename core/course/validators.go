package course

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/attainment/core"
)

const OnlyDigitsText = "Only positive integers are allowed."

const (
	classTag  = "courseclass"
	classText = "{0} must be one of the course classes"
)

func init() {
	_ = core.Validate.RegisterValidation(classTag, classValidation)
	core.RegisterCustomTranslation(classTag, classText)
}

// classValidation only allows the values listed in Classes.
func classValidation(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return IsClass(fl.Field().String())
}

// IsClass reports whether class is one of Classes (case-sensitive).
func IsClass(class string) bool {
	for _, c := range Classes {
		if c == class {
			return true
		}
	}
	return false
}

type fieldTexts struct {
	required string
	invalid  string
}

var (
	presenceTags = map[string]struct{}{"required": {}, "notblank": {}}

	texts = map[string]fieldTexts{
		FieldCourseID: {
			required: "Course ID is required.",
			invalid:  "Course ID should contain only alphabets and numbers.",
		},
		FieldCourseName: {
			required: "Course Name is required.",
			invalid:  "Course Name should contain only alphabets and spaces.",
		},
		FieldClass: {
			required: "Class is required.",
			invalid:  "Invalid class selected.",
		},
		FieldUT:     marksTexts("Unit Test"),
		FieldInSem:  marksTexts("In-Semester"),
		FieldEndSem: marksTexts("End-Semester"),
	}
)

func marksTexts(label string) fieldTexts {
	return fieldTexts{
		required: label + " marks are required.",
		invalid:  label + " marks must be a valid positive integer.",
	}
}

// Validate checks every field of rec and returns one message per failing field.
// Each field stops at its first failing rule. It has no side effects.
func Validate(rec Record) ErrorMap {
	errs := make(ErrorMap)
	err := core.Validate.Struct(rec)
	if err == nil {
		return errs
	}
	// *validator.InvalidValidationError is only returned for non struct input
	vErrs, _ := err.(validator.ValidationErrors)
	for _, fe := range vErrs {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	txt, ok := texts[fe.Field()]
	if !ok {
		return fe.Translate(core.Translator)
	}
	if _, ok = presenceTags[fe.Tag()]; ok {
		return txt.required
	}
	return txt.invalid
}
