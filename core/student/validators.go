package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/attainment/core"
)

var texts = map[string]string{
	"name":      "Name must contain only alphabets and spaces.",
	"email":     "Invalid email format.",
	"mobile_no": "Mobile number must be exactly 10 digits.",
}

// ValidateUpdate checks the editable fields of s and returns {field: message} for the failing ones.
func ValidateUpdate(s Student) map[string]string {
	errs := make(map[string]string)
	err := core.Validate.Struct(s)
	if err == nil {
		return errs
	}
	vErrs, _ := err.(validator.ValidationErrors)
	for _, fe := range vErrs {
		if txt, ok := texts[fe.Field()]; ok {
			errs[fe.Field()] = txt
		} else {
			errs[fe.Field()] = fe.Translate(core.Translator)
		}
	}
	return errs
}
