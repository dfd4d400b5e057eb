package course

import (
	"fmt"

	"github.com/trezcool/attainment/core"
)

// Form is one course form session: what has been typed and what to show under each field.
// A Form is owned by a single view; it is not safe for concurrent use.
type Form struct {
	Record Record
	Errors ErrorMap
}

func NewForm() *Form {
	return &Form{Errors: make(ErrorMap)}
}

// EditForm prefills a Form with a stored course.
func EditForm(p Payload) *Form {
	return &Form{Record: p.Record(), Errors: make(ErrorMap)}
}

// Change applies one keystroke level update, see ApplyChange.
func (f *Form) Change(field, value string) error {
	rec, errs, err := ApplyChange(f.Record, f.Errors, field, value)
	if err != nil {
		return err
	}
	f.Record, f.Errors = rec, errs
	return nil
}

// Validate runs a full validation pass, publishes the result and reports validity.
func (f *Form) Validate() bool {
	f.Errors = Validate(f.Record)
	return f.Errors.Valid()
}

// Reset empties the form, eg. after a successful submission.
func (f *Form) Reset() {
	f.Record = Record{}
	f.Errors = make(ErrorMap)
}

// ApplyChange returns the record & errors resulting from setting `field` to `value`.
//
// Marks only accept digits: any other value is blocked, leaving the record untouched and
// flagging the field. An accepted value clears that field's error and, for insem & endsem,
// recomputes finalsem. Neither rec nor errs is modified.
func ApplyChange(rec Record, errs ErrorMap, field, value string) (Record, ErrorMap, error) {
	if _, ok := rec.Get(field); !ok {
		return rec, errs, core.NewArgumentError(fmt.Sprintf("course: field %q cannot be edited", field))
	}

	newErrs := errs.Clone()
	if isMarkField(field) && !core.DigitsRegex.MatchString(value) {
		newErrs[field] = OnlyDigitsText
		return rec, newErrs, nil
	}

	rec.set(field, value)
	if field == FieldInSem || field == FieldEndSem {
		rec.FinalSem = core.AtoiOrZero(rec.InSem) + core.AtoiOrZero(rec.EndSem)
	}
	newErrs[field] = ""
	return rec, newErrs, nil
}
