package core

import "github.com/pkg/errors"

var (
	ErrUnauthorized = errors.New("unauthorized: please log in again")
	ErrInvalidForm  = errors.New("form has validation errors")
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func (err ValidationError) Unwrap() error { return err.Err }

// FieldMap returns the field errors keyed by field name.
func (err ValidationError) FieldMap() map[string]string {
	fldErrs := make(map[string]string, len(err.Fields))
	for _, fErr := range err.Fields {
		fldErrs[fErr.Field] = fErr.Error
	}
	return fldErrs
}

// IsValidation reports whether err (or its cause) is a *ValidationError.
func IsValidation(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

// ArgumentError signals a caller bug, eg. editing a field that does not exist.
type ArgumentError struct {
	msg string
}

func NewArgumentError(msg string) *ArgumentError {
	return &ArgumentError{msg}
}

func (err *ArgumentError) Error() string {
	return err.msg
}

// ServerMessage returns the human readable message a remote server attached to err, if any.
func ServerMessage(err error) string {
	var sErr interface{ ServerMessage() string }
	if errors.As(err, &sErr) {
		return sErr.ServerMessage()
	}
	return ""
}
