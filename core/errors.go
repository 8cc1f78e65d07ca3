package core

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
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

// NewValidationErrorFrom translates validator errors into a *ValidationError.
// Any other error is returned untouched.
func NewValidationErrorFrom(err error) error {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	flds := make([]FieldError, 0, len(vErrs))
	for _, vErr := range vErrs {
		flds = append(flds, FieldError{Field: vErr.Field(), Error: vErr.Translate(Translator)})
	}
	return &ValidationError{Err: err, Fields: flds}
}

func (err ValidationError) Error() string {
	if len(err.Fields) > 0 {
		msgs := make([]string, 0, len(err.Fields))
		for _, f := range err.Fields {
			msgs = append(msgs, f.Field+": "+f.Error)
		}
		return strings.Join(msgs, "; ")
	}
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func (err ValidationError) Unwrap() error { return err.Err }

// NotFoundError is returned when a lookup by name fails.
// Suggestions holds the closest existing names, if any.
type NotFoundError struct {
	Err         error
	Name        string
	Suggestions []string
}

func NewNotFoundError(err error, name string, suggestions ...string) error {
	return &NotFoundError{Err: err, Name: name, Suggestions: suggestions}
}

func (err NotFoundError) Error() string {
	msg := err.Err.Error()
	if err.Name != "" {
		msg += ": " + err.Name
	}
	if len(err.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(err.Suggestions, ", ") + "?)"
	}
	return msg
}

func (err NotFoundError) Unwrap() error { return err.Err }
