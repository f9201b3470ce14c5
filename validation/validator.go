package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kbukum/idprovider/errors"
)

// Validator accumulates field errors for checks that struct tags cannot
// express, such as requirements that depend on the provider kind.
type Validator struct {
	fields []FieldError
}

// FieldError is one failed check on a named option.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New returns an empty Validator.
func New() *Validator {
	return &Validator{}
}

// Check records err against field. A nil err records nothing.
func (v *Validator) Check(field string, err error) *Validator {
	if err != nil {
		v.fields = append(v.fields, FieldError{Field: field, Message: err.Error()})
	}
	return v
}

// Required fails a blank value.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.fields = append(v.fields, FieldError{Field: field, Message: "is required"})
	}
	return v
}

// URL fails a value that is set but is not an absolute http(s) URL.
func (v *Validator) URL(field, value string) *Validator {
	if value == "" {
		return v
	}
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		v.fields = append(v.fields, FieldError{Field: field, Message: "must be a valid URL"})
	}
	return v
}

func (v *Validator) HasErrors() bool {
	return len(v.fields) > 0
}

func (v *Validator) Errors() []FieldError {
	return v.fields
}

// Validate folds the recorded failures into one INVALID_INPUT error, or
// returns nil when every check passed.
func (v *Validator) Validate() *errors.AppError {
	if len(v.fields) == 0 {
		return nil
	}
	parts := make([]string, len(v.fields))
	for i, f := range v.fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return errors.Validation(strings.Join(parts, "; ")).
		WithDetails(map[string]any{"fields": v.fields})
}
