package contact

import (
	"fmt"
	"sort"
	"strings"
)

// Failure is the reason a single field was rejected. The zero value means the
// field is valid.
type Failure string

const (
	FailureNone          Failure = ""
	FailureRequired      Failure = "required"
	FailureTooShort      Failure = "too_short"
	FailureInvalidFormat Failure = "invalid_format"
	FailureInvalidLength Failure = "invalid_length"
	FailureInvalidPrefix Failure = "invalid_prefix"
)

func (f Failure) String() string {
	return string(f)
}

func (f Failure) OK() bool {
	return f == FailureNone
}

// Message renders the failure for display next to the named field.
func (f Failure) Message(field Field) string {
	switch f {
	case FailureNone:
		return ""
	case FailureRequired:
		return fmt.Sprintf("%s is required", field.Label())
	case FailureTooShort:
		return fmt.Sprintf("%s must be at least %d characters", field.Label(), MinNameLength)
	case FailureInvalidFormat:
		switch field {
		case FieldEmail:
			return "Please enter a valid email address"
		case FieldPhone:
			return "Phone number must start with 5, 6 or 7 followed by 8 digits"
		case FieldCode:
			return "Verification code must contain digits only"
		}
		return fmt.Sprintf("%s has an invalid format", field.Label())
	case FailureInvalidLength:
		switch field {
		case FieldPhone:
			return fmt.Sprintf("Phone number must have exactly %d digits after %s", PhoneDigits, CountryCode)
		case FieldCode:
			return fmt.Sprintf("Verification code must be %d digits", CodeLength)
		}
		return fmt.Sprintf("%s has an invalid length", field.Label())
	case FailureInvalidPrefix:
		return fmt.Sprintf("Phone number must start with %s", CountryCode)
	default:
		return string(f)
	}
}

type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
	FieldCode  Field = "code"
)

func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldPhone:
		return "Phone number"
	case FieldCode:
		return "Verification code"
	default:
		return string(f)
	}
}

// FieldErrors maps each rejected field to its failure. Valid fields are absent.
type FieldErrors map[Field]Failure

func (e FieldErrors) OK() bool {
	return len(e) == 0
}

func (e FieldErrors) Messages() map[string]string {
	out := make(map[string]string, len(e))
	for field, failure := range e {
		out[string(field)] = failure.Message(field)
	}
	return out
}

func (e FieldErrors) add(field Field, failure Failure) {
	if !failure.OK() {
		e[field] = failure
	}
}

// Err returns the failures as an error, or nil when every field is valid.
func (e FieldErrors) Err() error {
	if e.OK() {
		return nil
	}
	return &ValidationError{Errors: e}
}

// ValidationError carries per-field failures through error returns.
type ValidationError struct {
	Errors FieldErrors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, string(field))
	}
	sort.Strings(fields)
	return "invalid contact fields: " + strings.Join(fields, ", ")
}
