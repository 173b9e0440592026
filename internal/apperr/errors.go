// Package apperr defines the error kinds shared by the content, profile and
// contact packages and how they surface at the HTTP boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies an application error.
type Kind int

const (
	KindUnknown Kind = iota
	// KindConfiguration is a precondition violation such as an unsupported locale.
	KindConfiguration
	// KindValidation is a malformed user submission, enumerated per field.
	KindValidation
	// KindData is missing or inconsistent content.
	KindData
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindValidation:
		return "validation"
	case KindData:
		return "data"
	default:
		return "unknown"
	}
}

// Error codes, format ERR_<CATEGORY>.
const (
	CodeConfiguration = "ERR_CONFIGURATION"
	CodeValidation    = "ERR_VALIDATION"
	CodeData          = "ERR_DATA"
	CodeInternal      = "ERR_INTERNAL"
)

// FieldError describes one failing field of a submission.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the concrete error type for every Kind.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			parts = append(parts, f.Field+": "+f.Message)
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(parts, "; "))
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Configuration returns a KindConfiguration error.
func Configuration(format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Code: CodeConfiguration, Message: fmt.Sprintf(format, args...)}
}

// Data returns a KindData error wrapping err (which may be nil).
func Data(err error, format string, args ...any) *Error {
	return &Error{Kind: KindData, Code: CodeData, Message: fmt.Sprintf(format, args...), Err: err}
}

// Validation returns a KindValidation error listing fields.
func Validation(fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Code: CodeValidation, Message: "validation failed", Fields: fields}
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// FieldsOf returns the field errors carried by a validation error.
func FieldsOf(err error) []FieldError {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// HTTPStatus maps err to the status code exposed to clients.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindConfiguration, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
