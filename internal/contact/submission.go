// Package contact validates and records contact form submissions. Messages
// are logged only; nothing is delivered or stored.
package contact

import (
	"errors"
	"reflect"
	"strings"

	"github.com/Zachkp/portfolio/internal/apperr"
	"github.com/go-playground/validator/v10"
)

// Submission is the contact form payload.
type Submission struct {
	Name    string `json:"name" validate:"required,min=3"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5"`
	Message string `json:"message" validate:"required,min=10"`
	Consent bool   `json:"consent" validate:"eq=true"`
}

var fieldMessages = map[string]string{
	"name":    "Name must be at least 3 characters",
	"email":   "Invalid email address",
	"subject": "Subject must be at least 5 characters",
	"message": "Message must be at least 10 characters",
	"consent": "You must accept the privacy policy",
}

// Validator checks submissions and reports one error per failing field,
// named by its json key.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Validate returns nil or an apperr validation error listing every failing
// field in declaration order.
func (val *Validator) Validate(s Submission) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperr.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return apperr.Validation(fields)
}

func message(fe validator.FieldError) string {
	if fe.Tag() == "required" && fe.Field() != "consent" {
		return strings.ToUpper(fe.Field()[:1]) + fe.Field()[1:] + " is required"
	}
	if m, ok := fieldMessages[fe.Field()]; ok {
		return m
	}
	return "Invalid value"
}
