package http

import (
	"errors"
	"reflect"
	"strings"

	"logistics/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// Validator adapts validator/v10 to echo. Failures are reported per field as
// validation errors.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	problems := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			problems = append(problems, errs.NewValueIsRequiredError(fe.Field()))
			continue
		}
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(fe.Field(), fe))
	}
	return errors.Join(problems...)
}
