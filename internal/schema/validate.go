package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Result is the uniform outcome of a schema validation: either success, or
// a single error string joining one message per violated constraint with
// ", " in the schema's field order.
type Result struct {
	Success bool
	Error   string
}

// Validator normalizes go-playground/validator outcomes into Results.
// Validation never surfaces as a Go error; all failure is communicated
// through the returned Result.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a Validator whose messages refer to fields by their
// json names.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate checks payload against its struct tags.
func (v *Validator) Validate(payload any) Result {
	err := v.validate.Struct(payload)
	if err == nil {
		return Result{Success: true}
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-schema failure, e.g. a nil payload. Still reported through
		// the Result rather than raised.
		return Result{Success: false, Error: err.Error()}
	}

	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fieldMessage(fe))
	}
	return Result{Success: false, Error: strings.Join(messages, ", ")}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must contain at least %s character(s)", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
