package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator builds a validator that reports field names from json tags so
// validation messages match the wire format.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// validationMessage turns the first validator error into a descriptive
// client-facing message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("Missing required field: %s", fe.Field())
		case "oneof":
			return fmt.Sprintf("Invalid value for %s: must be one of [%s]", fe.Field(), fe.Param())
		case "email":
			return fmt.Sprintf("Invalid email address in field: %s", fe.Field())
		case "gt":
			return fmt.Sprintf("Field %s must be greater than %s", fe.Field(), fe.Param())
		case "min":
			return fmt.Sprintf("Field %s must be at least %s", fe.Field(), fe.Param())
		default:
			return fmt.Sprintf("Invalid value for field: %s", fe.Field())
		}
	}
	return "Invalid request body"
}
