package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct validates a struct using validator tags
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Messages formats validation errors into readable messages
func Messages(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return messages
	}

	for _, fieldError := range validationErrors {
		field := fieldError.Namespace()
		switch fieldError.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "required_without":
			messages = append(messages, field+" is required when "+fieldError.Param()+" is empty")
		case "min":
			messages = append(messages, field+" must contain at least "+fieldError.Param()+" item(s)")
		case "email":
			messages = append(messages, field+" must be a valid email")
		default:
			messages = append(messages, field+" is invalid")
		}
	}
	return messages
}
