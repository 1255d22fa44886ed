package handlers

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// validationErrorMessages converts validator errors into a field->message map
// keyed by the form field name (lowerCamelCase, matching the submitted form).
func validationErrorMessages(err error) map[string]string {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		field := formFieldName(e.Field())
		errorMessages[field] = fmt.Sprintf("Field '%s' failed on the '%s' tag", field, e.Tag())
	}
	return errorMessages
}

// formFieldName lowercases the first rune of a struct field name so error
// keys line up with form field names (FirstName -> firstName).
func formFieldName(field string) string {
	if field == "" {
		return field
	}
	r := []rune(field)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
