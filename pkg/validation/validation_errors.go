package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps struct field names to the labels shown in error messages.
var fieldLabels = map[string]string{
	"Name":        "Name",
	"Email":       "Email",
	"Password":    "Password",
	"OldPassword": "Current password",
	"NewPassword": "New password",
	"Role":        "Role",
	"Phone":       "Phone number",
	"Token":       "Token",
	"CompanyName": "Company name",
	"Title":       "Title",
	"JobType":     "Job type",
	"Description": "Description",
	"Status":      "Status",
	"JobID":       "Job",
	"IDs":         "User ids",
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// Messages converts a binding error into user-friendly messages, one per
// failed field. Returns nil when err is not a validator error.
func Messages(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, describe(fe))
	}
	return messages
}

func describe(fe validator.FieldError) string {
	name := label(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "phone":
		return fmt.Sprintf("%s must be a valid phone number", name)
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}
