package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// E164-like phone: optional +, 7 to 15 digits.
var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// Register adds the custom validators used by the request structs to a
// validator instance, typically gin's binding engine.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation("phone", Phone)
}

// Phone validates phone number structure. Empty values pass so the tag
// composes with omitempty on optional fields.
func Phone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}
