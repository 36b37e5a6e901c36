package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Permissive phone pattern: optional +, then digits with common separators
// (spaces, dots, dashes, parentheses), 7 to 20 characters total.
var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ().\-/]{5,19}$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
}

// ValidPhone validates a phone number structure. Empty values pass; combine
// with required when the field is mandatory.
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}
