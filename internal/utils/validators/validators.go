package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	cuitRegex = regexp.MustCompile(`^[0-9]{11}$`)
	rpRegex   = regexp.MustCompile(`^[A-Z0-9-]+$`)
)

// Cuit accepts exactly 11 numeric digits, nothing else.
func Cuit(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return cuitRegex.MatchString(val)
}

// RP accepts the registration code format: uppercase letters, digits and
// hyphens, 1 to 50 characters. Lowercase and whitespace are rejected.
func RP(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	if len(val) < 1 || len(val) > 50 {
		return false
	}
	return rpRegex.MatchString(val)
}
