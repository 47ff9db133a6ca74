package httpx

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// decimalRe matches the decimal-string prices the order schema accepts,
// e.g. "99.99", "5" or "5.999". Any fraction length is allowed; the price
// is an opaque decimal string, not a currency amount. Floats never enter
// the pipeline.
var decimalRe = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// newValidator builds the struct validator used for all request payloads.
func newValidator() *validator.Validate {
	v := validator.New()
	// Errors are impossible here: the tag name is valid and non-empty.
	_ = v.RegisterValidation("decimal", validateDecimal)
	return v
}

func validateDecimal(fl validator.FieldLevel) bool {
	return decimalRe.MatchString(fl.Field().String())
}
