package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("future", FutureDate)
}

// FutureDate validates that a time.Time field is strictly in the future.
// Used for gig deadlines, which are checked once at creation time.
func FutureDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	if t.IsZero() {
		return true // Leave empty values to the required tag
	}
	return t.After(time.Now())
}
