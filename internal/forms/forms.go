// Package forms validates raw form input and turns it into typed records.
// Each validator returns either a populated input struct or a map of
// field name to message, ready to be re-rendered next to the form.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a form field name to a validation message.
type Errors map[string]string

var validate = validator.New()

// fieldErrors translates validator failures into per-field messages keyed by
// the lower-cased struct field name.
func fieldErrors(err error) Errors {
	errs := Errors{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			errs[strings.ToLower(fe.Field())] = fieldMessage(fe)
		}
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	default:
		return "Invalid value."
	}
}

// checkboxChecked coerces the value a browser submits for a checked checkbox.
func checkboxChecked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1":
		return true
	}
	return false
}
