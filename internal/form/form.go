// Package form defines the input schemas for dashboard submissions.
// Each (entity, operation) pair has its own declared struct so that
// server-generated fields (ids, dates) cannot arrive from the caller.
// Validation is pure and synchronous; it performs no I/O.
package form

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a submitted field name to its violation messages,
// in the order the rules were evaluated.
type FieldErrors map[string][]string

// Add appends a message for a field, skipping exact duplicates.
func (fe FieldErrors) Add(field, msg string) {
	for _, existing := range fe[field] {
		if existing == msg {
			return
		}
	}
	fe[field] = append(fe[field], msg)
}

// validate is the shared validator instance. Field names are taken from
// the `form` struct tag so errors report submission keys, not Go names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// messageMap resolves a field to its user-facing violation message.
type messageMap map[string]string

// collect runs struct validation and translates violations into FieldErrors.
// Fields without a registered message fall back to a per-tag default.
func collect(s any, messages messageMap, errs FieldErrors) FieldErrors {
	err := validate.Struct(s)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	ok := false
	if verrs, ok = err.(validator.ValidationErrors); !ok {
		// Not a validation outcome; surface as a single opaque violation.
		errs.Add("_form", "Invalid submission.")
		return errs
	}

	for _, fe := range verrs {
		field := fe.Field()
		if msg, found := messages[field]; found {
			errs.Add(field, msg)
			continue
		}
		errs.Add(field, defaultMessage(fe))
	}

	return errs
}

// defaultMessage renders the schema default message for a violated rule.
func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "email":
		return "Please enter a valid email address."
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", fe.Param())
	default:
		return "Invalid value."
	}
}

// field reads a single submission value by key. Unknown or repeated
// keys beyond the first are ignored.
func field(values url.Values, key string) string {
	return values.Get(key)
}
