// Package validation wraps go-playground/validator and renders failures as
// per-field message maps, the shape the API returns with a 422 status.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a request field name to its list of failure messages.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their json names so error maps line up with the
	// request body.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Check validates a tagged request struct. It returns nil when the struct is
// valid, otherwise a field->messages map.
func Check(v any) Errors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"request": {"The request is invalid."}}
	}

	out := Errors{}
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "max":
		return fmt.Sprintf("The %s must not be greater than %s characters.", field, fe.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("The %s must be at least %s.", field, fe.Param())
	case "lte":
		return fmt.Sprintf("The %s must not be greater than %s.", field, fe.Param())
	default:
		return fmt.Sprintf("The %s is invalid.", field)
	}
}
