package validate

import (
	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct runs the `validate` tags of a request DTO.
func Struct(s any) error {
	return v.Struct(s)
}

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return v.Var(s, "required,email") == nil
}
