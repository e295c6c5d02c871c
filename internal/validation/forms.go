// Package validation defines the request form schemas and produces
// field-level error maps for invalid input.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a field name to a human-readable validation message.
type Errors map[string]string

// CommentForm carries the fields for submitting a comment.
type CommentForm struct {
	Name  string `json:"name" validate:"required,max=80"`
	Email string `json:"email" validate:"required,email"`
	Body  string `json:"body" validate:"required"`
}

// EmailPostForm carries the fields for sharing a post by email.
// Comments is optional free text from the sender.
type EmailPostForm struct {
	Name     string `json:"name" validate:"required,max=25"`
	Email    string `json:"email" validate:"required,email"`
	To       string `json:"to" validate:"required,email"`
	Comments string `json:"comments" validate:"max=2000"`
}

// SearchForm carries the search query string.
type SearchForm struct {
	Query string `json:"query" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the form against its schema and returns a field error map,
// or nil when the form is valid.
func Validate(form any) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"": err.Error()}
	}

	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return "Ensure this value has at most " + fe.Param() + " characters."
	default:
		return "This value is invalid."
	}
}
