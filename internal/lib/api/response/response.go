// SPDX-License-Identifier: MIT

// Package response holds the JSON error shapes shared by HTTP handlers.
package response

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Response is the body of a failed request.
type Response struct {
	Error string `json:"error,omitempty"`
}

// Error wraps errMessage into a Response.
func Error(errMessage string) Response {
	return Response{
		Error: errMessage,
	}
}

// ValidationError maps each failed field to a human readable message,
// rendered as {"field":"message"}.
func ValidationError(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, err := range errs {
		out[err.Field()] = message(err)
	}

	return out
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "field is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	default:
		return fmt.Sprintf("failed %q check", err.Tag())
	}
}
