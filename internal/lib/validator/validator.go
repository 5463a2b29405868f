// SPDX-License-Identifier: MIT

// Package validator builds validators that report fields by their JSON (or
// other struct tag) names.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a *validator.Validate whose FieldError.Field() is the json
// tag name of the field.
func New() *validator.Validate {
	return NewWithTag("json")
}

// NewWithTag is New for an arbitrary struct tag, e.g. "yaml" for config
// files. Fields without a name in the tag, or tagged "-", keep their Go
// name.
func NewWithTag(tag string) *validator.Validate {
	valid := validator.New()

	valid.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return valid
}
