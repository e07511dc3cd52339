// internal/webutil/validator.go
package webutil

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is the shared validator instance for the whole application.
var Validator *validator.Validate

func init() {
	Validator = validator.New()

	// Report field names from json tags so validation errors match the wire
	// format clients actually sent.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
