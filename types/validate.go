package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError lists the constraints a request violated
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", strings.Join(e.Violations, "; "))
}

// Validate checks the structural constraints of a request and returns the violated ones.
// An empty result means the request may be dispatched.
func Validate(req interface{}) []string {
	if req == nil {
		return nil
	}

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	violations := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if fe.Param() != "" {
			violations = append(violations, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		violations = append(violations, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return violations
}

// ValidateRequest wraps Validate for callers that want an error value
func ValidateRequest(req interface{}) error {
	if violations := Validate(req); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
