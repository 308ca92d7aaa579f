package pattern

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// ValidationResult is the outcome of checking parameters against a
// pattern's declarations. Errors lists every problem found, not only the
// first one.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// String returns all errors joined by a semicolon.
func (v ValidationResult) String() string {
	return strings.Join(v.Errors, "; ")
}

// Validate checks params against spec. Required parameters must be
// present and array parameters must be slices. Parameters that are not
// declared are ignored, and number or string parameters are only checked
// for presence.
//
// Parameters are checked in name order, so the result is deterministic.
func Validate(spec map[string]ParamSpec, params Params) ValidationResult {
	var errs []string

	names := make([]string, 0, len(spec))
	for k := range spec {
		names = append(names, k)
	}
	slices.Sort(names)

	for _, name := range names {
		ps := spec[name]
		val, ok := params[name]
		if !ok {
			if ps.Required {
				errs = append(errs,
					fmt.Sprintf("Missing required parameter: %s", name))
			}
			continue
		}
		if ps.Type == Array && !IsArray(val) {
			errs = append(errs,
				fmt.Sprintf("Parameter %s must be an array", name))
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// IsArray reports whether v is a slice or an array value.
func IsArray(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
