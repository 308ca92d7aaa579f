package gnquery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnquery/pkg/errcode"
)

// ValidationError is returned when parameters do not satisfy the
// pattern's declarations. All problems are reported at once.
func ValidationError(patternID string, msgs []string) error {
	msg := `Invalid parameters for pattern <em>%s</em>:
  %s

<em>How to fix:</em>
  1. See declared parameters: <em>gnquery show %s</em>`

	details := strings.Join(msgs, "; ")
	return &gn.Error{
		Code: errcode.ValidationError,
		Msg:  msg,
		Vars: []any{patternID, strings.Join(msgs, "\n  "), patternID},
		Err:  fmt.Errorf("validation of %s failed: %s", patternID, details),
	}
}

// UnresolvedPlaceholderError is returned in strict mode when compiled
// text still contains placeholders of declared parameters.
func UnresolvedPlaceholderError(patternID string, names []string) error {
	msg := `Pattern <em>%s</em> has unresolved placeholders: <em>%s</em>

<em>How to fix:</em>
  1. Provide values for the listed parameters
  2. Or set <em>engine.strict: false</em> in config.yaml to pass them through`

	list := strings.Join(names, ", ")
	return &gn.Error{
		Code: errcode.UnresolvedPlaceholderError,
		Msg:  msg,
		Vars: []any{patternID, list},
		Err: fmt.Errorf("unresolved placeholders in %s: %s",
			patternID, list),
	}
}

// BindError is returned when a template cannot be turned into a query
// with positional arguments.
func BindError(patternID string, err error) error {
	msg := "Cannot bind parameters of pattern <em>%s</em>"
	return &gn.Error{
		Code: errcode.BindError,
		Msg:  msg,
		Vars: []any{patternID},
		Err:  fmt.Errorf("bind %s: %w", patternID, err),
	}
}

// BatchCompileError is returned when a batch stops before all requests
// are compiled.
func BatchCompileError(done, total int, err error) error {
	msg := "Batch compilation stopped after <em>%d</em> of <em>%d</em> requests"
	return &gn.Error{
		Code: errcode.BatchCompileError,
		Msg:  msg,
		Vars: []any{done, total},
		Err:  fmt.Errorf("batch compilation stopped: %w", err),
	}
}

// ErrorCode returns the code of a *gn.Error, or errcode.UnknownError for
// other errors.
func ErrorCode(err error) gn.ErrorCode {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code
	}
	return errcode.UnknownError
}
