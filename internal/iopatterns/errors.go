package iopatterns

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnquery/pkg/errcode"
)

// PatternsFileError is returned when the user patterns file cannot be
// read or decoded.
func PatternsFileError(path string, err error) error {
	msg := `Cannot load user patterns from <em>%s</em>

<em>How to fix:</em>
  1. Check YAML syntax of the file
  2. Compare it with the commented example written on first run`

	return &gn.Error{
		Code: errcode.PatternsFileError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot load patterns from %s: %w", path, err),
	}
}

// PatternDefinitionError is returned for an invalid pattern definition.
func PatternDefinitionError(idx int, id string, err error) error {
	msg := "Pattern #%d <em>%s</em> is invalid: %s"
	return &gn.Error{
		Code: errcode.PatternDefinitionError,
		Msg:  msg,
		Vars: []any{idx + 1, id, err.Error()},
		Err:  fmt.Errorf("pattern #%d %q: %w", idx+1, id, err),
	}
}
