package registry

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnquery/pkg/errcode"
)

// PatternNotFoundError is returned when a pattern id has no entry in the
// registry.
func PatternNotFoundError(id string) error {
	msg := `Pattern <em>%s</em> is not registered

<em>How to fix:</em>
  1. List available patterns: <em>gnquery list</em>
  2. Check the spelling of the pattern id`

	return &gn.Error{
		Code: errcode.PatternNotFoundError,
		Msg:  msg,
		Vars: []any{id},
		Err:  fmt.Errorf("pattern not found: %s", id),
	}
}
