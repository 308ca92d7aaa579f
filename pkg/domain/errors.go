package domain

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnquery/pkg/errcode"
)

// DomainNotFoundError is returned when a domain is unknown or has no
// patterns to translate with.
func DomainNotFoundError(name string) error {
	msg := `Domain <em>%s</em> has no registered patterns

<em>How to fix:</em>
  1. List available domains: <em>gnquery domains</em>`

	return &gn.Error{
		Code: errcode.DomainNotFoundError,
		Msg:  msg,
		Vars: []any{name},
		Err:  fmt.Errorf("no patterns for domain %q", name),
	}
}

// TimeframeError is returned when a timeframe is not a four-digit year.
func TimeframeError(timeframe string) error {
	msg := "Timeframe <em>%s</em> is not a year, use four digits like 2022"

	return &gn.Error{
		Code: errcode.TimeframeError,
		Msg:  msg,
		Vars: []any{timeframe},
		Err:  fmt.Errorf("timeframe %q is not a year", timeframe),
	}
}
