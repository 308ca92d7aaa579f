// Package hints applies optimization hints to compiled query text.
//
// A hint is a named textual transform. Hints run in the order they are
// listed in a pattern, every hint is idempotent, and identifiers without a
// handler are ignored so that patterns may reference hints that are not
// implemented yet.
package hints

import (
	"fmt"
	"strings"

	"github.com/gnames/gnquery/pkg/pattern"
)

const (
	// DefaultRowLimit is the row limit used by add_limit unless configured.
	DefaultRowLimit = 1000

	// IndexTable is the table reference rewritten by force_index_scan.
	IndexTable = "medicare_beneficiaries"

	// IndexDirective is inserted after IndexTable by force_index_scan.
	IndexDirective = "/*+ INDEX(medicare_beneficiaries idx_beneficiaries_geography) */"
)

// Handler transforms query text.
type Handler func(sql string) string

// Pipeline holds the handlers for known hints.
type Pipeline struct {
	rowLimit int
	handlers map[pattern.Hint]Handler
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// OptRowLimit sets the limit appended by add_limit. Non-positive values
// are ignored.
func OptRowLimit(i int) Option {
	return func(p *Pipeline) {
		if i > 0 {
			p.rowLimit = i
		}
	}
}

// New creates a Pipeline with handlers for add_limit, force_index_scan
// and optimize_joins.
func New(opts ...Option) *Pipeline {
	res := &Pipeline{rowLimit: DefaultRowLimit}
	for _, opt := range opts {
		opt(res)
	}

	res.handlers = map[pattern.Hint]Handler{
		pattern.AddLimit:       res.addLimit,
		pattern.ForceIndexScan: forceIndexScan,
		// reserved for join reordering, intentionally inert
		pattern.OptimizeJoins: func(sql string) string { return sql },
	}
	return res
}

// RowLimit returns the limit appended by add_limit.
func (p *Pipeline) RowLimit() int {
	return p.rowLimit
}

// Known reports whether the pipeline recognizes the hint.
func (p *Pipeline) Known(h pattern.Hint) bool {
	_, ok := p.handlers[h]
	return ok
}

// Apply runs the hints over sql in order. Unknown hints are skipped.
// add_limit also removes trailing semicolons and whitespace before it
// appends the limit clause.
func (p *Pipeline) Apply(sql string, hs []pattern.Hint) string {
	for _, h := range hs {
		if fn, ok := p.handlers[h]; ok {
			sql = fn(sql)
		}
	}
	return sql
}

// addLimit appends LIMIT unless the text already has one. Trailing
// semicolons are dropped so the clause ends up inside the statement.
func (p *Pipeline) addLimit(sql string) string {
	if strings.Contains(strings.ToLower(sql), "limit") {
		return sql
	}
	sql = strings.TrimRight(sql, " \t\r\n;")
	return fmt.Sprintf("%s\nLIMIT %d", sql, p.rowLimit)
}

func forceIndexScan(sql string) string {
	if !strings.Contains(sql, IndexTable) ||
		strings.Contains(sql, IndexDirective) {
		return sql
	}
	return strings.ReplaceAll(sql, IndexTable, IndexTable+" "+IndexDirective)
}
