package gnquery

import (
	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/gnames/gnuuid"
)

// Query is a compiled pattern ready to be sent to an executor.
type Query struct {
	PatternID string `json:"patternId"`
	SQL       string `json:"sql"`
	// EstimatedMillis is copied from the pattern and is advisory only.
	EstimatedMillis int            `json:"estimatedExecutionMillis"`
	Hints           []pattern.Hint `json:"optimizationHints"`
	// Fingerprint is a UUIDv5 of the SQL text. Equal texts have equal
	// fingerprints, which makes it usable as a cache key or for log
	// correlation.
	Fingerprint string `json:"fingerprint"`
}

// BoundQuery is query text with positional placeholders and the values
// that belong to them.
type BoundQuery struct {
	PatternID   string `json:"patternId"`
	SQL         string `json:"sql"`
	Args        []any  `json:"args"`
	Fingerprint string `json:"fingerprint"`
}

// Request is one item of a batch compilation.
type Request struct {
	PatternID string         `json:"patternId"  yaml:"pattern_id"`
	Params    pattern.Params `json:"parameters" yaml:"parameters"`
}

// Result is the outcome of one batch request. Exactly one of Query and
// Error is set.
type Result struct {
	Request
	Query *Query `json:"query,omitempty"`
	Error string `json:"error,omitempty"`
	// Err keeps the original error for callers that need its code.
	Err error `json:"-"`
}

// Fingerprint returns the UUIDv5 of query text.
func Fingerprint(sql string) string {
	return gnuuid.New(sql).String()
}
