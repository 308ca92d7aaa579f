// Package domain implements templated-selection pattern families and the
// translator that turns free-text keywords plus geography and timeframe
// into query text.
//
// Domain patterns use {name} placeholders. They form a separate family
// from registry patterns and are compiled by compiler.Substitute.
package domain

import (
	"strings"
)

// Pattern is a query template of a generic dataset domain.
type Pattern struct {
	ID          string
	Name        string
	Description string
	// Intent is reported back to callers together with the compiled SQL.
	Intent string
	// Template uses {geography}, {year}, {start_date} and {end_date}.
	Template string
}

// Rule selects a pattern when the query contains any of its keywords.
type Rule struct {
	Keywords  []string
	PatternID string
}

// Match reports whether the lowercased query contains one of the keywords.
func (r Rule) Match(query string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(query, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Dataset describes default sources, geography levels and metrics of a
// domain. It is informational only.
type Dataset struct {
	Sources         []string `json:"sources"         yaml:"sources"`
	GeographyLevels []string `json:"geographyLevels" yaml:"geography_levels"`
	Metrics         []string `json:"metrics"         yaml:"metrics"`
}

// Domain is a family of patterns with ordered selection rules.
type Domain struct {
	Name    string
	Dataset Dataset
	// Patterns are ordered, the first one is the fallback.
	Patterns []Pattern
	// Rules are checked in order, the first matching rule wins.
	Rules []Rule
	// DateRange adds start_date and end_date parameters derived from the
	// year.
	DateRange bool
}

// Select returns the pattern picked by the first matching rule, or the
// first pattern when no rule matches. Rules that refer to unknown patterns
// are skipped. It returns false only when the domain has no patterns.
func (d Domain) Select(query string) (Pattern, bool) {
	if len(d.Patterns) == 0 {
		return Pattern{}, false
	}

	q := strings.ToLower(query)
	for _, r := range d.Rules {
		if !r.Match(q) {
			continue
		}
		if p, ok := d.pattern(r.PatternID); ok {
			return p, true
		}
	}
	return d.Patterns[0], true
}

func (d Domain) pattern(id string) (Pattern, bool) {
	for _, p := range d.Patterns {
		if p.ID == id {
			return p, true
		}
	}
	return Pattern{}, false
}
