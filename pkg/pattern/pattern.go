// Package pattern defines query patterns: named, parameterized templates
// of analytical queries together with the metadata needed to validate and
// compile them.
//
// Patterns are created by provider factory functions and never change
// afterwards. All types in this package are plain values without I/O.
package pattern

import (
	"maps"
	"slices"
)

// ParamType is the declared shape of a pattern parameter.
type ParamType string

const (
	String ParamType = "string"
	Array  ParamType = "array"
	Number ParamType = "number"
)

// Category is a grouping tag used for filtered listing. It has no effect
// on compilation.
type Category string

const (
	Medicare         Category = "medicare"
	PopulationHealth Category = "population_health"
	FacilityAdequacy Category = "facility_adequacy"
	Demographics     Category = "demographics"
)

// Categories returns the closed set of known categories.
func Categories() []Category {
	return []Category{Medicare, PopulationHealth, FacilityAdequacy, Demographics}
}

// Hint identifies a textual post-processing transform of compiled query
// text. The vocabulary is closed but open for extension: identifiers the
// pipeline does not know are ignored.
type Hint string

const (
	AddLimit       Hint = "add_limit"
	ForceIndexScan Hint = "force_index_scan"
	OptimizeJoins  Hint = "optimize_joins"
)

// ParamSpec declares one parameter of a pattern.
type ParamSpec struct {
	Type     ParamType `json:"type"     yaml:"type"`
	Required bool      `json:"required" yaml:"required"`
}

// Params is a flat set of parameter values supplied by a caller. Values
// are strings, numbers, booleans or slices of strings.
type Params map[string]any

// Pattern is a named query blueprint.
type Pattern struct {
	// ID is unique within a registry.
	ID          string
	Name        string
	Description string
	Category    Category
	// Domain is the subject area the pattern belongs to, e.g. healthcare.
	Domain string
	// Template is query text with :paramName placeholders.
	Template string
	Params   map[string]ParamSpec
	// EstimatedMillis is advisory, for callers' estimates only.
	EstimatedMillis int
	Hints           []Hint
}

// Meta is the discovery view of a Pattern. It carries no template text
// unless SQL was explicitly requested.
type Meta struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	Category        Category             `json:"category"`
	Domain          string               `json:"domain,omitempty"`
	Params          map[string]ParamSpec `json:"parameters"`
	EstimatedMillis int                  `json:"estimatedExecutionMillis"`
	Hints           []Hint               `json:"optimizationHints"`
	SQL             string               `json:"sql,omitempty"`
}

// Meta returns the discovery view of the pattern. Template text is
// included only when withSQL is true.
func (p Pattern) Meta(withSQL bool) Meta {
	res := Meta{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Category:        p.Category,
		Domain:          p.Domain,
		Params:          maps.Clone(p.Params),
		EstimatedMillis: p.EstimatedMillis,
		Hints:           slices.Clone(p.Hints),
	}
	if withSQL {
		res.SQL = p.Template
	}
	return res
}

// ParamNames returns declared parameter names in sorted order.
func (p Pattern) ParamNames() []string {
	return slices.Sorted(maps.Keys(p.Params))
}
