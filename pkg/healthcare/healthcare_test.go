package healthcare_test

import (
	"strings"
	"testing"

	"github.com/gnames/gnquery/pkg/compiler"
	"github.com/gnames/gnquery/pkg/healthcare"
	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allPatterns() []pattern.Pattern {
	var res []pattern.Pattern
	for _, p := range healthcare.Providers() {
		res = append(res, p.Patterns()...)
	}
	return res
}

func sampleParams(p pattern.Pattern) pattern.Params {
	res := make(pattern.Params)
	for name, ps := range p.Params {
		switch ps.Type {
		case pattern.Array:
			res[name] = []string{"California", "O'Brien County"}
		case pattern.Number:
			res[name] = 10
		default:
			res[name] = "state"
		}
	}
	return res
}

func TestProviders(t *testing.T) {
	provs := healthcare.Providers()
	require.Len(t, provs, 3)
	assert.Equal(t, "medicare", provs[0].Name())
	assert.Equal(t, "population_health", provs[1].Name())
	assert.Equal(t, "facility_adequacy", provs[2].Name())
}

func TestPatternsWellFormed(t *testing.T) {
	seen := make(map[string]struct{})
	for _, p := range allPatterns() {
		_, dup := seen[p.ID]
		assert.False(t, dup, "duplicate id %s", p.ID)
		seen[p.ID] = struct{}{}

		assert.NotEmpty(t, p.Name, p.ID)
		assert.NotEmpty(t, p.Description, p.ID)
		assert.Contains(t, pattern.Categories(), p.Category, p.ID)
		assert.Equal(t, healthcare.Domain, p.Domain, p.ID)
		assert.Positive(t, p.EstimatedMillis, p.ID)

		placeholders := compiler.Placeholders(p.Template)
		for _, name := range placeholders {
			assert.Contains(t, p.Params, name,
				"%s: placeholder %s is not declared", p.ID, name)
		}
		for name := range p.Params {
			assert.Contains(t, placeholders, name,
				"%s: parameter %s is not used", p.ID, name)
		}

		if assert.NotEmpty(t, p.Hints, p.ID) {
			assert.NotContains(t, strings.ToLower(p.Template), "limit",
				"%s: template would suppress add_limit", p.ID)
		}
	}
}

func TestSubstitutionCompleteness(t *testing.T) {
	for _, p := range allPatterns() {
		params := sampleParams(p)
		res := pattern.Validate(p.Params, params)
		require.True(t, res.Valid, p.ID)

		sql := compiler.Compile(p.Template, params)
		for name := range p.Params {
			assert.NotContains(t, compiler.Placeholders(sql), name, p.ID)
		}
		assert.Empty(t, compiler.Unresolved(p.Template, p.Params, params), p.ID)
		assert.Contains(t, sql, "'O''Brien County'", p.ID)
	}
}
