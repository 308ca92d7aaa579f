package pattern_test

import (
	"testing"

	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	spec := map[string]pattern.ParamSpec{
		"geography_type":  {Type: pattern.String, Required: true},
		"geography_codes": {Type: pattern.Array, Required: true},
		"min_age":         {Type: pattern.Number},
		"conditions":      {Type: pattern.Array},
	}

	tests := []struct {
		msg    string
		params pattern.Params
		valid  bool
		errs   []string
	}{
		{
			msg: "all required present",
			params: pattern.Params{
				"geography_type":  "state",
				"geography_codes": []string{"California"},
			},
			valid: true,
		},
		{
			msg:    "both required missing",
			params: pattern.Params{},
			errs: []string{
				"Missing required parameter: geography_codes",
				"Missing required parameter: geography_type",
			},
		},
		{
			msg: "array given as string",
			params: pattern.Params{
				"geography_type":  "state",
				"geography_codes": "California",
			},
			errs: []string{"Parameter geography_codes must be an array"},
		},
		{
			msg: "optional array with wrong type",
			params: pattern.Params{
				"geography_type":  "state",
				"geography_codes": []any{"Texas"},
				"conditions":      42,
			},
			errs: []string{"Parameter conditions must be an array"},
		},
		{
			msg: "undeclared params ignored",
			params: pattern.Params{
				"geography_type":  "state",
				"geography_codes": []string{"Texas"},
				"unexpected":      true,
			},
			valid: true,
		},
		{
			msg: "number type is not checked",
			params: pattern.Params{
				"geography_type":  "state",
				"geography_codes": []string{"Texas"},
				"min_age":         "sixty-five",
			},
			valid: true,
		},
		{
			msg: "missing and wrong type reported together",
			params: pattern.Params{
				"geography_codes": "Texas",
			},
			errs: []string{
				"Parameter geography_codes must be an array",
				"Missing required parameter: geography_type",
			},
		},
	}

	for _, v := range tests {
		res := pattern.Validate(spec, v.params)
		assert.Equal(t, v.valid, res.Valid, v.msg)
		assert.Equal(t, v.errs, res.Errors, v.msg)
	}
}

func TestValidateTwoMissing(t *testing.T) {
	spec := map[string]pattern.ParamSpec{
		"a": {Type: pattern.String, Required: true},
		"b": {Type: pattern.Number, Required: true},
	}
	res := pattern.Validate(spec, nil)
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 2)
	assert.Contains(t, res.String(), "; ")
}

func TestIsArray(t *testing.T) {
	tests := []struct {
		msg string
		val any
		res bool
	}{
		{"strings", []string{"a"}, true},
		{"any", []any{"a", 1}, true},
		{"empty", []string{}, true},
		{"fixed array", [2]int{1, 2}, true},
		{"string", "a", false},
		{"number", 3.5, false},
		{"nil", nil, false},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, pattern.IsArray(v.val), v.msg)
	}
}

func TestMeta(t *testing.T) {
	p := pattern.Pattern{
		ID:       "p1",
		Name:     "Pattern One",
		Category: pattern.Medicare,
		Domain:   "healthcare",
		Template: "SELECT 1",
		Params: map[string]pattern.ParamSpec{
			"z": {Type: pattern.String},
			"a": {Type: pattern.Array, Required: true},
		},
		EstimatedMillis: 300,
		Hints:           []pattern.Hint{pattern.AddLimit},
	}

	t.Run("without sql", func(t *testing.T) {
		m := p.Meta(false)
		assert.Equal(t, "p1", m.ID)
		assert.Empty(t, m.SQL)
		assert.Equal(t, 300, m.EstimatedMillis)
		require.Len(t, m.Hints, 1)
	})

	t.Run("with sql", func(t *testing.T) {
		m := p.Meta(true)
		assert.Equal(t, "SELECT 1", m.SQL)
	})

	t.Run("meta does not share pattern maps", func(t *testing.T) {
		m := p.Meta(false)
		m.Params["extra"] = pattern.ParamSpec{}
		m.Hints[0] = pattern.OptimizeJoins
		assert.Len(t, p.Params, 2)
		assert.Equal(t, pattern.AddLimit, p.Hints[0])
	})

	assert.Equal(t, []string{"a", "z"}, p.ParamNames())
}
