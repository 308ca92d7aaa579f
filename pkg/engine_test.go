package gnquery_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gnames/gn"
	gnquery "github.com/gnames/gnquery/pkg"
	"github.com/gnames/gnquery/pkg/config"
	"github.com/gnames/gnquery/pkg/datasets"
	"github.com/gnames/gnquery/pkg/domain"
	"github.com/gnames/gnquery/pkg/errcode"
	"github.com/gnames/gnquery/pkg/healthcare"
	"github.com/gnames/gnquery/pkg/hints"
	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/gnames/gnquery/pkg/provider"
	"github.com/gnames/gnquery/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, opts ...config.Option) gnquery.GNquery {
	t.Helper()
	cfg := config.New()
	cfg.Update(opts)
	reg := registry.New(healthcare.Providers()...)
	cat := domain.NewCatalog(datasets.All(),
		domain.OptDefaultYear(cfg.Engine.DefaultYear))
	return gnquery.New(cfg, reg, cat)
}

func basicParams() pattern.Params {
	return pattern.Params{
		"geography_type":  "state",
		"geography_codes": []string{"California"},
	}
}

func TestCompileBasicEligibility(t *testing.T) {
	gnq := newEngine(t)

	q, err := gnq.Compile("medicare_basic_eligibility", basicParams())
	require.NoError(t, err)

	assert.Contains(t, q.SQL, "state IN ('California')")
	assert.Contains(t, q.SQL, "'state' AS geography_level")
	assert.True(t, strings.HasSuffix(q.SQL, "LIMIT 1000"))
	assert.NotContains(t, q.SQL, ":geography")
	assert.Contains(t, q.SQL, hints.IndexDirective)
	assert.Equal(t, 1, strings.Count(q.SQL, hints.IndexDirective))
	assert.Equal(t, 1200, q.EstimatedMillis)
	assert.Equal(t, "medicare_basic_eligibility", q.PatternID)
	assert.Equal(t,
		[]pattern.Hint{pattern.AddLimit, pattern.ForceIndexScan}, q.Hints)
	assert.Len(t, q.Fingerprint, 36)

	q2, err := gnq.Compile("medicare_basic_eligibility", basicParams())
	require.NoError(t, err)
	assert.Equal(t, q.Fingerprint, q2.Fingerprint)
}

func TestCompileRowLimit(t *testing.T) {
	gnq := newEngine(t, config.OptEngineRowLimit(50))

	q, err := gnq.Compile("medicare_basic_eligibility", basicParams())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(q.SQL, "LIMIT 50"))
}

func TestCompileEscaping(t *testing.T) {
	gnq := newEngine(t)

	params := pattern.Params{
		"geography_type":  "county",
		"geography_codes": []string{"O'Brien", "Cook"},
	}
	q, err := gnq.Compile("medicare_basic_eligibility", params)
	require.NoError(t, err)
	assert.Contains(t, q.SQL, "county_name IN ('O''Brien', 'Cook')")
}

func TestCompileErrors(t *testing.T) {
	gnq := newEngine(t)

	tests := []struct {
		msg    string
		id     string
		params pattern.Params
		code   gn.ErrorCode
	}{
		{"unknown pattern", "nope", basicParams(), errcode.PatternNotFoundError},
		{"missing params", "medicare_basic_eligibility", pattern.Params{},
			errcode.ValidationError},
		{"not an array", "medicare_basic_eligibility",
			pattern.Params{"geography_type": "state", "geography_codes": "CA"},
			errcode.ValidationError},
	}

	for _, v := range tests {
		_, err := gnq.Compile(v.id, v.params)
		require.Error(t, err, v.msg)

		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr), v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Equal(t, v.code, gnquery.ErrorCode(err), v.msg)
	}
}

func TestCompileValidationCollectsAll(t *testing.T) {
	gnq := newEngine(t)

	_, err := gnq.Compile("medicare_basic_eligibility", pattern.Params{})
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	require.Len(t, gnErr.Vars, 3)
	details := gnErr.Vars[1].(string)
	assert.Contains(t, details, "Missing required parameter: geography_codes")
	assert.Contains(t, details, "Missing required parameter: geography_type")
}

func optionalProvider() provider.Provider {
	return provider.New("custom", func() []pattern.Pattern {
		return []pattern.Pattern{{
			ID:       "optional",
			Category: pattern.Demographics,
			Template: "SELECT * FROM t WHERE a = :a AND b = :b",
			Params: map[string]pattern.ParamSpec{
				"a": {Type: pattern.String, Required: true},
				"b": {Type: pattern.Number},
			},
		}}
	})
}

func TestStrict(t *testing.T) {
	tests := []struct {
		msg    string
		strict bool
		err    bool
	}{
		{"strict", true, true},
		{"permissive", false, false},
	}

	for _, v := range tests {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptEngineStrict(v.strict)})
		gnq := gnquery.New(cfg, registry.New(optionalProvider()), nil)

		q, err := gnq.Compile("optional", pattern.Params{"a": "x"})
		if v.err {
			require.Error(t, err, v.msg)
			assert.Equal(t, errcode.UnresolvedPlaceholderError,
				gnquery.ErrorCode(err), v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, "SELECT * FROM t WHERE a = 'x' AND b = :b", q.SQL, v.msg)
	}
}

func TestBind(t *testing.T) {
	gnq := newEngine(t)

	params := pattern.Params{
		"geography_type":  "state",
		"geography_codes": []string{"California", "Texas"},
	}
	bq, err := gnq.Bind("medicare_basic_eligibility", params)
	require.NoError(t, err)

	assert.Len(t, bq.Args, 11)
	assert.Equal(t, []any{"state", "state", "state", "California", "Texas"},
		bq.Args[:5])
	assert.Contains(t, bq.SQL, "$1 AS geography_level")
	assert.Contains(t, bq.SQL, "CASE $2")
	assert.Contains(t, bq.SQL, "state IN ($4, $5)")
	assert.NotContains(t, bq.SQL, "'California'")
	assert.True(t, strings.HasSuffix(bq.SQL, "LIMIT 1000"))

	_, err = gnq.Bind("medicare_basic_eligibility", pattern.Params{})
	assert.Error(t, err)
}

func TestCompileBatch(t *testing.T) {
	gnq := newEngine(t, config.OptJobsNumber(3))

	reqs := []gnquery.Request{
		{PatternID: "medicare_basic_eligibility", Params: basicParams()},
		{PatternID: "nope"},
		{PatternID: "medicare_advantage_penetration", Params: pattern.Params{
			"geography_codes": []string{"Ohio"}, "year": 2022,
		}},
		{PatternID: "medicare_basic_eligibility"},
	}

	var ticks atomic.Int32
	res, err := gnq.CompileBatch(context.Background(), reqs,
		func() { ticks.Add(1) })
	require.NoError(t, err)
	require.Len(t, res, 4)
	assert.Equal(t, int32(4), ticks.Load())

	assert.NotNil(t, res[0].Query)
	assert.Equal(t, "medicare_basic_eligibility", res[0].PatternID)
	assert.Nil(t, res[1].Query)
	assert.Equal(t, errcode.PatternNotFoundError, gnquery.ErrorCode(res[1].Err))
	assert.NotEmpty(t, res[1].Error)
	require.NotNil(t, res[2].Query)
	assert.Contains(t, res[2].Query.SQL, "e.enrollment_year = 2022")
	assert.Equal(t, errcode.ValidationError, gnquery.ErrorCode(res[3].Err))
}

func TestCompileBatchCanceled(t *testing.T) {
	gnq := newEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reqs := []gnquery.Request{
		{PatternID: "medicare_basic_eligibility", Params: basicParams()},
	}
	res, err := gnq.CompileBatch(ctx, reqs, nil)
	assert.Nil(t, res)
	require.Error(t, err)
	assert.Equal(t, errcode.BatchCompileError, gnquery.ErrorCode(err))
	assert.ErrorIs(t, err.(*gn.Error).Err, context.Canceled)
}

func TestDescribe(t *testing.T) {
	gnq := newEngine(t)

	meta, err := gnq.Describe("medicare_basic_eligibility", false)
	require.NoError(t, err)
	assert.Empty(t, meta.SQL)
	assert.Equal(t, pattern.Medicare, meta.Category)
	assert.Equal(t, healthcare.Domain, meta.Domain)
	assert.Contains(t, meta.Params, "geography_codes")

	meta, err = gnq.Describe("medicare_basic_eligibility", true)
	require.NoError(t, err)
	assert.Contains(t, meta.SQL, ":geography_codes")

	_, err = gnq.Describe("nope", false)
	assert.Equal(t, errcode.PatternNotFoundError, gnquery.ErrorCode(err))
}

func TestListing(t *testing.T) {
	gnq := newEngine(t)

	all := gnq.Patterns()
	assert.Len(t, all, 12)
	for _, m := range all {
		assert.Empty(t, m.SQL, m.ID)
	}
	assert.Equal(t, "medicare_basic_eligibility", all[0].ID)

	assert.NotEmpty(t, gnq.PatternsByCategory(pattern.FacilityAdequacy))
	assert.Len(t, gnq.PatternsByDomain(healthcare.Domain), 12)
	assert.Empty(t, gnq.PatternsByDomain("education"))
	assert.ElementsMatch(t, pattern.Categories(), gnq.Categories())
	assert.Empty(t, gnq.Overrides())
}

func TestTranslate(t *testing.T) {
	gnq := newEngine(t, config.OptEngineDefaultYear("2020"))

	assert.Equal(t, []string{
		"economics", "education", "environment", "housing", "transportation",
	}, gnq.Domains())

	res, err := gnq.Translate("rent burden", "housing", []string{"Maine"}, "")
	require.NoError(t, err)
	assert.Equal(t, "rent_burden", res.PatternID)
	assert.Contains(t, res.SQL, "survey_year = 2020")

	_, err = gnq.Translate("q", "healthcare", nil, "")
	assert.Equal(t, errcode.DomainNotFoundError, gnquery.ErrorCode(err))

	ds, err := gnq.Dataset("environment")
	require.NoError(t, err)
	assert.NotEmpty(t, ds.Metrics)
}
