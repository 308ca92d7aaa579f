package hints_test

import (
	"strings"
	"testing"

	"github.com/gnames/gnquery/pkg/hints"
	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/stretchr/testify/assert"
)

func TestAddLimit(t *testing.T) {
	p := hints.New()
	hs := []pattern.Hint{pattern.AddLimit}

	tests := []struct {
		msg string
		sql string
		res string
	}{
		{
			msg: "appends limit",
			sql: "SELECT * FROM t",
			res: "SELECT * FROM t\nLIMIT 1000",
		},
		{
			msg: "trims trailing semicolon and space",
			sql: "SELECT * FROM t;\n  ",
			res: "SELECT * FROM t\nLIMIT 1000",
		},
		{
			msg: "keeps existing limit",
			sql: "SELECT * FROM t limit 5",
			res: "SELECT * FROM t limit 5",
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, p.Apply(v.sql, hs), v.msg)
	}
}

func TestAddLimitIdempotent(t *testing.T) {
	p := hints.New()
	once := p.Apply("SELECT 1", []pattern.Hint{pattern.AddLimit})
	twice := p.Apply(once, []pattern.Hint{pattern.AddLimit})
	assert.Equal(t, once, twice)

	both := p.Apply("SELECT 1", []pattern.Hint{pattern.AddLimit, pattern.AddLimit})
	assert.Equal(t, once, both)
}

func TestRowLimitOption(t *testing.T) {
	p := hints.New(hints.OptRowLimit(50))
	assert.Equal(t, 50, p.RowLimit())
	assert.True(t,
		strings.HasSuffix(p.Apply("SELECT 1", []pattern.Hint{pattern.AddLimit}), "LIMIT 50"))

	p = hints.New(hints.OptRowLimit(-1))
	assert.Equal(t, hints.DefaultRowLimit, p.RowLimit())
}

func TestForceIndexScan(t *testing.T) {
	p := hints.New()
	hs := []pattern.Hint{pattern.ForceIndexScan}

	sql := "SELECT count(*) FROM medicare_beneficiaries b"
	res := p.Apply(sql, hs)
	assert.Equal(t,
		"SELECT count(*) FROM medicare_beneficiaries "+hints.IndexDirective+" b", res)
	assert.Equal(t, res, p.Apply(res, hs), "idempotent")

	other := "SELECT 1 FROM schools"
	assert.Equal(t, other, p.Apply(other, hs))
}

func TestInertAndUnknownHints(t *testing.T) {
	p := hints.New()
	sql := "SELECT a FROM x JOIN y USING (id)"

	assert.Equal(t, sql, p.Apply(sql, []pattern.Hint{pattern.OptimizeJoins}))
	assert.Equal(t, sql, p.Apply(sql, []pattern.Hint{"use_gpu", "parallelize"}))

	assert.True(t, p.Known(pattern.OptimizeJoins))
	assert.False(t, p.Known("use_gpu"))
}

func TestApplyOrder(t *testing.T) {
	p := hints.New()
	sql := "SELECT * FROM medicare_beneficiaries"
	res := p.Apply(sql, []pattern.Hint{"unknown", pattern.ForceIndexScan, pattern.AddLimit})
	assert.Equal(t,
		"SELECT * FROM medicare_beneficiaries "+hints.IndexDirective+"\nLIMIT 1000", res)
}
