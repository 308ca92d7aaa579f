package registry_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnquery/pkg/errcode"
	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/gnames/gnquery/pkg/provider"
	"github.com/gnames/gnquery/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticProvider(name string, pats ...pattern.Pattern) provider.Provider {
	return provider.New(name, func() []pattern.Pattern { return pats })
}

func TestGet(t *testing.T) {
	reg := registry.New(staticProvider("one",
		pattern.Pattern{ID: "a", Category: pattern.Medicare, Template: "SELECT 1"},
	))

	p, err := reg.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", p.Template)
	assert.True(t, reg.Has("a"))

	_, err = reg.Get("nope")
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr), "Error should be of type *gn.Error")
	assert.Equal(t, errcode.PatternNotFoundError, gnErr.Code)
	assert.Equal(t, []any{"nope"}, gnErr.Vars)
	assert.False(t, reg.Has("nope"))
}

func TestOverride(t *testing.T) {
	first := pattern.Pattern{ID: "dup", Name: "first", Category: pattern.Medicare}
	second := pattern.Pattern{ID: "dup", Name: "second", Category: pattern.Demographics}

	t.Run("within one provider", func(t *testing.T) {
		reg := registry.New(staticProvider("p", first, second))
		p, err := reg.Get("dup")
		require.NoError(t, err)
		assert.Equal(t, "second", p.Name)
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("across providers", func(t *testing.T) {
		reg := registry.New(
			staticProvider("builtin", first),
			staticProvider("custom", second),
		)
		p, err := reg.Get("dup")
		require.NoError(t, err)
		assert.Equal(t, "second", p.Name)

		ovr := reg.Overrides()
		require.Len(t, ovr, 1)
		assert.Equal(t, registry.Override{
			ID: "dup", Provider: "custom", Replaced: "builtin",
		}, ovr[0])

		prov, ok := reg.Provider("dup")
		assert.True(t, ok)
		assert.Equal(t, "custom", prov)

		assert.Empty(t, reg.ListByCategory(pattern.Medicare),
			"category index follows the kept pattern")
		assert.Len(t, reg.ListByCategory(pattern.Demographics), 1)
	})
}

func TestListing(t *testing.T) {
	reg := registry.New(
		staticProvider("health",
			pattern.Pattern{ID: "m1", Category: pattern.Medicare, Domain: "healthcare"},
			pattern.Pattern{ID: "p1", Category: pattern.PopulationHealth, Domain: "healthcare"},
			pattern.Pattern{ID: "m2", Category: pattern.Medicare, Domain: "healthcare"},
		),
		nil,
		staticProvider("misc",
			pattern.Pattern{ID: "d1", Category: pattern.Demographics},
		),
	)

	ids := func(pats []pattern.Pattern) []string {
		var res []string
		for _, p := range pats {
			res = append(res, p.ID)
		}
		return res
	}

	assert.Equal(t, 4, reg.Len())
	assert.Equal(t, []string{"m1", "p1", "m2", "d1"}, ids(reg.List()))
	assert.Equal(t, []string{"m1", "m2"}, ids(reg.ListByCategory(pattern.Medicare)))
	assert.Empty(t, reg.ListByCategory(pattern.FacilityAdequacy))
	assert.Equal(t, []string{"m1", "p1", "m2"}, ids(reg.ListByDomain("healthcare")))
	assert.Equal(t, []string{"healthcare"}, reg.Domains())
	assert.Equal(t,
		[]pattern.Category{pattern.Demographics, pattern.Medicare, pattern.PopulationHealth},
		reg.Categories())
	assert.Empty(t, reg.Overrides())
}

func TestConcurrentReads(t *testing.T) {
	reg := registry.New(staticProvider("p",
		pattern.Pattern{ID: "a", Category: pattern.Medicare},
		pattern.Pattern{ID: "b", Category: pattern.Medicare},
	))

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_, err := reg.Get("a")
				assert.NoError(t, err)
				assert.Len(t, reg.ListByCategory(pattern.Medicare), 2)
			}
		}()
	}
	wg.Wait()
}
