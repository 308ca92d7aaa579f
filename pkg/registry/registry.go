// Package registry keeps the catalog of query patterns.
//
// A Registry is built once from a list of providers and is read-only
// afterwards, so it can be shared by concurrent readers without locking.
// There is no process-wide instance: applications construct a registry at
// startup and pass it to whatever needs it.
package registry

import (
	"log/slog"
	"slices"

	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/gnames/gnquery/pkg/provider"
)

// Override records a pattern id registered more than once. The later
// registration wins.
type Override struct {
	ID string
	// Provider registered the pattern that is kept.
	Provider string
	// Replaced is the provider whose pattern was discarded.
	Replaced string
}

type entry struct {
	pattern  pattern.Pattern
	provider string
}

// Registry maps pattern ids to patterns and indexes them by category and
// domain. Listing follows the order in which ids were first registered.
type Registry struct {
	entries    map[string]entry
	order      []string
	categories map[pattern.Category][]string
	domains    map[string][]string
	overrides  []Override
}

// New builds a registry calling every provider once, in the given order.
// A pattern with an id that was already registered replaces the earlier
// one in place; such replacements are reported by Overrides.
func New(providers ...provider.Provider) *Registry {
	res := &Registry{
		entries:    make(map[string]entry),
		categories: make(map[pattern.Category][]string),
		domains:    make(map[string][]string),
	}

	for _, prov := range providers {
		if prov == nil {
			continue
		}
		pats := prov.Patterns()
		slog.Debug("Registering patterns",
			"provider", prov.Name(), "count", len(pats))
		for i := range pats {
			res.add(pats[i], prov.Name())
		}
	}

	res.index()
	return res
}

func (r *Registry) add(p pattern.Pattern, prov string) {
	if prev, ok := r.entries[p.ID]; ok {
		ovr := Override{ID: p.ID, Provider: prov, Replaced: prev.provider}
		r.overrides = append(r.overrides, ovr)
		slog.Warn("Pattern id registered more than once, keeping the last one",
			"id", p.ID, "provider", prov, "replaced", prev.provider)
	} else {
		r.order = append(r.order, p.ID)
	}
	r.entries[p.ID] = entry{pattern: p, provider: prov}
}

// index is called once after all providers are registered, so overridden
// patterns are indexed by their final category and domain.
func (r *Registry) index() {
	for _, id := range r.order {
		p := r.entries[id].pattern
		r.categories[p.Category] = append(r.categories[p.Category], id)
		if p.Domain != "" {
			r.domains[p.Domain] = append(r.domains[p.Domain], id)
		}
	}
}

// Get returns the pattern with the given id or a PatternNotFound error.
func (r *Registry) Get(id string) (pattern.Pattern, error) {
	e, ok := r.entries[id]
	if !ok {
		return pattern.Pattern{}, PatternNotFoundError(id)
	}
	return e.pattern, nil
}

// Has reports whether a pattern with the id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.entries[id]
	return ok
}

// Provider returns the name of the provider that registered the pattern.
func (r *Registry) Provider(id string) (string, bool) {
	e, ok := r.entries[id]
	return e.provider, ok
}

// Len returns the number of registered patterns.
func (r *Registry) Len() int {
	return len(r.order)
}

// List returns all patterns in registration order.
func (r *Registry) List() []pattern.Pattern {
	return r.collect(r.order)
}

// ListByCategory returns patterns of the category in registration order.
func (r *Registry) ListByCategory(cat pattern.Category) []pattern.Pattern {
	return r.collect(r.categories[cat])
}

// ListByDomain returns patterns of the domain in registration order.
func (r *Registry) ListByDomain(domain string) []pattern.Pattern {
	return r.collect(r.domains[domain])
}

// Categories returns categories that have at least one pattern, sorted.
func (r *Registry) Categories() []pattern.Category {
	res := make([]pattern.Category, 0, len(r.categories))
	for k := range r.categories {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Domains returns domains that have at least one pattern, sorted.
func (r *Registry) Domains() []string {
	res := make([]string, 0, len(r.domains))
	for k := range r.domains {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Overrides returns every id collision seen during construction.
func (r *Registry) Overrides() []Override {
	return slices.Clone(r.overrides)
}

func (r *Registry) collect(ids []string) []pattern.Pattern {
	res := make([]pattern.Pattern, len(ids))
	for i, id := range ids {
		res[i] = r.entries[id].pattern
	}
	return res
}
