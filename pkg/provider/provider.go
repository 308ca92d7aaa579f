// Package provider defines the source of patterns for a registry.
package provider

import "github.com/gnames/gnquery/pkg/pattern"

// Provider produces the patterns of one subject domain. Providers are
// independent of each other, a registry is the only place where their
// output is combined.
type Provider interface {
	// Name identifies the provider in logs and override reports.
	Name() string

	// Patterns returns fully formed patterns. It is called once per
	// registry construction.
	Patterns() []pattern.Pattern
}

type funcProvider struct {
	name    string
	factory func() []pattern.Pattern
}

// New adapts a factory function to the Provider interface.
func New(name string, factory func() []pattern.Pattern) Provider {
	return funcProvider{name: name, factory: factory}
}

func (f funcProvider) Name() string {
	return f.name
}

func (f funcProvider) Patterns() []pattern.Pattern {
	if f.factory == nil {
		return nil
	}
	return f.factory()
}
