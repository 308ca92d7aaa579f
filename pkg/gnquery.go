// Package gnquery is the entry point of the query template engine. It ties
// together the pattern registry, the parameter validator, the template
// compiler, the hint pipeline and the domain translator.
//
// The engine produces query text only. It never connects to a database and
// never executes anything, callers hand the text to an executor of their
// choice.
package gnquery

import (
	"context"

	"github.com/gnames/gnquery/pkg/config"
	"github.com/gnames/gnquery/pkg/domain"
	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/gnames/gnquery/pkg/registry"
)

var (
	// Version of GNquery, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)

// GNquery compiles registered patterns and translates domain queries.
type GNquery interface {
	// Compile validates params against the pattern, substitutes them into
	// the template and applies the pattern's hints.
	Compile(patternID string, params pattern.Params) (Query, error)

	// Bind is like Compile but returns query text with $N placeholders and
	// the ordered arguments instead of inlined literals.
	Bind(patternID string, params pattern.Params) (BoundQuery, error)

	// CompileBatch compiles independent requests concurrently. Results
	// keep the order of requests. A failed request does not stop the
	// batch, its error is kept in the corresponding Result. The tick
	// function, if given, is called once per finished request and must be
	// safe for concurrent use.
	CompileBatch(
		ctx context.Context,
		reqs []Request,
		tick func(),
	) ([]Result, error)

	// Describe returns metadata of a pattern, with its template when
	// withSQL is true.
	Describe(patternID string, withSQL bool) (pattern.Meta, error)

	// Patterns returns metadata of all registered patterns.
	Patterns() []pattern.Meta

	// PatternsByCategory returns metadata of patterns of a category.
	PatternsByCategory(cat pattern.Category) []pattern.Meta

	// PatternsByDomain returns metadata of patterns of a domain.
	PatternsByDomain(domainName string) []pattern.Meta

	// Categories returns categories that have at least one pattern.
	Categories() []pattern.Category

	// Overrides reports pattern ids registered more than once.
	Overrides() []registry.Override

	// Translate picks a domain pattern by keywords of the query and
	// compiles it for the given geography and timeframe.
	Translate(
		query, domainName string,
		geography []string,
		timeframe string,
	) (*domain.Translation, error)

	// Domains returns names of domains available for translation.
	Domains() []string

	// Dataset returns the dataset description of a domain.
	Dataset(domainName string) (domain.Dataset, error)

	// Config returns the configuration of the engine.
	Config() *config.Config
}
