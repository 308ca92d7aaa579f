package gnquery

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gnames/gnquery/pkg/compiler"
	"github.com/gnames/gnquery/pkg/config"
	"github.com/gnames/gnquery/pkg/domain"
	"github.com/gnames/gnquery/pkg/hints"
	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/gnames/gnquery/pkg/registry"
	"golang.org/x/sync/errgroup"
)

type engine struct {
	cfg     *config.Config
	reg     *registry.Registry
	catalog *domain.Catalog
	hints   *hints.Pipeline
}

// New creates a GNquery instance. The registry and the catalog are
// shared, not copied, both are read-only after construction.
func New(
	cfg *config.Config,
	reg *registry.Registry,
	catalog *domain.Catalog,
) GNquery {
	if cfg == nil {
		cfg = config.New()
	}
	if reg == nil {
		reg = registry.New()
	}
	if catalog == nil {
		catalog = domain.NewCatalog(nil,
			domain.OptDefaultYear(cfg.Engine.DefaultYear))
	}
	return &engine{
		cfg:     cfg,
		reg:     reg,
		catalog: catalog,
		hints:   hints.New(hints.OptRowLimit(cfg.Engine.RowLimit)),
	}
}

func (e *engine) Config() *config.Config {
	return e.cfg
}

// prepare finds the pattern and validates params against it.
func (e *engine) prepare(
	id string,
	params pattern.Params,
) (pattern.Pattern, error) {
	p, err := e.reg.Get(id)
	if err != nil {
		return p, err
	}

	res := pattern.Validate(p.Params, params)
	if !res.Valid {
		return p, ValidationError(id, res.Errors)
	}

	if e.cfg.Engine.Strict {
		if names := compiler.Unresolved(p.Template, p.Params, params); len(names) > 0 {
			return p, UnresolvedPlaceholderError(id, names)
		}
	}
	return p, nil
}

func (e *engine) Compile(id string, params pattern.Params) (Query, error) {
	var res Query
	p, err := e.prepare(id, params)
	if err != nil {
		return res, err
	}

	sql := compiler.Compile(p.Template, params)
	sql = e.hints.Apply(sql, p.Hints)

	res = Query{
		PatternID:       p.ID,
		SQL:             sql,
		EstimatedMillis: p.EstimatedMillis,
		Hints:           append([]pattern.Hint(nil), p.Hints...),
		Fingerprint:     Fingerprint(sql),
	}
	slog.Debug("Compiled pattern",
		"pattern", p.ID, "fingerprint", res.Fingerprint)
	return res, nil
}

func (e *engine) Bind(id string, params pattern.Params) (BoundQuery, error) {
	var res BoundQuery
	p, err := e.prepare(id, params)
	if err != nil {
		return res, err
	}

	sql, args, err := compiler.Bind(p.Template, params)
	if err != nil {
		return res, BindError(p.ID, err)
	}
	sql = e.hints.Apply(sql, p.Hints)

	res = BoundQuery{
		PatternID:   p.ID,
		SQL:         sql,
		Args:        args,
		Fingerprint: Fingerprint(sql),
	}
	return res, nil
}

func (e *engine) CompileBatch(
	ctx context.Context,
	reqs []Request,
	tick func(),
) ([]Result, error) {
	res := make([]Result, len(reqs))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(e.cfg.JobsNumber, 1))

	for i := range reqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			r := Result{Request: reqs[i]}
			q, err := e.Compile(reqs[i].PatternID, reqs[i].Params)
			if err != nil {
				r.Err = err
				r.Error = err.Error()
			} else {
				r.Query = &q
			}
			res[i] = r

			done.Add(1)
			if tick != nil {
				tick()
			}
			return nil
		})
	}

	// gctx is always canceled after Wait, the caller's ctx is not
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, BatchCompileError(int(done.Load()), len(reqs), err)
	}
	return res, nil
}

func (e *engine) Describe(id string, withSQL bool) (pattern.Meta, error) {
	p, err := e.reg.Get(id)
	if err != nil {
		return pattern.Meta{}, err
	}
	return p.Meta(withSQL), nil
}

func (e *engine) Patterns() []pattern.Meta {
	return metas(e.reg.List())
}

func (e *engine) PatternsByCategory(cat pattern.Category) []pattern.Meta {
	return metas(e.reg.ListByCategory(cat))
}

func (e *engine) PatternsByDomain(domainName string) []pattern.Meta {
	return metas(e.reg.ListByDomain(domainName))
}

func (e *engine) Categories() []pattern.Category {
	return e.reg.Categories()
}

func (e *engine) Overrides() []registry.Override {
	return e.reg.Overrides()
}

func (e *engine) Translate(
	query, domainName string,
	geography []string,
	timeframe string,
) (*domain.Translation, error) {
	return e.catalog.Translate(query, domainName, geography, timeframe)
}

func (e *engine) Domains() []string {
	return e.catalog.Domains()
}

func (e *engine) Dataset(domainName string) (domain.Dataset, error) {
	return e.catalog.Dataset(domainName)
}

func metas(pats []pattern.Pattern) []pattern.Meta {
	res := make([]pattern.Meta, len(pats))
	for i := range pats {
		res[i] = pats[i].Meta(false)
	}
	return res
}
