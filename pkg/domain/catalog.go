package domain

import (
	"regexp"
	"slices"
	"strings"

	"github.com/gnames/gnquery/pkg/compiler"
)

// DefaultYear is used when a translation request has no timeframe.
const DefaultYear = "2023"

var yearRe = regexp.MustCompile(`^[0-9]{4}$`)

// Entities are the resolved inputs of a translation.
type Entities struct {
	Domain    string   `json:"domain"`
	Geography []string `json:"geography"`
	Timeframe string   `json:"timeframe"`
}

// Translation is the result of Catalog.Translate.
type Translation struct {
	PatternID  string            `json:"patternId"`
	Intent     string            `json:"intent"`
	Entities   Entities          `json:"entities"`
	SQL        string            `json:"sql"`
	Parameters map[string]string `json:"parameters"`
}

// Catalog holds domains by name. It is read-only after NewCatalog.
type Catalog struct {
	domains     map[string]Domain
	names       []string
	defaultYear string
}

// Option configures a Catalog.
type Option func(*Catalog)

// OptDefaultYear sets the year used when no timeframe is given. Values
// that are not a four-digit year are ignored.
func OptDefaultYear(year string) Option {
	return func(c *Catalog) {
		if year = strings.TrimSpace(year); yearRe.MatchString(year) {
			c.defaultYear = year
		}
	}
}

// NewCatalog creates a catalog of the given domains. A later domain with
// the same name replaces an earlier one.
func NewCatalog(domains []Domain, opts ...Option) *Catalog {
	res := &Catalog{
		domains:     make(map[string]Domain),
		defaultYear: DefaultYear,
	}
	for _, opt := range opts {
		opt(res)
	}
	for _, d := range domains {
		if _, ok := res.domains[d.Name]; !ok {
			res.names = append(res.names, d.Name)
		}
		res.domains[d.Name] = d
	}
	slices.Sort(res.names)
	return res
}

// Domains returns names of all domains, sorted.
func (c *Catalog) Domains() []string {
	return slices.Clone(c.names)
}

// Domain returns a domain by name.
func (c *Catalog) Domain(name string) (Domain, bool) {
	d, ok := c.domains[name]
	return d, ok
}

// Dataset returns the dataset description of a domain.
func (c *Catalog) Dataset(name string) (Dataset, error) {
	d, ok := c.domains[name]
	if !ok {
		return Dataset{}, DomainNotFoundError(name)
	}
	return d.Dataset, nil
}

// Translate selects a pattern of the domain using keywords of the query
// and compiles it for the given geography and timeframe. An empty
// timeframe means the default year. Geography names are quoted, an empty
// geography becomes NULL. The timeframe is inserted unquoted, so only a
// four-digit year is accepted.
//
// It returns a DomainNotFound error when the domain is unknown or has no
// patterns, and a Timeframe error for anything but a year.
func (c *Catalog) Translate(
	query, domainName string,
	geography []string,
	timeframe string,
) (*Translation, error) {
	d, ok := c.domains[domainName]
	if !ok {
		return nil, DomainNotFoundError(domainName)
	}
	p, ok := d.Select(query)
	if !ok {
		return nil, DomainNotFoundError(domainName)
	}

	year := strings.TrimSpace(timeframe)
	if year == "" {
		year = c.defaultYear
	}
	if !yearRe.MatchString(year) {
		return nil, TimeframeError(timeframe)
	}

	geo := "NULL"
	if len(geography) > 0 {
		geo = compiler.QuoteList(geography)
	}

	params := map[string]string{
		"geography": geo,
		"year":      year,
	}
	if d.DateRange {
		params["start_date"] = year + "-01-01"
		params["end_date"] = year + "-12-31"
	}

	sql := strings.TrimSpace(compiler.Substitute(p.Template, params))

	res := Translation{
		PatternID: p.ID,
		Intent:    p.Intent,
		Entities: Entities{
			Domain:    domainName,
			Geography: slices.Clone(geography),
			Timeframe: year,
		},
		SQL:        sql,
		Parameters: params,
	}
	return &res, nil
}
