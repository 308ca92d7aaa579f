// Package iopatterns loads user-defined query patterns from a YAML file
// and exposes them as a provider. The provider is meant to be registered
// after the built-in ones, so user patterns can replace built-in patterns
// with the same id.
package iopatterns

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/gnames/gnquery/pkg/compiler"
	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/gnames/gnquery/pkg/provider"
	"gopkg.in/yaml.v3"
)

// ProviderName is the name under which user patterns are registered.
const ProviderName = "custom"

// File is the layout of a patterns file.
type File struct {
	Patterns []Definition `yaml:"patterns"`
}

// Definition is a pattern as written in a patterns file.
type Definition struct {
	ID              string                       `yaml:"id"`
	Name            string                       `yaml:"name"`
	Description     string                       `yaml:"description"`
	Category        string                       `yaml:"category"`
	Domain          string                       `yaml:"domain"`
	Template        string                       `yaml:"template"`
	Params          map[string]pattern.ParamSpec `yaml:"parameters"`
	EstimatedMillis int                          `yaml:"estimated_millis"`
	Hints           []string                     `yaml:"hints"`
}

// Load reads user patterns from path. A missing file is not an error, it
// gives a provider without patterns.
func Load(path string) (provider.Provider, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("No user patterns file", "path", path)
		return newProvider(nil), nil
	}
	if err != nil {
		return nil, PatternsFileError(path, err)
	}

	pats, err := Parse(data)
	if err != nil {
		return nil, PatternsFileError(path, err)
	}
	slog.Info("Loaded user patterns", "path", path, "count", len(pats))
	return newProvider(pats), nil
}

// Parse decodes and checks pattern definitions.
func Parse(data []byte) ([]pattern.Pattern, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	res := make([]pattern.Pattern, 0, len(f.Patterns))
	for i, d := range f.Patterns {
		p, err := d.toPattern()
		if err != nil {
			return nil, PatternDefinitionError(i, d.ID, err)
		}
		res = append(res, p)
	}
	return res, nil
}

func (d Definition) toPattern() (pattern.Pattern, error) {
	var res pattern.Pattern
	id := strings.TrimSpace(d.ID)
	if id == "" {
		return res, errors.New("id is empty")
	}
	if strings.TrimSpace(d.Template) == "" {
		return res, errors.New("template is empty")
	}

	cat := pattern.Category(d.Category)
	if !slices.Contains(pattern.Categories(), cat) {
		return res, errors.New("unknown category " + d.Category)
	}

	for name, ps := range d.Params {
		switch ps.Type {
		case pattern.String, pattern.Array, pattern.Number:
		default:
			return res, errors.New(
				"parameter " + name + " has unknown type " + string(ps.Type))
		}
	}

	for _, name := range compiler.Placeholders(d.Template) {
		if _, ok := d.Params[name]; !ok {
			slog.Warn("Placeholder is not declared as a parameter",
				"pattern", id, "placeholder", name)
		}
	}

	hs := make([]pattern.Hint, len(d.Hints))
	for i := range d.Hints {
		hs[i] = pattern.Hint(d.Hints[i])
	}

	res = pattern.Pattern{
		ID:              id,
		Name:            d.Name,
		Description:     d.Description,
		Category:        cat,
		Domain:          d.Domain,
		Template:        d.Template,
		Params:          d.Params,
		EstimatedMillis: d.EstimatedMillis,
		Hints:           hs,
	}
	if res.Params == nil {
		res.Params = make(map[string]pattern.ParamSpec)
	}
	return res, nil
}

func newProvider(pats []pattern.Pattern) provider.Provider {
	return provider.New(ProviderName, func() []pattern.Pattern {
		return slices.Clone(pats)
	})
}
