// Package compiler turns pattern templates into query text.
//
// Two placeholder syntaxes are supported and kept apart on purpose:
//
//   - :name placeholders of registry patterns, handled by Compile and Bind;
//   - {name} placeholders of domain patterns, handled by Substitute.
//
// Compile reproduces plain text substitution with single-quote escaping.
// Bind produces query text with native $N placeholders and a separate
// argument list using sqlx named query compilation, which is the form to
// prefer whenever the receiving engine supports parameter binding.
package compiler

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/jmoiron/sqlx"
)

// placeholderRe matches :name tokens. Type casts (::name) are matched as
// well so they can be skipped as a whole.
var placeholderRe = regexp.MustCompile(`::?[A-Za-z_][A-Za-z0-9_]*`)

// Compile replaces every :name placeholder of the template that has a
// value in params. Placeholders without a value are left untouched, use
// Unresolved to find them.
//
// Strings are wrapped in single quotes with inner quotes doubled, arrays
// become a comma-separated list of such strings, numbers and booleans are
// inserted as is.
func Compile(tmpl string, params pattern.Params) string {
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(tok string) string {
		name, ok := tokenName(tok)
		if !ok {
			return tok
		}
		val, ok := params[name]
		if !ok {
			return tok
		}
		return Literal(val)
	})
}

// Bind replaces every :name placeholder that has a value in params with
// positional $N references and returns the arguments in matching order.
// Array values expand to one reference per element, so `IN (:codes)`
// works unchanged. Every occurrence of a placeholder gets its own
// references. Empty arrays bind a single NULL argument. Placeholders
// without a value and type casts are left untouched.
func Bind(tmpl string, params pattern.Params) (string, []any, error) {
	named, values := escapeNamed(tmpl, params)

	q, args, err := sqlx.Named(named, values)
	if err != nil {
		return "", nil, err
	}
	q, args, err = sqlx.In(q, args...)
	if err != nil {
		return "", nil, err
	}
	return sqlx.Rebind(sqlx.DOLLAR, q), args, nil
}

// escapeNamed prepares a template for sqlx.Named. Only placeholders with
// a value stay as :name, every other colon is doubled so sqlx keeps it as
// a literal. It also returns the values of the kept placeholders, with
// empty arrays replaced by nil.
func escapeNamed(tmpl string, params pattern.Params) (string, map[string]any) {
	var sb strings.Builder
	values := make(map[string]any)

	var last int
	for _, loc := range placeholderRe.FindAllStringIndex(tmpl, -1) {
		sb.WriteString(strings.ReplaceAll(tmpl[last:loc[0]], ":", "::"))
		last = loc[1]

		tok := tmpl[loc[0]:loc[1]]
		name, ok := tokenName(tok)
		val, found := params[name]
		if !ok || !found {
			sb.WriteString(strings.ReplaceAll(tok, ":", "::"))
			continue
		}

		if pattern.IsArray(val) && reflect.ValueOf(val).Len() == 0 {
			val = nil
		}
		values[name] = val
		sb.WriteString(tok)
	}
	sb.WriteString(strings.ReplaceAll(tmpl[last:], ":", "::"))

	return sb.String(), values
}

// Placeholders returns the names of :name placeholders in the order of
// their first appearance.
func Placeholders(tmpl string) []string {
	var res []string
	for _, tok := range placeholderRe.FindAllString(tmpl, -1) {
		name, ok := tokenName(tok)
		if ok && !slices.Contains(res, name) {
			res = append(res, name)
		}
	}
	return res
}

// Unresolved returns declared parameters whose placeholders appear in the
// template but have no value in params. Placeholders that are not declared
// in spec are not reported.
func Unresolved(
	tmpl string,
	spec map[string]pattern.ParamSpec,
	params pattern.Params,
) []string {
	var res []string
	for _, name := range Placeholders(tmpl) {
		if _, declared := spec[name]; !declared {
			continue
		}
		if _, ok := params[name]; !ok {
			res = append(res, name)
		}
	}
	return res
}

// Literal converts a parameter value to its query text form. Empty arrays
// become NULL.
func Literal(val any) string {
	switch v := val.(type) {
	case nil:
		return "NULL"
	case string:
		return Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case []string:
		if len(v) == 0 {
			return "NULL"
		}
		return QuoteList(v)
	}

	if pattern.IsArray(val) {
		rv := reflect.ValueOf(val)
		if rv.Len() == 0 {
			return "NULL"
		}
		items := make([]string, rv.Len())
		for i := range rv.Len() {
			items[i] = fmt.Sprint(rv.Index(i).Interface())
		}
		return QuoteList(items)
	}
	return fmt.Sprint(val)
}

// Quote wraps s in single quotes, doubling single quotes inside.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// QuoteList quotes every item and joins them with ", ".
func QuoteList(items []string) string {
	quoted := make([]string, len(items))
	for i := range items {
		quoted[i] = Quote(items[i])
	}
	return strings.Join(quoted, ", ")
}

// Substitute replaces {name} tokens with the given values. The values are
// inserted verbatim, callers quote them as needed. Unknown tokens stay.
func Substitute(tmpl string, values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", values[k])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

func tokenName(tok string) (string, bool) {
	if strings.HasPrefix(tok, "::") {
		return "", false
	}
	return tok[1:], true
}
