/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnquery/pkg/pattern"
)

// parseParams merges parameters given as a JSON object (inline or
// @file) with key=value pairs. Pairs win over JSON. Values of pairs are
// typed by the pattern declarations: array parameters are split on
// commas, number parameters are parsed as numbers when possible.
func parseParams(
	spec map[string]pattern.ParamSpec,
	jsonArg string,
	pairs []string,
) (pattern.Params, error) {
	res := make(pattern.Params)

	if jsonArg = strings.TrimSpace(jsonArg); jsonArg != "" {
		data := []byte(jsonArg)
		if path, ok := strings.CutPrefix(jsonArg, "@"); ok {
			var err error
			if data, err = os.ReadFile(path); err != nil {
				return nil, InvalidInputError("parameters file", path, err.Error())
			}
		}
		enc := gnfmt.GNjson{}
		if err := enc.Decode(data, &res); err != nil {
			return nil, InvalidInputError("parameters", jsonArg, err.Error())
		}
	}

	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, InvalidInputError("parameter", pair, "use key=value")
		}
		res[k] = typedValue(spec[k].Type, v)
	}

	return res, nil
}

func typedValue(typ pattern.ParamType, v string) any {
	switch typ {
	case pattern.Array:
		items := strings.Split(v, ",")
		res := make([]string, 0, len(items))
		for _, s := range items {
			if s = strings.TrimSpace(s); s != "" {
				res = append(res, s)
			}
		}
		return res
	case pattern.Number:
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return v
}
