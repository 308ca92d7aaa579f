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
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnquery/pkg/db"
	"github.com/gnames/gnquery/pkg/pattern"
)

func writeJSON(w io.Writer, v any) error {
	enc := gnfmt.GNjson{Pretty: true}
	bs, err := enc.Encode(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bs))
	return err
}

func separator(format string) rune {
	if format == formatTSV {
		return '\t'
	}
	return ','
}

// writeMetas prints pattern metadata as a table or as JSON.
func writeMetas(w io.Writer, metas []pattern.Meta, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, metas)
	case formatCSV, formatTSV:
		sep := separator(format)
		header := []string{"ID", "Category", "Domain", "Name", "Parameters",
			"EstimatedMillis"}
		fmt.Fprintln(w, gnfmt.ToCSV(header, sep))
		for _, m := range metas {
			row := []string{
				m.ID, string(m.Category), m.Domain, m.Name,
				strings.Join(paramList(m.Params), " "),
				fmt.Sprint(m.EstimatedMillis),
			}
			fmt.Fprintln(w, gnfmt.ToCSV(row, sep))
		}
		return nil
	default:
		for _, m := range metas {
			fmt.Fprintf(w, "%-34s %-18s %s\n", m.ID, m.Category, m.Name)
		}
		return nil
	}
}

// paramList renders declarations as name:type, with * for required.
func paramList(spec map[string]pattern.ParamSpec) []string {
	p := pattern.Pattern{Params: spec}
	names := p.ParamNames()
	res := make([]string, len(names))
	for i, name := range names {
		ps := spec[name]
		res[i] = name + ":" + string(ps.Type)
		if ps.Required {
			res[i] += "*"
		}
	}
	return res
}

// writeRows prints result rows as CSV, TSV or JSON objects.
func writeRows(w io.Writer, rows *db.Rows, format string) error {
	if format == formatJSON {
		return writeJSON(w, rows.Maps())
	}

	sep := separator(format)
	fmt.Fprintln(w, gnfmt.ToCSV(rows.Columns, sep))
	for i := range rows.Len() {
		fmt.Fprintln(w, gnfmt.ToCSV(rows.Strings(i), sep))
	}
	return nil
}
