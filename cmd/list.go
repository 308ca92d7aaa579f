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

	"github.com/gnames/gn"
	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/spf13/cobra"
)

// getListCmd returns the list command.
func getListCmd() *cobra.Command {
	var (
		category  string
		domain    string
		overrides bool
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered query patterns",
		Long: `List query patterns known to the engine.

Patterns are listed in registration order: medicare, population health,
facility adequacy, then user patterns from patterns.yaml.

Examples:
  # List all patterns
  gnquery list

  # List patterns of a category as JSON
  gnquery list --category facility_adequacy -f json

  # Show which patterns were replaced by user patterns
  gnquery list --overrides`,
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runList(cmd, category, domain, overrides)
			if err != nil {
				printError(err)
			}
			return err
		},
	}

	listCmd.Flags().StringVarP(
		&category, "category", "c", "",
		"filter by category (medicare, population_health, "+
			"facility_adequacy, demographics)",
	)
	listCmd.Flags().StringVarP(
		&domain, "domain", "d", "",
		"filter by domain",
	)
	listCmd.Flags().BoolVarP(
		&overrides, "overrides", "o", false,
		"show replaced pattern ids instead of patterns",
	)
	addFormatFlag(listCmd, formatText, formatJSON, formatCSV, formatTSV)

	return listCmd
}

func runList(
	cmd *cobra.Command,
	category, domain string,
	overrides bool,
) error {
	format, err := formatFlag(cmd, formatText, formatJSON, formatCSV, formatTSV)
	if err != nil {
		return err
	}

	if overrides {
		ovs := gnq.Overrides()
		if len(ovs) == 0 {
			gn.Info("No pattern overrides")
			return nil
		}
		return writeJSON(os.Stdout, ovs)
	}

	var metas []pattern.Meta
	switch {
	case category != "":
		metas = gnq.PatternsByCategory(pattern.Category(category))
	case domain != "":
		metas = gnq.PatternsByDomain(domain)
	default:
		metas = gnq.Patterns()
	}

	return writeMetas(os.Stdout, metas, format)
}
