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
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// getTranslateCmd returns the translate command.
func getTranslateCmd() *cobra.Command {
	var (
		domainName string
		geography  []string
		timeframe  string
	)

	translateCmd := &cobra.Command{
		Use:   "translate QUERY",
		Short: "Translate a keyword query into SQL of a dataset domain",
		Long: `Pick a pattern of a dataset domain by keywords of the query and
compile it for the given geography and year.

If no keyword matches, the first pattern of the domain is used. Without
--timeframe the default year from config.yaml is used.

Examples:
  gnquery translate "test scores" -d education -g Ohio,Texas
  gnquery translate "air pollution" -d environment -g Utah -t 2021 -f json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTranslate(cmd, strings.Join(args, " "),
				domainName, geography, timeframe)
			if err != nil {
				printError(err)
			}
			return err
		},
	}

	translateCmd.Flags().StringVarP(
		&domainName, "domain", "d", "",
		"dataset domain (see 'gnquery domains')",
	)
	_ = translateCmd.MarkFlagRequired("domain")
	translateCmd.Flags().StringSliceVarP(
		&geography, "geography", "g", nil,
		"geography names, comma-separated",
	)
	translateCmd.Flags().StringVarP(
		&timeframe, "timeframe", "t", "",
		"year of the data",
	)
	addFormatFlag(translateCmd, formatSQL, formatJSON)

	return translateCmd
}

func runTranslate(
	cmd *cobra.Command,
	query, domainName string,
	geography []string,
	timeframe string,
) error {
	format, err := formatFlag(cmd, formatSQL, formatJSON)
	if err != nil {
		return err
	}

	res, err := gnq.Translate(query, domainName, geography, timeframe)
	if err != nil {
		return err
	}

	if format == formatJSON {
		return writeJSON(os.Stdout, res)
	}
	fmt.Println(res.SQL)
	return nil
}
