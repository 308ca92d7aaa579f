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

	"github.com/spf13/cobra"
)

// getShowCmd returns the show command.
func getShowCmd() *cobra.Command {
	var withSQL bool

	showCmd := &cobra.Command{
		Use:   "show PATTERN_ID",
		Short: "Show metadata of a query pattern",
		Long: `Show parameters, hints and estimates of a query pattern as JSON.

Examples:
  gnquery show medicare_basic_eligibility
  gnquery show medicare_basic_eligibility --sql`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := gnq.Describe(args[0], withSQL)
			if err != nil {
				printError(err)
				return err
			}
			return writeJSON(os.Stdout, meta)
		},
	}

	showCmd.Flags().BoolVarP(
		&withSQL, "sql", "s", false,
		"include the template text",
	)

	return showCmd
}
