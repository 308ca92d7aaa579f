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
	"slices"
	"strings"

	gnquery "github.com/gnames/gnquery/pkg"
	"github.com/spf13/cobra"
)

// Output formats understood by --format flags.
const (
	formatText = "text"
	formatJSON = "json"
	formatCSV  = "csv"
	formatTSV  = "tsv"
	formatSQL  = "sql"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", gnquery.Version, gnquery.Build)
		os.Exit(0)
	}
}

// formatFlag reads the --format flag and checks it against allowed
// values. The first allowed value is the default.
func formatFlag(cmd *cobra.Command, allowed ...string) (string, error) {
	s, _ := cmd.Flags().GetString("format")
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return allowed[0], nil
	}
	if !slices.Contains(allowed, s) {
		return "", InvalidInputError(
			"format", s, "use one of "+strings.Join(allowed, ", "))
	}
	return s, nil
}

func addFormatFlag(cmd *cobra.Command, allowed ...string) {
	cmd.Flags().StringP("format", "f", allowed[0],
		"output format: "+strings.Join(allowed, ", "))
}
