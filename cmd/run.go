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
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnquery/internal/iodb"
	"github.com/gnames/gnquery/pkg/db"
	"github.com/spf13/cobra"
)

// getRunCmd returns the run command.
func getRunCmd() *cobra.Command {
	var (
		jsonParams string
		pairs      []string
	)

	runCmd := &cobra.Command{
		Use:   "run PATTERN_ID",
		Short: "Compile a pattern and execute it against the database",
		Long: `Compile a pattern with bound parameters and execute it against
the PostgreSQL-compatible store configured in the database section of
config.yaml.

Parameters are given the same way as for 'gnquery compile'.

Examples:
  gnquery run medicare_basic_eligibility -p geography_codes=Ohio
  gnquery run hospital_bed_capacity --params @params.json -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRun(cmd, args[0], jsonParams, pairs)
			if err != nil {
				printError(err)
			}
			return err
		},
	}

	runCmd.Flags().StringVar(
		&jsonParams, "params", "",
		"parameters as a JSON object or @file",
	)
	runCmd.Flags().StringArrayVarP(
		&pairs, "param", "p", nil,
		"parameter as key=value (repeatable)",
	)
	addFormatFlag(runCmd, formatCSV, formatTSV, formatJSON)

	return runCmd
}

func runRun(
	cmd *cobra.Command,
	id, jsonParams string,
	pairs []string,
) error {
	format, err := formatFlag(cmd, formatCSV, formatTSV, formatJSON)
	if err != nil {
		return err
	}

	params, err := readParams(id, jsonParams, pairs)
	if err != nil {
		return err
	}

	bq, err := gnq.Bind(id, params)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	exec := iodb.NewPgxExecutor()
	rows, dur, err := execute(ctx, exec, bq.SQL, bq.Args)
	if err != nil {
		return err
	}

	slog.Info("Query executed",
		"pattern_id", id,
		"fingerprint", bq.Fingerprint,
		"rows", rows.Len(),
		"duration", gnfmt.TimeString(dur.Seconds()),
	)

	if err = writeRows(os.Stdout, rows, format); err != nil {
		return err
	}
	gn.Info("Fetched %s rows in <em>%s</em>",
		humanize.Comma(int64(rows.Len())), gnfmt.TimeString(dur.Seconds()))
	return nil
}

// execute connects with the configured database, runs the query and
// closes the connection.
func execute(
	ctx context.Context,
	exec db.Executor,
	sql string,
	args []any,
) (*db.Rows, time.Duration, error) {
	if err := exec.Connect(ctx, &gnq.Config().Database); err != nil {
		return nil, 0, err
	}
	defer exec.Close()

	start := time.Now()
	rows, err := exec.Execute(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	return rows, time.Since(start), nil
}
