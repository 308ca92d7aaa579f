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
	"path/filepath"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	gnquery "github.com/gnames/gnquery/pkg"
	"github.com/gnames/gnquery/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// getBatchCmd returns the batch command.
func getBatchCmd() *cobra.Command {
	var (
		jobs    int
		outPath string
		quiet   bool
	)

	batchCmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Compile many pattern requests concurrently",
		Long: `Compile a list of pattern requests read from a JSON or YAML file.

Each request has a pattern id and its parameters. Failed requests do not
stop the batch, their errors are reported next to the request. Results
keep the order of the file.

JSON file:
  [{"patternId": "medicare_basic_eligibility",
    "parameters": {"geography_codes": ["Ohio"]}}]

YAML file:
  - pattern_id: medicare_basic_eligibility
    parameters:
      geography_codes: [Ohio]

Examples:
  gnquery batch requests.yaml
  gnquery batch requests.json -j 8 -o results.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBatch(cmd.Context(), args[0], jobs, outPath, quiet)
			if err != nil {
				printError(err)
			}
			return err
		},
	}

	batchCmd.Flags().IntVarP(
		&jobs, "jobs", "j", 0,
		"number of concurrent workers (default from config)",
	)
	batchCmd.Flags().StringVarP(
		&outPath, "output", "o", "",
		"write results to a file instead of STDOUT",
	)
	batchCmd.Flags().BoolVarP(
		&quiet, "quiet", "q", false,
		"do not show progress",
	)

	return batchCmd
}

// readRequests decodes batch requests. Files with .yaml or .yml extension
// are read as YAML, everything else as JSON.
func readRequests(path string) ([]gnquery.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, InvalidInputError("batch file", path, err.Error())
	}

	var res []gnquery.Request
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &res)
	default:
		enc := gnfmt.GNjson{}
		err = enc.Decode(data, &res)
	}
	if err != nil {
		return nil, InvalidInputError("batch file", path, err.Error())
	}
	return res, nil
}

func runBatch(
	ctx context.Context,
	path string,
	jobs int,
	outPath string,
	quiet bool,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	reqs, err := readRequests(path)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		gn.Info("No requests in <em>%s</em>", path)
		return nil
	}

	if jobs > 0 {
		gnq.Config().Update([]config.Option{config.OptJobsNumber(jobs)})
	}

	var bar *pb.ProgressBar
	tick := func() {}
	if !quiet {
		bar = pb.Full.Start(len(reqs))
		bar.Set("prefix", "Compiling ")
		bar.Set(pb.CleanOnFinish, true)
		tick = func() { bar.Increment() }
	}

	start := time.Now()
	results, err := gnq.CompileBatch(ctx, reqs, tick)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}
	dur := time.Since(start)

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return InvalidInputError("output file", outPath, err.Error())
		}
		defer f.Close()
		out = f
	}
	if err = writeJSON(out, results); err != nil {
		return err
	}

	slog.Info("Batch compiled",
		"total", len(results),
		"failed", failed,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info(`Batch complete
Compiled: %s, failed: %s.
Elapsed time: <em>%s</em>`,
		humanize.Comma(int64(len(results)-failed)),
		humanize.Comma(int64(failed)),
		gnfmt.TimeString(dur.Seconds()),
	)
	return nil
}
