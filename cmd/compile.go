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

	"github.com/gnames/gnquery/pkg/pattern"
	"github.com/spf13/cobra"
)

// getCompileCmd returns the compile command.
func getCompileCmd() *cobra.Command {
	var (
		jsonParams string
		pairs      []string
		bind       bool
	)

	compileCmd := &cobra.Command{
		Use:   "compile PATTERN_ID",
		Short: "Compile a query pattern into SQL",
		Long: `Validate parameters, substitute them into a pattern and apply
its optimization hints.

Parameters are given as a JSON object, as @file with a JSON object,
or as repeated key=value pairs. Array parameters in pairs are
comma-separated.

With --bind the SQL uses $1, $2, ... placeholders and the values are
printed separately, ready for a driver with parameter binding.

Examples:
  gnquery compile medicare_basic_eligibility \
    -p geography_type=state -p geography_codes=California,Texas

  gnquery compile medicare_advantage_penetration \
    --params '{"geography_codes": ["Ohio"], "year": 2022}' -f json

  gnquery compile medicare_basic_eligibility --params @params.json --bind`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCompile(cmd, args[0], jsonParams, pairs, bind)
			if err != nil {
				printError(err)
			}
			return err
		},
	}

	compileCmd.Flags().StringVar(
		&jsonParams, "params", "",
		"parameters as a JSON object or @file",
	)
	compileCmd.Flags().StringArrayVarP(
		&pairs, "param", "p", nil,
		"parameter as key=value (repeatable)",
	)
	compileCmd.Flags().BoolVarP(
		&bind, "bind", "b", false,
		"use positional placeholders instead of inlined values",
	)
	addFormatFlag(compileCmd, formatSQL, formatJSON)

	return compileCmd
}

// readParams parses command line parameters using the declarations of
// the pattern.
func readParams(
	id, jsonParams string,
	pairs []string,
) (pattern.Params, error) {
	meta, err := gnq.Describe(id, false)
	if err != nil {
		return nil, err
	}
	return parseParams(meta.Params, jsonParams, pairs)
}

func runCompile(
	cmd *cobra.Command,
	id, jsonParams string,
	pairs []string,
	bind bool,
) error {
	format, err := formatFlag(cmd, formatSQL, formatJSON)
	if err != nil {
		return err
	}

	params, err := readParams(id, jsonParams, pairs)
	if err != nil {
		return err
	}

	if bind {
		bq, err := gnq.Bind(id, params)
		if err != nil {
			return err
		}
		if format == formatJSON {
			return writeJSON(os.Stdout, bq)
		}
		fmt.Println(bq.SQL)
		for i, arg := range bq.Args {
			fmt.Fprintf(os.Stderr, "$%d = %#v\n", i+1, arg)
		}
		return nil
	}

	q, err := gnq.Compile(id, params)
	if err != nil {
		return err
	}
	if format == formatJSON {
		return writeJSON(os.Stdout, q)
	}
	fmt.Println(q.SQL)
	return nil
}
