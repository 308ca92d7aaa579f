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
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlib"
	"github.com/gnames/gnquery/pkg/errcode"
)

// InvalidInputError is returned for malformed command line input.
func InvalidInputError(what, val, hint string) error {
	msg := "Invalid %s <em>%s</em>: %s"
	return &gn.Error{
		Code: errcode.InvalidInputError,
		Msg:  msg,
		Vars: []any{what, val, hint},
		Err:  fmt.Errorf("invalid %s %q: %s", what, val, hint),
	}
}

// printError shows a user-facing message for errors of both flavors used
// in the project.
func printError(err error) {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		gn.PrintErrorMessage(err)
		return
	}
	gnlib.PrintUserMessage(err)
}
