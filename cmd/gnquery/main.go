// Package main provides the gnquery CLI application.
// gnquery compiles parameterized analytical query patterns into SQL.
package main

import "github.com/gnames/gnquery/cmd"

func main() {
	cmd.Execute()
}
