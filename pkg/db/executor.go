// Package db defines the contract for executing compiled queries.
//
// The query engine never uses it. It is the narrow seam through which a
// host application (the CLI run command) sends compiled text to an
// analytical store.
package db

import (
	"context"
	"fmt"

	"github.com/gnames/gnquery/pkg/config"
)

// Executor runs query text against a database.
type Executor interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close releases all connections.
	Close() error

	// Execute runs sql with optional positional arguments and returns
	// all resulting rows.
	Execute(ctx context.Context, sql string, args ...any) (*Rows, error)
}

// Rows is a fully read result set.
type Rows struct {
	Columns []string
	Values  [][]any
}

// Len returns the number of rows.
func (r *Rows) Len() int {
	return len(r.Values)
}

// Strings returns values of the i-th row as text. NULL becomes an empty
// string.
func (r *Rows) Strings(i int) []string {
	row := r.Values[i]
	res := make([]string, len(row))
	for j, v := range row {
		if v == nil {
			continue
		}
		res[j] = fmt.Sprint(v)
	}
	return res
}

// Maps returns rows as column name to value maps.
func (r *Rows) Maps() []map[string]any {
	res := make([]map[string]any, len(r.Values))
	for i, row := range r.Values {
		m := make(map[string]any, len(r.Columns))
		for j, col := range r.Columns {
			if j < len(row) {
				m[col] = row[j]
			}
		}
		res[i] = m
	}
	return res
}
