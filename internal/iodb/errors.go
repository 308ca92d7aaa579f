package iodb

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlib"
	"github.com/gnames/gnquery/pkg/errcode"
)

// ConnectionError is returned when the database cannot be reached.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to <em>%s:%d/%s</em> as <em>%s</em>

<em>How to fix:</em>
  1. Check that the server is running
  2. Review the database section of config.yaml
  3. Or set GNQUERY_DATABASE_* environment variables`

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{host, port, database, user},
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// NotConnectedError is returned when Execute is called before Connect.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database is not connected",
		Err:  errors.New("database is not connected"),
	}
}

// QueryError is returned when the store rejects or fails a query.
type QueryError struct {
	error
	gnlib.MessageBase
}

// NewQueryError creates a new query error.
func NewQueryError(err error) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Query Failed</title>
<warn>The database could not run the compiled query.</warn>

<em>How to fix:</em>
  1. Inspect the query: <em>gnquery compile PATTERN_ID ...</em>
  2. Check that the tables used by the pattern exist in the database
  3. Check the server log for details
`,
		Vars: nil,
	}

	return QueryError{
		error:       fmt.Errorf("query failed: %w", err),
		MessageBase: msgBase,
	}
}

// ScanRowError is returned when a result row cannot be decoded.
type ScanRowError struct {
	error
	gnlib.MessageBase
}

// NewScanRowError creates a new row decoding error.
func NewScanRowError(err error) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Cannot Read Query Results</title>
<warn>A result row contains a value that cannot be decoded.</warn>
`,
		Vars: nil,
	}

	return ScanRowError{
		error:       fmt.Errorf("failed to read row: %w", err),
		MessageBase: msgBase,
	}
}

func (e QueryError) Unwrap() error {
	return e.error
}

func (e ScanRowError) Unwrap() error {
	return e.error
}
