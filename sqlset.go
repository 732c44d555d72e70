// Package sqlset executes SQL commands whose results arrive as an ordered
// stream of result sets, and maps rows into typed values under declared
// cardinality contracts.
//
// A [Command] is executed at most once per call. The select family
// ([All], [One], [First] and friends) consumes the first result set; [MultiSet]
// walks every result set, matching each against a [ResultSetSpec]. Vendor
// driver errors are normalized by wrapping the executor with [Translating]
// and a recognizer from one of the drivers subpackages.
package sqlset

import (
	"context"
	"database/sql"
)

// Rows is the native row cursor produced by executing a command.
// It is satisfied by [*sql.Rows].
type Rows interface {
	Next() bool
	NextResultSet() bool
	Scan(dest ...any) error
	Columns() ([]string, error)
	Close() error
	Err() error
}

// Queryer runs a query and returns its row cursor.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (Rows, error)
}

// Executor is the connection capability the execution functions consume.
// The lifecycle of the underlying connection belongs to whoever supplied it;
// sqlset never pools or reuses connections on its own.
type Executor interface {
	Queryer
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
