// Package pgsql recognizes PostgreSQL driver errors for [sqlset.Translating].
// Both the pgx and lib/pq drivers are handled.
package pgsql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/sqlset/sqlset"
)

// Recognizer translates PostgreSQL SQLSTATE codes into sqlset domain errors.
type Recognizer struct{}

var _ sqlset.Recognizer = Recognizer{}

func (Recognizer) Recognize(err error) (error, bool) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return fromSQLState(pgxErr.Code, pgxErr.ConstraintName, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fromSQLState(string(pqErr.Code), pqErr.Constraint, err)
	}
	return nil, false
}

func fromSQLState(code, constraint string, err error) (error, bool) {
	switch code {
	case "23505":
		return &sqlset.ConstraintError{Kind: sqlset.ConstraintUnique, Constraint: constraint, Err: err}, true
	case "23503":
		return &sqlset.ConstraintError{Kind: sqlset.ConstraintForeignKey, Constraint: constraint, Err: err}, true
	case "23514":
		return &sqlset.ConstraintError{Kind: sqlset.ConstraintCheck, Constraint: constraint, Err: err}, true
	case "23502":
		return &sqlset.ConstraintError{Kind: sqlset.ConstraintNotNull, Constraint: constraint, Err: err}, true
	case "40001", "40P01":
		// serialization failure, deadlock detected
		return fmt.Errorf("%w: %v", sqlset.ErrConcurrentModification, err), true
	}
	return nil, false
}
