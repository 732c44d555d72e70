package sqlset

import (
	"context"
	"database/sql"
	"errors"
)

// Recognizer inspects a raw driver error for vendor-specific signatures and
// returns the matching domain error. ok is false when the error is not
// recognized, in which case the original error propagates unchanged.
//
// Implementations live in the drivers subpackages, one per vendor; the
// executor itself stays vendor-agnostic.
type Recognizer interface {
	Recognize(err error) (derr error, ok bool)
}

// RecognizerFunc adapts a function to the [Recognizer] interface.
type RecognizerFunc func(error) (error, bool)

func (f RecognizerFunc) Recognize(err error) (error, bool) { return f(err) }

// Translating wraps an [Executor] so every driver error raised during
// execution or row iteration is offered to the recognizers; the first match
// wins. Errors that are already domain errors pass through untouched, so
// translation never happens twice.
func Translating(exec Executor, recs ...Recognizer) Executor {
	return translatingExecutor{exec: exec, recs: recs}
}

type translatingExecutor struct {
	exec Executor
	recs []Recognizer
}

func (t translatingExecutor) translate(err error) error {
	if err == nil {
		return nil
	}
	var c *ConstraintError
	if errors.As(err, &c) || errors.Is(err, ErrConcurrentModification) {
		return err
	}
	for _, r := range t.recs {
		if derr, ok := r.Recognize(err); ok {
			return derr
		}
	}
	return err
}

func (t translatingExecutor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := t.exec.ExecContext(ctx, query, args...)
	return res, t.translate(err)
}

func (t translatingExecutor) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := t.exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, t.translate(err)
	}
	return translatedRows{rows: rows, exec: t}, nil
}

// translatedRows funnels cursor-stage driver errors through the same
// recognizers as the execute call.
type translatedRows struct {
	rows Rows
	exec translatingExecutor
}

func (t translatedRows) Next() bool          { return t.rows.Next() }
func (t translatedRows) NextResultSet() bool { return t.rows.NextResultSet() }

func (t translatedRows) Scan(dest ...any) error {
	return t.exec.translate(t.rows.Scan(dest...))
}

func (t translatedRows) Columns() ([]string, error) {
	cols, err := t.rows.Columns()
	return cols, t.exec.translate(err)
}

func (t translatedRows) Close() error { return t.exec.translate(t.rows.Close()) }
func (t translatedRows) Err() error   { return t.exec.translate(t.rows.Err()) }
