package sqlset

import (
	"context"
	"database/sql"
	"errors"
)

// fakeSet scripts one result set for the fake cursor.
type fakeSet struct {
	cols []string
	rows [][]any
}

// fakeRows is a scripted [Rows] cursor, advanced set by set like a driver.
type fakeRows struct {
	sets   []fakeSet
	set    int
	row    int // index of the current row, -1 before the first Next
	scans  int
	closed bool
	err    error
}

func newFakeRows(sets ...fakeSet) *fakeRows {
	return &fakeRows{sets: sets, row: -1}
}

func (f *fakeRows) Next() bool {
	if f.closed || f.set >= len(f.sets) {
		return false
	}
	if f.row+1 >= len(f.sets[f.set].rows) {
		return false
	}
	f.row++
	return true
}

func (f *fakeRows) NextResultSet() bool {
	if f.closed {
		return false
	}
	f.set++
	f.row = -1
	return f.set < len(f.sets)
}

func (f *fakeRows) Columns() ([]string, error) {
	if f.set >= len(f.sets) {
		return nil, errors.New("fake: no current result set")
	}
	return f.sets[f.set].cols, nil
}

func (f *fakeRows) Scan(dest ...any) error {
	f.scans++
	row := f.sets[f.set].rows[f.row]
	for i, d := range dest {
		*(d.(*any)) = row[i]
	}
	return nil
}

func (f *fakeRows) Close() error {
	f.closed = true
	return nil
}

func (f *fakeRows) Err() error { return f.err }

type fakeExecutor struct {
	rows     *fakeRows
	queryErr error
	execErr  error
	affected int64
	lastSQL  string
	lastArgs []any
}

func (f *fakeExecutor) QueryContext(_ context.Context, query string, args ...any) (Rows, error) {
	f.lastSQL, f.lastArgs = query, args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeExecutor) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	f.lastSQL, f.lastArgs = query, args
	if f.execErr != nil {
		return nil, f.execErr
	}
	return fakeResult{affected: f.affected}, nil
}

type fakeResult struct{ affected int64 }

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, nil }
