package sqlset

import "context"

// All executes cmd and maps every row of the first result set, in arrival
// order. Zero rows yield an empty slice, not an error.
func All[T any](ctx context.Context, exec Executor, cmd Command, m Mapper[T]) (vals []T, err error) {
	if m == nil {
		return nil, ErrNilMapper
	}
	rows, err := openRows(ctx, exec, cmd)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows, &err)

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	rec := newRecord(cols)
	for rows.Next() {
		if err = rec.scan(rows); err != nil {
			return nil, err
		}
		v, merr := m(rec)
		if merr != nil {
			return nil, merr
		}
		vals = append(vals, v)
	}
	if rerr := rows.Err(); rerr != nil {
		return nil, rerr
	}
	return vals, nil
}

// One executes cmd and requires the first result set to hold exactly one row.
// Zero rows yield [ErrNoRows]; a second row yields [ErrTooManyRows].
func One[T any](ctx context.Context, exec Executor, cmd Command, m Mapper[T]) (T, error) {
	v, ok, err := readFirst(ctx, exec, cmd, m, true)
	if err == nil && !ok {
		err = ErrNoRows
	}
	return v, err
}

// OneOrZero is [One] except zero rows yield (zero, false, nil) instead of an
// error. Presence is reported by the bool alone; a legitimately zero-valued
// row still returns true.
func OneOrZero[T any](ctx context.Context, exec Executor, cmd Command, m Mapper[T]) (T, bool, error) {
	return readFirst(ctx, exec, cmd, m, true)
}

// First executes cmd and returns the first row of the first result set
// without probing for more rows. Zero rows yield [ErrNoRows].
func First[T any](ctx context.Context, exec Executor, cmd Command, m Mapper[T]) (T, error) {
	v, ok, err := readFirst(ctx, exec, cmd, m, false)
	if err == nil && !ok {
		err = ErrNoRows
	}
	return v, err
}

// FirstOrZero is [First] except zero rows yield (zero, false, nil).
func FirstOrZero[T any](ctx context.Context, exec Executor, cmd Command, m Mapper[T]) (T, bool, error) {
	return readFirst(ctx, exec, cmd, m, false)
}

// readFirst is the shared single-row primitive. With exact set it reads a
// second row to reject multiplicity; without it the cursor is released after
// one row so the driver never drains the remainder.
func readFirst[T any](ctx context.Context, exec Executor, cmd Command, m Mapper[T], exact bool) (val T, ok bool, err error) {
	if m == nil {
		err = ErrNilMapper
		return
	}
	rows, err := openRows(ctx, exec, cmd)
	if err != nil {
		return
	}
	defer closeRows(rows, &err)

	cols, err := rows.Columns()
	if err != nil {
		return
	}
	if !rows.Next() {
		err = rows.Err()
		return
	}
	rec := newRecord(cols)
	if err = rec.scan(rows); err != nil {
		return
	}
	if val, err = m(rec); err != nil {
		return
	}
	ok = true
	if !exact {
		return
	}
	if rows.Next() {
		err = ErrTooManyRows
		return
	}
	err = rows.Err()
	return
}

func openRows(ctx context.Context, exec Executor, cmd Command) (Rows, error) {
	return exec.QueryContext(ctx, cmd.SQL, cmd.bind().Values()...)
}

// closeRows propagates the Close error only when nothing failed earlier.
func closeRows(rows Rows, err *error) {
	if cerr := rows.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
