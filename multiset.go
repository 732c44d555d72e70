package sqlset

import "context"

// ResultSetSpec declares the contract for one expected result set of a
// multi-set command. Specs are matched to actual result sets strictly by
// position; a spec never matches more than one set.
type ResultSetSpec struct {
	// MinRows is the minimum number of rows the set must yield.
	MinRows int
	// MaxRows caps the number of rows; zero means unbounded. The cap is
	// enforced mid-stream: the row that exceeds it is never delivered.
	MaxRows int

	// OnRow receives each row of the matched set. The record is only valid
	// for the duration of the call.
	OnRow func(*Record) error

	// OnSetComplete runs exactly once after the set is exhausted and its
	// bounds have been checked. It does not run when StopOnEmpty ends the
	// operation.
	OnSetComplete func() error

	// StopOnEmpty ends the whole multi-set operation successfully when the
	// matched set yields zero rows. No further sets are consumed and no
	// further callbacks fire. An escape valve for optional trailing data.
	StopOnEmpty bool
}

// MultiSet executes cmd and walks its result sets in arrival order, matching
// each against the spec at the same position. A nil spec means the result set
// at that position exists but is intentionally ignored: it is discarded
// unread and not validated.
//
// Row and completion callbacks run synchronously on the calling goroutine, in
// strict row-then-set arrival order. The cursor is closed on every exit path.
func MultiSet(ctx context.Context, exec Executor, cmd Command, specs ...*ResultSetSpec) (err error) {
	if len(specs) == 0 {
		return ErrNoSpecs
	}
	rows, err := openRows(ctx, exec, cmd)
	if err != nil {
		return err
	}
	defer closeRows(rows, &err)

	for idx := 0; ; idx++ {
		if idx > 0 {
			if !rows.NextResultSet() {
				if rerr := rows.Err(); rerr != nil {
					return rerr
				}
				return finishRemaining(specs, idx)
			}
		}
		// bounds are checked only once a set has actually arrived
		if idx >= len(specs) {
			return &CardinalityError{Set: idx, Err: ErrTooManySets}
		}
		spec := specs[idx]
		if spec == nil {
			continue
		}
		stop, serr := consumeSet(ctx, rows, spec, idx)
		if serr != nil {
			return serr
		}
		if stop {
			return nil
		}
	}
}

// finishRemaining decides the outcome when the actual result sets ran out at
// spec position idx. Only the next unconsumed spec is consulted: it must
// allow stopping, or the command produced fewer sets than declared.
func finishRemaining(specs []*ResultSetSpec, idx int) error {
	if idx < len(specs) {
		s := specs[idx]
		if s == nil || !s.StopOnEmpty {
			return &CardinalityError{Set: idx, Err: ErrTooFewSets}
		}
	}
	return nil
}

func consumeSet(ctx context.Context, rows Rows, spec *ResultSetSpec, idx int) (stop bool, err error) {
	cols, err := rows.Columns()
	if err != nil {
		return false, err
	}
	rec := newRecord(cols)
	count := 0
	for rows.Next() {
		if cerr := ctx.Err(); cerr != nil {
			return false, cerr
		}
		count++
		if spec.MaxRows > 0 && count > spec.MaxRows {
			return false, &CardinalityError{Set: idx, Rows: count, Err: ErrTooManyRows}
		}
		if err := rec.scan(rows); err != nil {
			return false, err
		}
		if spec.OnRow != nil {
			if err := spec.OnRow(rec); err != nil {
				return false, err
			}
		}
	}
	if rerr := rows.Err(); rerr != nil {
		return false, rerr
	}
	if count < spec.MinRows {
		return false, &CardinalityError{Set: idx, Rows: count, Err: ErrTooFewRows}
	}
	if count == 0 && spec.StopOnEmpty {
		return true, nil
	}
	if spec.OnSetComplete != nil {
		if err := spec.OnSetComplete(); err != nil {
			return false, err
		}
	}
	return false, nil
}

// Collect builds a spec that maps every row of its result set with m and a
// destination that holds the mapped values. Bounds and flags can be set on
// the returned spec before use.
func Collect[T any](m Mapper[T]) (*ResultSetSpec, *[]T) {
	out := new([]T)
	spec := &ResultSetSpec{
		OnRow: func(r *Record) error {
			v, err := m(r)
			if err != nil {
				return err
			}
			*out = append(*out, v)
			return nil
		},
	}
	return spec, out
}
