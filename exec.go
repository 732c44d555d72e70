package sqlset

import "context"

// NonQuery executes a statement that returns no rows and reports the number
// of affected rows. After a successful execution the command's OnParams
// callback, if any, receives the bound parameter collection so output
// parameters can be read back.
func NonQuery(ctx context.Context, exec Executor, cmd Command) (int64, error) {
	p := cmd.bind()
	res, err := exec.ExecContext(ctx, cmd.SQL, p.Values()...)
	if err != nil {
		return 0, err
	}
	if cmd.OnParams != nil {
		cmd.OnParams(p)
	}
	return res.RowsAffected()
}

// Scalar executes cmd and returns the first column of the first row of the
// first result set as T. A database NULL or an absent row yields the zero
// value of T, not an error.
func Scalar[T any](ctx context.Context, exec Executor, cmd Command) (T, error) {
	v, _, err := readFirst(ctx, exec, cmd, scalarMapper[T], false)
	return v, err
}

func scalarMapper[T any](r *Record) (T, error) {
	return GetAt[T](r, 0)
}
