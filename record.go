package sqlset

import (
	"reflect"
	"strconv"

	"github.com/aarondl/opt/null"
)

// Record is a read-only view over the current row of a result set. It is
// valid only until the cursor advances; mappers must copy anything they keep.
//
// Every column access has one of three outcomes: a present value, a database
// NULL, or an absent column. NULL yields the zero value from [Get] and an
// unset [null.Val] from [Null]; an absent column always yields a
// [*ColumnError] wrapping [ErrColumnMissing].
type Record struct {
	columns []string
	index   map[string]int
	values  []any
	ptrs    []any
}

func newRecord(columns []string) *Record {
	r := &Record{
		columns: columns,
		index:   make(map[string]int, len(columns)),
		values:  make([]any, len(columns)),
		ptrs:    make([]any, len(columns)),
	}
	for i, c := range columns {
		// first occurrence wins for duplicate column names
		if _, ok := r.index[c]; !ok {
			r.index[c] = i
		}
	}
	for i := range r.values {
		r.ptrs[i] = &r.values[i]
	}
	return r
}

// scan loads the cursor's current row into the record, replacing the
// previous row's values.
func (r *Record) scan(rows Rows) error {
	return rows.Scan(r.ptrs...)
}

// Len returns the number of columns.
func (r *Record) Len() int { return len(r.columns) }

// Columns returns the column names in ordinal order.
func (r *Record) Columns() []string {
	return append([]string(nil), r.columns...)
}

// Has reports whether the named column exists.
func (r *Record) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Ordinal returns the position of the named column.
func (r *Record) Ordinal(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// IsNull reports whether the named column holds a database NULL.
// An absent column is not NULL; check [Record.Has] first.
func (r *Record) IsNull(name string) bool {
	i, ok := r.index[name]
	return ok && r.values[i] == nil
}

// Get returns the named column as T. A database NULL yields the zero value
// of T; an absent column or an incompatible driver value yields a
// [*ColumnError].
func Get[T any](r *Record, name string) (T, error) {
	i, ok := r.index[name]
	if !ok {
		var zero T
		return zero, &ColumnError{Column: name, Err: ErrColumnMissing}
	}
	return convert[T](r.values[i], name)
}

// GetAt is [Get] by column ordinal.
func GetAt[T any](r *Record, i int) (T, error) {
	if i < 0 || i >= len(r.values) {
		var zero T
		return zero, &ColumnError{Column: strconv.Itoa(i), Err: ErrColumnMissing}
	}
	return convert[T](r.values[i], r.columns[i])
}

// Null returns the named column as a null-aware value: unset for a database
// NULL, set otherwise.
func Null[T any](r *Record, name string) (null.Val[T], error) {
	i, ok := r.index[name]
	if !ok {
		return null.FromPtr[T](nil), &ColumnError{Column: name, Err: ErrColumnMissing}
	}
	if r.values[i] == nil {
		return null.FromPtr[T](nil), nil
	}
	v, err := convert[T](r.values[i], name)
	if err != nil {
		return null.FromPtr[T](nil), err
	}
	return null.From(v), nil
}

func convert[T any](raw any, column string) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	if v, ok := raw.(T); ok {
		return v, nil
	}
	// driver values come from a small closed set; coerce the common mismatches
	switch any(zero).(type) {
	case string:
		if b, ok := raw.([]byte); ok {
			return any(string(b)).(T), nil
		}
	case []byte:
		if s, ok := raw.(string); ok {
			return any([]byte(s)).(T), nil
		}
	}
	rv := reflect.ValueOf(raw)
	rt := reflect.TypeOf(&zero).Elem()
	if numericKind(rv.Kind()) && numericKind(rt.Kind()) && rv.Type().ConvertibleTo(rt) {
		return rv.Convert(rt).Interface().(T), nil
	}
	return zero, &ColumnError{Column: column, Err: ErrColumnType}
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
