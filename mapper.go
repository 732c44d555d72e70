package sqlset

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Mapper converts one [Record] into one value of type T. It is invoked once
// per row, in arrival order, and must not retain the record.
type Mapper[T any] func(*Record) (T, error)

// ValueMapper maps a single-column row to T. For queries that return only
// one column.
func ValueMapper[T any](r *Record) (T, error) {
	if r.Len() != 1 {
		var zero T
		return zero, fmt.Errorf("sqlset: expected 1 column but got %d", r.Len())
	}
	return GetAt[T](r, 0)
}

// SliceMapper maps each row into a []T in ordinal order.
func SliceMapper[T any](r *Record) ([]T, error) {
	row := make([]T, r.Len())
	for i := range row {
		v, err := GetAt[T](r, i)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

// MapMapper maps each row into a map[string]T keyed by column name.
// Most likely used with any to get a map[string]any.
func MapMapper[T any](r *Record) (map[string]T, error) {
	row := make(map[string]T, r.Len())
	for _, name := range r.columns {
		v, err := Get[T](r, name)
		if err != nil {
			return nil, err
		}
		row[name] = v
	}
	return row, nil
}

// StructMapper returns a mapper that sets exported fields of T from columns
// of the same name. A `db:"name"` tag takes precedence; otherwise matching is
// case-insensitive on the field name. Fields tagged `db:"-"` and columns
// without a destination are ignored. NULL columns leave the field at its
// zero value.
func StructMapper[T any]() Mapper[T] {
	return func(r *Record) (T, error) {
		var out T
		rv := reflect.ValueOf(&out).Elem()
		if rv.Kind() != reflect.Struct {
			return out, fmt.Errorf("sqlset: StructMapper requires a struct type, got %s", rv.Type())
		}
		fields := structFields(rv.Type())
		for _, name := range r.columns {
			idx, ok := fields[strings.ToLower(name)]
			if !ok {
				continue
			}
			i, _ := r.Ordinal(name)
			raw := r.values[i]
			if raw == nil {
				continue
			}
			if err := setField(rv.Field(idx), raw, name); err != nil {
				return out, err
			}
		}
		return out, nil
	}
}

// field plans are cached per struct type; cheap reads via sync.Map
var structPlans sync.Map // reflect.Type -> map[string]int

func structFields(t reflect.Type) map[string]int {
	if plan, ok := structPlans.Load(t); ok {
		return plan.(map[string]int)
	}
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("db"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}
		fields[strings.ToLower(name)] = i
	}
	plan, _ := structPlans.LoadOrStore(t, fields)
	return plan.(map[string]int)
}

func setField(fv reflect.Value, raw any, column string) error {
	rv := reflect.ValueOf(raw)
	if rv.Type().AssignableTo(fv.Type()) {
		fv.Set(rv)
		return nil
	}
	if b, ok := raw.([]byte); ok && fv.Kind() == reflect.String {
		fv.SetString(string(b))
		return nil
	}
	if numericKind(rv.Kind()) && numericKind(fv.Kind()) && rv.Type().ConvertibleTo(fv.Type()) {
		fv.Set(rv.Convert(fv.Type()))
		return nil
	}
	return &ColumnError{Column: column, Err: ErrColumnType}
}
