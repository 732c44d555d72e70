// Package coltypes classifies native column type names into canonical
// categories and concrete Go types.
//
// Classification is a pure function over a fixed vocabulary of SQL Server
// style type names. Names are matched case-insensitively and a trailing
// parenthesized length or precision suffix carries no weight:
// "VARCHAR(50)" classifies exactly like "varchar". Any name outside the
// vocabulary fails with [*UnsupportedTypeError]; there is no silent default.
package coltypes

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// Category is the canonical class of a native column type.
type Category int

const (
	Text Category = iota + 1
	Decimal
	DateTime
	Integer
	Boolean
	Bytes
	Float
	Duration
	UUID
)

func (c Category) String() string {
	switch c {
	case Text:
		return "text"
	case Decimal:
		return "decimal"
	case DateTime:
		return "datetime"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Bytes:
		return "bytes"
	case Float:
		return "float"
	case Duration:
		return "duration"
	case UUID:
		return "uuid"
	default:
		return "unknown"
	}
}

// UnsupportedTypeError reports a native type name outside the vocabulary.
type UnsupportedTypeError struct {
	Name string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("coltypes: unsupported native type %q", e.Name)
}

type typeInfo struct {
	category  Category
	canonical string
	goType    reflect.Type
}

var (
	textInfo     = typeInfo{Text, "text", reflect.TypeOf("")}
	decimalInfo  = typeInfo{Decimal, "decimal", reflect.TypeOf(decimal.Decimal{})}
	datetimeInfo = typeInfo{DateTime, "datetime", reflect.TypeOf(time.Time{})}
	integerInfo  = typeInfo{Integer, "integer", reflect.TypeOf(int64(0))}
	bytesInfo    = typeInfo{Bytes, "bytes", reflect.TypeOf([]byte(nil))}
	booleanInfo  = typeInfo{Boolean, "boolean", reflect.TypeOf(false)}
	float64Info  = typeInfo{Float, "float64", reflect.TypeOf(float64(0))}
	float32Info  = typeInfo{Float, "float32", reflect.TypeOf(float32(0))}
	durationInfo = typeInfo{Duration, "duration", reflect.TypeOf(time.Duration(0))}
	uuidInfo     = typeInfo{UUID, "uuid", reflect.TypeOf(uuid.UUID{})}
)

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// The four category tables, consulted in order, then the fallback table.
var (
	textTypes     = set("CHAR", "NCHAR", "VARCHAR", "NVARCHAR", "TEXT", "NTEXT", "XML")
	decimalTypes  = set("DECIMAL", "NUMERIC", "MONEY", "SMALLMONEY")
	datetimeTypes = set("DATE", "DATETIME", "DATETIME2", "SMALLDATETIME", "DATETIMEOFFSET")
	integerTypes  = set("INT", "BIGINT", "SMALLINT", "TINYINT")

	fallbackTypes = map[string]typeInfo{
		"ROWVERSION":       bytesInfo,
		"TIMESTAMP":        bytesInfo,
		"BINARY":           bytesInfo,
		"VARBINARY":        bytesInfo,
		"IMAGE":            bytesInfo,
		"BIT":              booleanInfo,
		"FLOAT":            float64Info,
		"REAL":             float32Info,
		"TIME":             durationInfo,
		"UNIQUEIDENTIFIER": uuidInfo,
	}
)

// normalize uppercases the name and strips a trailing parenthesized
// length/precision suffix.
func normalize(name string) string {
	n := strings.ToUpper(strings.TrimSpace(name))
	if i := strings.IndexByte(n, '('); i >= 0 && strings.HasSuffix(n, ")") {
		n = strings.TrimSpace(n[:i])
	}
	return n
}

func lookup(name string) (typeInfo, error) {
	n := normalize(name)
	switch {
	case has(textTypes, n):
		return textInfo, nil
	case has(decimalTypes, n):
		return decimalInfo, nil
	case has(datetimeTypes, n):
		return datetimeInfo, nil
	case has(integerTypes, n):
		return integerInfo, nil
	}
	if info, ok := fallbackTypes[n]; ok {
		return info, nil
	}
	return typeInfo{}, &UnsupportedTypeError{Name: name}
}

func has(m map[string]struct{}, n string) bool {
	_, ok := m[n]
	return ok
}

// Classify maps a native column type name to its canonical [Category].
func Classify(name string) (Category, error) {
	info, err := lookup(name)
	if err != nil {
		return 0, err
	}
	return info.category, nil
}

// CanonicalName maps a native column type name to its canonical label,
// e.g. "VARCHAR(50)" to "text" and "ROWVERSION" to "bytes".
func CanonicalName(name string) (string, error) {
	info, err := lookup(name)
	if err != nil {
		return "", err
	}
	return info.canonical, nil
}

// CanonicalType maps a native column type name to its concrete Go type:
// string, [decimal.Decimal], [time.Time], int64, bool, []byte, float64,
// float32, [time.Duration] or [uuid.UUID].
func CanonicalType(name string) (reflect.Type, error) {
	info, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return info.goType, nil
}
