package sqlset

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrNoRows aliases [sql.ErrNoRows] so callers can test either sentinel.
	ErrNoRows = sql.ErrNoRows

	// ErrTooManyRows is returned by [One] and [OneOrZero] when the first
	// result set holds more than one row, and wrapped by [CardinalityError]
	// when a result set exceeds its MaxRows bound.
	ErrTooManyRows = errors.New("sqlset: more rows than expected")

	// ErrNoSpecs is returned by [MultiSet] when called without specs.
	ErrNoSpecs = errors.New("sqlset: at least one result set spec is required")

	// ErrNilMapper is returned when a select function is given a nil mapper.
	ErrNilMapper = errors.New("sqlset: nil mapper")
)

// Sentinels wrapped by [CardinalityError].
var (
	ErrTooFewRows  = errors.New("sqlset: fewer rows than expected")
	ErrTooFewSets  = errors.New("sqlset: fewer result sets than expected")
	ErrTooManySets = errors.New("sqlset: more result sets than expected")
)

// CardinalityError reports a row or result-set count outside the bounds
// declared by a [ResultSetSpec]. It wraps one of the cardinality sentinels.
type CardinalityError struct {
	Set  int   // zero-based result set position
	Rows int   // rows consumed when the violation was detected
	Err  error // ErrTooFewRows, ErrTooManyRows, ErrTooFewSets or ErrTooManySets
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("%s (result set %d after %d rows)", e.Err, e.Set, e.Rows)
}

func (e *CardinalityError) Unwrap() error { return e.Err }

// Column access sentinels wrapped by [ColumnError].
var (
	ErrColumnMissing = errors.New("sqlset: no such column")
	ErrColumnType    = errors.New("sqlset: incompatible column type")
)

// ColumnError reports a failed column access on a [Record].
type ColumnError struct {
	Column string
	Err    error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: column %q", e.Err, e.Column)
}

func (e *ColumnError) Unwrap() error { return e.Err }

// ConstraintKind is the class of integrity constraint a driver reported as
// violated.
type ConstraintKind int

const (
	ConstraintUnique ConstraintKind = iota + 1
	ConstraintForeignKey
	ConstraintCheck
	ConstraintNotNull
)

func (k ConstraintKind) String() string {
	switch k {
	case ConstraintUnique:
		return "unique"
	case ConstraintForeignKey:
		return "foreign key"
	case ConstraintCheck:
		return "check"
	case ConstraintNotNull:
		return "not null"
	default:
		return "unknown"
	}
}

// ConstraintError is the domain error a vendor [Recognizer] raises for an
// integrity constraint violation. Err holds the original driver error.
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string // constraint name, when the driver reports one
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint == "" {
		return fmt.Sprintf("sqlset: %s constraint violated", e.Kind)
	}
	return fmt.Sprintf("sqlset: %s constraint %q violated", e.Kind, e.Constraint)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// ErrConcurrentModification is the domain error a vendor [Recognizer] raises
// for serialization failures, deadlocks and other optimistic-lock conflicts.
var ErrConcurrentModification = errors.New("sqlset: concurrent modification")
