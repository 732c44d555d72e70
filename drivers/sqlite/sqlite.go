// Package sqlite recognizes modernc.org/sqlite errors for [sqlset.Translating].
package sqlite

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"

	"github.com/sqlset/sqlset"
)

// Recognizer translates SQLite result codes into sqlset domain errors.
type Recognizer struct{}

var _ sqlset.Recognizer = Recognizer{}

func (Recognizer) Recognize(err error) (error, bool) {
	var sqErr *sqlite.Error
	if !errors.As(err, &sqErr) {
		return nil, false
	}
	return fromCode(sqErr.Code(), err)
}

// Extended result codes: SQLITE_CONSTRAINT (19) | (detail << 8).
func fromCode(code int, err error) (error, bool) {
	switch code {
	case 1555, 2067: // PRIMARYKEY, UNIQUE
		return &sqlset.ConstraintError{Kind: sqlset.ConstraintUnique, Err: err}, true
	case 787: // FOREIGNKEY
		return &sqlset.ConstraintError{Kind: sqlset.ConstraintForeignKey, Err: err}, true
	case 275: // CHECK
		return &sqlset.ConstraintError{Kind: sqlset.ConstraintCheck, Err: err}, true
	case 1299: // NOTNULL
		return &sqlset.ConstraintError{Kind: sqlset.ConstraintNotNull, Err: err}, true
	case 5, 6: // SQLITE_BUSY, SQLITE_LOCKED
		return fmt.Errorf("%w: %v", sqlset.ErrConcurrentModification, err), true
	}
	return nil, false
}
