// Package mysql recognizes go-sql-driver/mysql errors for [sqlset.Translating].
package mysql

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/sqlset/sqlset"
)

// Recognizer translates MySQL server error numbers into sqlset domain errors.
type Recognizer struct{}

var _ sqlset.Recognizer = Recognizer{}

func (Recognizer) Recognize(err error) (error, bool) {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return nil, false
	}
	switch myErr.Number {
	case 1062, 1586: // ER_DUP_ENTRY, ER_DUP_ENTRY_WITH_KEY_NAME
		return &sqlset.ConstraintError{Kind: sqlset.ConstraintUnique, Err: err}, true
	case 1216, 1217, 1451, 1452: // foreign key add/drop/parent/child
		return &sqlset.ConstraintError{Kind: sqlset.ConstraintForeignKey, Err: err}, true
	case 3819: // ER_CHECK_CONSTRAINT_VIOLATED
		return &sqlset.ConstraintError{Kind: sqlset.ConstraintCheck, Err: err}, true
	case 1048: // ER_BAD_NULL_ERROR
		return &sqlset.ConstraintError{Kind: sqlset.ConstraintNotNull, Err: err}, true
	case 1205, 1213: // ER_LOCK_WAIT_TIMEOUT, ER_LOCK_DEADLOCK
		return fmt.Errorf("%w: %v", sqlset.ErrConcurrentModification, err), true
	}
	return nil, false
}
