package sqlset

import (
	"context"
	"errors"
	"testing"
)

var errDup = errors.New("driver: duplicate key")

func dupRecognizer() Recognizer {
	return RecognizerFunc(func(err error) (error, bool) {
		if errors.Is(err, errDup) {
			return &ConstraintError{Kind: ConstraintUnique, Constraint: "pk_test", Err: err}, true
		}
		return nil, false
	})
}

func TestTranslatingQueryError(t *testing.T) {
	exec := Translating(&fakeExecutor{queryErr: errDup}, dupRecognizer())

	_, err := All(context.Background(), exec, Query("q"), ValueMapper[int64])
	var cerr *ConstraintError
	if !errors.As(err, &cerr) {
		t.Fatalf("want ConstraintError, got %v", err)
	}
	if cerr.Kind != ConstraintUnique || cerr.Constraint != "pk_test" {
		t.Fatalf("wrong translation: %+v", cerr)
	}
	// the original driver error stays reachable
	if !errors.Is(err, errDup) {
		t.Fatal("original error not wrapped")
	}
}

func TestTranslatingExecError(t *testing.T) {
	exec := Translating(&fakeExecutor{execErr: errDup}, dupRecognizer())

	_, err := NonQuery(context.Background(), exec, Query("q"))
	var cerr *ConstraintError
	if !errors.As(err, &cerr) {
		t.Fatalf("want ConstraintError, got %v", err)
	}
}

func TestTranslatingUnrecognizedPassesThrough(t *testing.T) {
	boom := errors.New("driver: something else")
	exec := Translating(&fakeExecutor{queryErr: boom}, dupRecognizer())

	_, err := All(context.Background(), exec, Query("q"), ValueMapper[int64])
	// rethrown verbatim, not wrapped
	if err != boom {
		t.Fatalf("want the original error unchanged, got %v", err)
	}
}

func TestTranslatingNeverTwice(t *testing.T) {
	calls := 0
	counting := RecognizerFunc(func(err error) (error, bool) {
		calls++
		if errors.Is(err, errDup) {
			return &ConstraintError{Kind: ConstraintUnique, Err: err}, true
		}
		return nil, false
	})

	// stacked decorators: the inner one translates, the outer one must not
	inner := Translating(&fakeExecutor{execErr: errDup}, counting)
	outer := Translating(inner, counting)

	_, err := NonQuery(context.Background(), outer, Query("q"))
	var cerr *ConstraintError
	if !errors.As(err, &cerr) {
		t.Fatalf("want ConstraintError, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("recognizer ran %d times, want 1", calls)
	}
}

func TestTranslatingRowsStageError(t *testing.T) {
	rows := newFakeRows(idSet(1))
	rows.err = errDup
	exec := Translating(&fakeExecutor{rows: rows}, dupRecognizer())

	_, err := All(context.Background(), exec, Query("q"), ValueMapper[int64])
	var cerr *ConstraintError
	if !errors.As(err, &cerr) {
		t.Fatalf("cursor-stage error not translated: %v", err)
	}
}

func TestTranslatingFirstMatchWins(t *testing.T) {
	first := RecognizerFunc(func(err error) (error, bool) {
		return &ConstraintError{Kind: ConstraintCheck, Err: err}, true
	})
	second := RecognizerFunc(func(err error) (error, bool) {
		return &ConstraintError{Kind: ConstraintUnique, Err: err}, true
	})
	exec := Translating(&fakeExecutor{execErr: errDup}, first, second)

	_, err := NonQuery(context.Background(), exec, Query("q"))
	var cerr *ConstraintError
	if !errors.As(err, &cerr) || cerr.Kind != ConstraintCheck {
		t.Fatalf("first recognizer should win, got %v", err)
	}
}
