package sqlset

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAll(t *testing.T) {
	t.Run("maps every row in order", func(t *testing.T) {
		exec := &fakeExecutor{rows: newFakeRows(idSet(1, 2, 3))}
		got, err := All(context.Background(), exec, Query("SELECT id"), ValueMapper[int64])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]int64{1, 2, 3}, got); diff != "" {
			t.Fatalf("diff: %s", diff)
		}
	})

	t.Run("zero rows is an empty slice", func(t *testing.T) {
		exec := &fakeExecutor{rows: newFakeRows(idSet())}
		got, err := All(context.Background(), exec, Query("SELECT id"), ValueMapper[int64])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("want empty slice, got %v", got)
		}
	})

	t.Run("nil mapper", func(t *testing.T) {
		exec := &fakeExecutor{rows: newFakeRows(idSet())}
		if _, err := All[int64](context.Background(), exec, Query("SELECT id"), nil); !errors.Is(err, ErrNilMapper) {
			t.Fatalf("want ErrNilMapper, got %v", err)
		}
	})
}

func TestOne(t *testing.T) {
	t.Run("zero rows", func(t *testing.T) {
		rows := newFakeRows(idSet())
		exec := &fakeExecutor{rows: rows}
		if _, err := One(context.Background(), exec, Query("q"), ValueMapper[int64]); !errors.Is(err, ErrNoRows) {
			t.Fatalf("want ErrNoRows, got %v", err)
		}
		if !rows.closed {
			t.Fatal("cursor not closed")
		}
	})

	t.Run("one row", func(t *testing.T) {
		exec := &fakeExecutor{rows: newFakeRows(idSet(42))}
		got, err := One(context.Background(), exec, Query("q"), ValueMapper[int64])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 42 {
			t.Fatalf("want 42, got %d", got)
		}
	})

	t.Run("two rows", func(t *testing.T) {
		exec := &fakeExecutor{rows: newFakeRows(idSet(1, 2))}
		if _, err := One(context.Background(), exec, Query("q"), ValueMapper[int64]); !errors.Is(err, ErrTooManyRows) {
			t.Fatalf("want ErrTooManyRows, got %v", err)
		}
	})
}

func TestOneOrZero(t *testing.T) {
	t.Run("zero rows", func(t *testing.T) {
		exec := &fakeExecutor{rows: newFakeRows(idSet())}
		_, ok, err := OneOrZero(context.Background(), exec, Query("q"), ValueMapper[int64])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatal("want ok=false for zero rows")
		}
	})

	t.Run("zero-valued row is present", func(t *testing.T) {
		// a row whose mapped value equals the zero value must still count
		exec := &fakeExecutor{rows: newFakeRows(idSet(0))}
		got, ok, err := OneOrZero(context.Background(), exec, Query("q"), ValueMapper[int64])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || got != 0 {
			t.Fatalf("want (0, true), got (%d, %t)", got, ok)
		}
	})

	t.Run("two rows", func(t *testing.T) {
		exec := &fakeExecutor{rows: newFakeRows(idSet(1, 2))}
		if _, _, err := OneOrZero(context.Background(), exec, Query("q"), ValueMapper[int64]); !errors.Is(err, ErrTooManyRows) {
			t.Fatalf("want ErrTooManyRows, got %v", err)
		}
	})
}

func TestFirst(t *testing.T) {
	t.Run("reads only the first row", func(t *testing.T) {
		rows := newFakeRows(idSet(7, 8, 9))
		exec := &fakeExecutor{rows: rows}
		got, err := First(context.Background(), exec, Query("q"), ValueMapper[int64])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 7 {
			t.Fatalf("want 7, got %d", got)
		}
		// the remaining rows are never fetched
		if rows.scans != 1 {
			t.Fatalf("want 1 scan, got %d", rows.scans)
		}
		if !rows.closed {
			t.Fatal("cursor not closed")
		}
	})

	t.Run("zero rows", func(t *testing.T) {
		exec := &fakeExecutor{rows: newFakeRows(idSet())}
		if _, err := First(context.Background(), exec, Query("q"), ValueMapper[int64]); !errors.Is(err, ErrNoRows) {
			t.Fatalf("want ErrNoRows, got %v", err)
		}
	})
}

func TestFirstOrZero(t *testing.T) {
	t.Run("zero rows", func(t *testing.T) {
		exec := &fakeExecutor{rows: newFakeRows(idSet())}
		_, ok, err := FirstOrZero(context.Background(), exec, Query("q"), ValueMapper[int64])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatal("want ok=false for zero rows")
		}
	})

	t.Run("many rows", func(t *testing.T) {
		rows := newFakeRows(idSet(5, 6))
		exec := &fakeExecutor{rows: rows}
		got, ok, err := FirstOrZero(context.Background(), exec, Query("q"), ValueMapper[int64])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || got != 5 {
			t.Fatalf("want (5, true), got (%d, %t)", got, ok)
		}
		if rows.scans != 1 {
			t.Fatalf("want 1 scan, got %d", rows.scans)
		}
	})
}

func TestQueryError(t *testing.T) {
	boom := errors.New("boom")
	exec := &fakeExecutor{queryErr: boom}
	if _, err := All(context.Background(), exec, Query("q"), ValueMapper[int64]); !errors.Is(err, boom) {
		t.Fatalf("want query error, got %v", err)
	}
}

func TestMapperError(t *testing.T) {
	boom := errors.New("map boom")
	exec := &fakeExecutor{rows: newFakeRows(idSet(1))}
	m := func(*Record) (int64, error) { return 0, boom }
	if _, err := All(context.Background(), exec, Query("q"), m); !errors.Is(err, boom) {
		t.Fatalf("want mapper error, got %v", err)
	}
}
