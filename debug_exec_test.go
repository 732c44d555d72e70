package sqlset

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestDebugToWriter(t *testing.T) {
	var buf bytes.Buffer
	exec := DebugToWriter(&fakeExecutor{rows: newFakeRows(idSet(1))}, &buf)

	_, err := All(context.Background(), exec, Query("SELECT id FROM t WHERE a = ?", 42), ValueMapper[int64])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "SELECT id FROM t WHERE a = ?") {
		t.Fatalf("query not printed: %q", out)
	}
	if !strings.Contains(out, "42") {
		t.Fatalf("arg not printed: %q", out)
	}
}

func TestDebugToPrinterNil(t *testing.T) {
	// nil printer must not panic, it falls back to stdout
	exec := DebugToPrinter(&fakeExecutor{affected: 1}, nil)
	if exec == nil {
		t.Fatal("nil executor")
	}
}
