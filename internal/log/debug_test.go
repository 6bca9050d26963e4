package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetWriter(t *testing.T) func() {
	t.Helper()

	out.mu.Lock()
	prevFile := out.file
	prevPending := append([]byte(nil), out.pending...)
	prevDiscard := out.discard
	out.file = nil
	out.pending = nil
	out.discard = false
	out.mu.Unlock()

	return func() {
		out.mu.Lock()
		if out.file != nil {
			_ = out.file.Close()
		}
		out.file = prevFile
		out.pending = prevPending
		out.discard = prevDiscard
		out.mu.Unlock()
	}
}

func TestBufferedMessagesFlushOnSetFile(t *testing.T) {
	restore := resetWriter(t)
	t.Cleanup(restore)

	Printf("before file: %d", 42)

	path := filepath.Join(t.TempDir(), "debug.log")
	if err := SetFile(path); err != nil {
		t.Fatalf("SetFile: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	data, err := os.ReadFile(path) // #nosec G304 -- test temp file
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "before file: 42") {
		t.Fatalf("buffered message missing from log, got %q", string(data))
	}
}

func TestEmptyPathDiscards(t *testing.T) {
	restore := resetWriter(t)
	t.Cleanup(restore)

	Printf("will be dropped")
	if err := SetFile(""); err != nil {
		t.Fatalf("SetFile(\"\"): %v", err)
	}

	Printf("also dropped")

	out.mu.Lock()
	pending := len(out.pending)
	discard := out.discard
	out.mu.Unlock()

	if !discard {
		t.Fatal("expected discard mode after SetFile(\"\")")
	}
	if pending != 0 {
		t.Fatalf("expected empty buffer, have %d bytes", pending)
	}
}

func TestSetFileFailureDiscardsLogs(t *testing.T) {
	restore := resetWriter(t)
	t.Cleanup(restore)

	unwritableDir := t.TempDir()
	if err := os.Chmod(unwritableDir, 0o500); err != nil { //nolint:gosec
		t.Fatalf("set directory permissions: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(unwritableDir, 0o700) //nolint:gosec
	})

	if err := SetFile(filepath.Join(unwritableDir, "debug.log")); err == nil {
		t.Fatal("expected SetFile to fail in an unwritable directory")
	}

	Printf("should be discarded")

	out.mu.Lock()
	pending := len(out.pending)
	discard := out.discard
	out.mu.Unlock()

	if !discard {
		t.Fatal("expected discard to be enabled after SetFile failure")
	}
	if pending != 0 {
		t.Fatal("expected buffer to remain empty after logging")
	}
}
