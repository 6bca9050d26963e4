// Package log provides debug logging for the TUI. Messages are buffered
// in memory until a log file is configured, so startup logging is not
// lost; with no file configured the buffer is eventually discarded.
package log

import (
	"log"
	"os"
	"sync"
)

// writer routes log output to a file when one is set, and buffers it
// otherwise. It implements io.Writer for the standard logger.
type writer struct {
	mu      sync.Mutex
	file    *os.File
	pending []byte
	discard bool
}

var (
	out = &writer{}
	std = log.New(out, "", log.LstdFlags|log.Lmicroseconds)
)

func (w *writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.discard {
		return len(p), nil
	}

	if w.file != nil {
		n, err := w.file.Write(p)
		// Flush eagerly; a crash is exactly when the log matters.
		_ = w.file.Sync()
		return n, err
	}

	w.pending = append(w.pending, p...)
	return len(p), nil
}

// SetFile directs logging to the given path, creating the file if
// needed, and flushes anything buffered so far. An empty path discards
// buffered and future messages.
func SetFile(path string) error {
	out.mu.Lock()
	defer out.mu.Unlock()

	if out.file != nil {
		_ = out.file.Close()
		out.file = nil
	}

	if path == "" {
		out.discard = true
		out.pending = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		out.discard = true
		out.pending = nil
		return err
	}

	out.file = f
	out.discard = false

	if len(out.pending) > 0 {
		_, _ = f.Write(out.pending)
		_ = f.Sync()
		out.pending = nil
	}

	return nil
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	std.Printf(format, args...)
}

// Println writes a debug message.
func Println(v ...any) {
	std.Println(v...)
}

// Close closes the debug log file if open.
func Close() error {
	out.mu.Lock()
	defer out.mu.Unlock()

	if out.file == nil {
		return nil
	}

	err := out.file.Close()
	out.file = nil
	return err
}
