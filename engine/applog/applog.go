package applog

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger duplicates every message to standard output and to a log file.
// It replaces the usual package-level logger with an explicit object so the
// file lifecycle (truncate on open, close at process end) is owned by main
// and the components that log are handed the logger they need.
type Logger struct {
	file *os.File
	out  *log.Logger
}

// Open creates (or truncates) the log file at path and returns a Logger
// writing to both standard output and the file.
//
// Parameters:
//   - path: log file path, opened in truncate mode
//
// Returns:
//   - *Logger: the ready logger
//   - error: error if the file cannot be opened
func Open(path string) (*Logger, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %q: %w", path, err)
	}
	return &Logger{
		file: f,
		out:  log.New(io.MultiWriter(os.Stdout, f), "", log.LstdFlags),
	}, nil
}

// New returns a Logger writing to the given writer only. Used by tests and by
// components that want the Logger interface without a file on disk.
//
// Parameters:
//   - w: destination writer
//
// Returns:
//   - *Logger: the ready logger
func New(w io.Writer) *Logger {
	return &Logger{out: log.New(w, "", log.LstdFlags)}
}

// Printf logs a formatted message to both channels.
func (l *Logger) Printf(format string, args ...any) {
	l.out.Printf(format, args...)
}

// Println logs a message line to both channels.
func (l *Logger) Println(args ...any) {
	l.out.Println(args...)
}

// Close flushes and closes the underlying log file, if any.
// Safe to call on a file-less Logger.
//
// Returns:
//   - error: error if closing the file fails
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
