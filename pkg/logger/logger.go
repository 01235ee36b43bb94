package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Logger writes leveled, timestamped lines. NewFile tees every line into
// an append-only log file alongside stderr.
type Logger struct {
	out  *log.Logger
	file *os.File
}

func New() *Logger { return &Logger{out: log.New(os.Stderr, "", 0)} }

// NewFile opens (or creates) the log file at path in append mode.
func NewFile(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return &Logger{out: log.New(io.MultiWriter(os.Stderr, f), "", 0), file: f}, nil
}

// NewWriter logs to w only; used by tests to capture output.
func NewWriter(w io.Writer) *Logger { return &Logger{out: log.New(w, "", 0)} }

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) logf(level, format string, args ...any) {
	l.out.Printf("%s %s %s", time.Now().Format("2006-01-02 15:04:05"), level, fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(format string, args ...any)  { l.logf("INFO", format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf("WARN", format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf("ERROR", format, args...) }
