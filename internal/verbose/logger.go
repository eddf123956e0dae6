// Package verbose writes prefixed diagnostic lines for prompts, raw service
// output and generation failures.
package verbose

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

const (
	prefix           = "[verbose]"
	truncationMarker = "\n... [truncated]"
	defaultMaxBytes  = 16 * 1024
)

// Logger writes diagnostics to a single writer. A nil *Logger discards everything.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	palette  palette
	maxBytes int
}

// Options configures a Logger.
type Options struct {
	NoColor bool
	// MaxBytes bounds block bodies; zero selects the default, negative disables.
	MaxBytes int
}

// New returns a Logger for writer, or nil when writer is nil.
func New(writer io.Writer, opts Options) *Logger {
	if writer == nil {
		return nil
	}
	maxBytes := opts.MaxBytes
	if maxBytes == 0 {
		maxBytes = defaultMaxBytes
	}
	return &Logger{
		writer:   writer,
		palette:  paletteFor(writer, opts.NoColor),
		maxBytes: maxBytes,
	}
}

// Logf emits one styled line.
func (l *Logger) Logf(style Style, format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeLine(style, fmt.Sprintf(format, args...))
}

// Block writes a header followed by a multi-line body.
func (l *Logger) Block(header, body string, headerStyle Style) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeLine(headerStyle, header)
	trimmed := truncate(body, l.maxBytes)
	if strings.TrimSpace(trimmed) == "" {
		return
	}
	for _, line := range strings.Split(trimmed, "\n") {
		l.writeLine(StyleDefault, line)
	}
}

func (l *Logger) writeLine(style Style, line string) {
	fmt.Fprintf(l.writer, "%s %s\n", l.palette.apply(StyleDim, prefix), l.palette.apply(style, line))
}

func truncate(value string, maxBytes int) string {
	if maxBytes <= 0 || len(value) <= maxBytes {
		return value
	}
	return value[:maxBytes] + truncationMarker
}
