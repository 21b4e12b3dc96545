// Package logging sets up the charmbracelet logger used by sidepane.
//
// The TUI owns the terminal while it runs, so log output goes to a file
// named by --log or the config's log.file. Without one, everything is
// discarded.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a logger with timestamp formatting that writes to w and
// filters messages below level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ParseLevel is log.ParseLevel with the empty string meaning info.
func ParseLevel(s string) (log.Level, error) {
	if s == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(s)
}

// Open returns a logger appending to path. An empty path gives a logger
// that discards everything. The returned closer must be called on exit.
func Open(path string, level log.Level) (*log.Logger, io.Closer, error) {
	if path == "" {
		return New(io.Discard, level), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return New(f, level), f, nil
}

// Span measures one operation and logs its end with the elapsed time.
// It is meant for sequential use from the Bubble Tea update loop.
type Span struct {
	logger *log.Logger
	start  time.Time
}

// StartSpan captures the current time as the start of an operation.
func StartSpan(l *log.Logger) *Span {
	return &Span{logger: l, start: time.Now()}
}

// Elapsed is the time since the span started.
func (s *Span) Elapsed() time.Duration {
	return time.Since(s.start)
}

// End logs msg at debug level with the rounded elapsed time appended to
// keyvals.
func (s *Span) End(msg string, keyvals ...any) {
	keyvals = append(keyvals, "took", s.Elapsed().Round(time.Millisecond))
	s.logger.Debug(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a new context carrying l.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves the logger stored by WithLogger, or log.Default().
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
