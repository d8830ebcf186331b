// Package cli implements the tubeplan command-line interface.
//
// The CLI loads a current network, a set of proposals, a criteria file and
// an optional fixed-cost table, evaluates every proposal through the
// criteria package, and prints the ranked results. Output is a deterministic
// name,score,failed_essentials CSV by default, or a styled table with
// --table. Logging uses charmbracelet/log at info level, or debug with
// --verbose; the logger travels through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w with timestamps and the given
// minimum level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default() so commands always have a usable logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
