// Package logging provides structured logging for roster using zerolog.
//
// Loggers travel through context.Context: the CLI stores one with
// WithLogger, the merge pipeline enriches it with WithRunID, WithTable and
// WithRow, and lower layers such as the sheet reader and the SQLite store log
// through FromContext so every line of a run carries the same fields.
//
// Example usage:
//
//	ctx := logging.WithLogger(context.Background(), logging.Default())
//	ctx = logging.WithRunID(ctx, runID)
//	ctx = logging.WithTable(ctx, "contacts")
//	logging.FromContext(ctx).Warn().Int("row", 3).Msg("contact has no biographical row")
package logging

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var defaultLogger atomic.Pointer[zerolog.Logger]

func init() {
	l := New(os.Stderr, zerolog.InfoLevel)
	defaultLogger.Store(&l)
}

// Default returns the process-wide logger used when a context carries none.
func Default() *zerolog.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger. zerolog's global log.Logger is
// kept in sync so packages logging through zerolog/log see the same output.
func SetDefault(logger zerolog.Logger) {
	defaultLogger.Store(&logger)
	log.Logger = logger
}

// New returns a timestamped JSON logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
