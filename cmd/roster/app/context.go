package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/agentstation/roster/pkg/logging"
)

// ContextWithSignals creates a context that is cancelled when the application
// receives an interrupt or termination signal. A merge in progress stops at
// the next row.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// commandContext attaches the app logger and run id to ctx.
func (a *App) commandContext(ctx context.Context) context.Context {
	ctx = logging.WithLogger(ctx, a.logger)
	return logging.WithRunID(ctx, a.runID)
}
