// Package appcontext provides the shared application context interface
// used by all commands, so command packages depend on an interface rather
// than on the concrete App.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/roster"
	"github.com/agentstation/roster/internal/config"
	"github.com/agentstation/roster/internal/metrics"
	"github.com/agentstation/roster/internal/store"
)

// Interface defines the application context that commands need.
// The App struct from cmd/roster/app implements it.
type Interface interface {
	// Config returns the settings resolved from flags, env and config file.
	Config() *config.Config

	// Merger returns the merger configured from Config, creating it lazily.
	Merger() (roster.Merger, error)

	// Store opens the SQLite store at Config().SQLitePath on first use.
	Store() (*store.Store, error)

	// Metrics returns the run metrics.
	Metrics() *metrics.Metrics

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the display format (table, wide, json, yaml).
	OutputFormat() string

	// RunID identifies this invocation in logs, metrics and the store.
	RunID() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
