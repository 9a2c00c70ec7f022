// Package app provides the application context and dependency management
// for the roster CLI. It centralizes configuration, logging and the lazily
// created merger, store and metrics.
package app

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/agentstation/roster"
	"github.com/agentstation/roster/internal/appcontext"
	"github.com/agentstation/roster/internal/cmd/output"
	"github.com/agentstation/roster/internal/config"
	"github.com/agentstation/roster/internal/metrics"
	"github.com/agentstation/roster/internal/store"
	"github.com/agentstation/roster/pkg/errors"
)

// App represents the roster application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	viper      *viper.Viper
	config     *config.Config
	configFile string

	// Logger
	logger       *zerolog.Logger
	customLogger bool

	runID string

	// Command output, defaulting to os.Stdout and os.Stderr
	stdout io.Writer
	stderr io.Writer

	// Lazily created dependencies
	mu      sync.Mutex
	merger  roster.Merger
	store   *store.Store
	metrics *metrics.Metrics
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and the default config file
// search path; flags are applied when a command runs.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		viper:   config.NewViper(),
		runID:   uuid.NewString(),
	}

	if err := config.ReadConfigFile(app.viper, ""); err != nil {
		return nil, err
	}
	cfg, err := config.Load(app.viper)
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = cfg

	logger := NewLogger(cfg)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// RunID returns the identifier of this invocation.
func (a *App) RunID() string {
	return a.runID
}

// OutputFormat returns the display format, detected from the terminal when
// not set explicitly.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Merger returns the merger, creating it from the configuration on first use.
func (a *App) Merger() (roster.Merger, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.merger != nil {
		return a.merger, nil
	}

	m, err := roster.New(
		roster.WithDateLayouts(a.config.DateLayouts...),
		roster.WithIdentifierWidth(a.config.IdentifierWidth),
	)
	if err != nil {
		return nil, errors.WrapResource("create", "merger", "", err)
	}
	a.merger = m
	return m, nil
}

// Store opens the SQLite store on first use.
func (a *App) Store() (*store.Store, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.store != nil {
		return a.store, nil
	}
	if a.config.SQLitePath == "" {
		return nil, errors.NewConfigError(config.KeySQLitePath, "no database path configured", nil)
	}

	s, err := store.Open(a.config.SQLitePath, a.logger)
	if err != nil {
		return nil, err
	}
	a.store = s
	return s, nil
}

// Metrics returns the run metrics.
func (a *App) Metrics() *metrics.Metrics {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.metrics == nil {
		a.metrics = metrics.New()
	}
	return a.metrics
}

// Shutdown releases the store if it was opened.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	s := a.store
	a.store = nil
	a.mu.Unlock()

	if s == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- s.Close() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// reload rebuilds the configuration after flags are parsed and re-creates
// the logger unless a custom one was injected.
func (a *App) reload() error {
	if a.configFile != "" {
		if err := config.ReadConfigFile(a.viper, a.configFile); err != nil {
			return err
		}
	}
	cfg, err := config.Load(a.viper)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.config = cfg
	a.mu.Unlock()

	if !a.customLogger {
		logger := NewLogger(cfg)
		a.logger = &logger
	}
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		a.customLogger = true
		return nil
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(a *App) error {
		if id == "" {
			return errors.NewValidationError("run_id", id, "must not be empty")
		}
		a.runID = id
		return nil
	}
}

// WithOutput redirects command output (useful for testing).
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) error {
		a.stdout = stdout
		a.stderr = stderr
		return nil
	}
}

// WithMerger sets a custom merger (useful for testing).
func WithMerger(m roster.Merger) Option {
	return func(a *App) error {
		a.merger = m
		return nil
	}
}
