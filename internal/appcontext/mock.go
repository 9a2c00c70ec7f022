package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/roster"
	"github.com/agentstation/roster/internal/config"
	"github.com/agentstation/roster/internal/metrics"
	"github.com/agentstation/roster/internal/store"
)

// Mock provides a mock implementation of Interface for testing.
// Fields left nil fall back to defaults: an empty config, a default merger,
// a no-op logger and the "table" format.
type Mock struct {
	ConfigValue  *config.Config
	MergerFunc   func() (roster.Merger, error)
	StoreFunc    func() (*store.Store, error)
	MetricsValue *metrics.Metrics
	LoggerValue  *zerolog.Logger
	Format       string
	Run          string
}

var _ Interface = (*Mock)(nil)

// Config returns ConfigValue or an empty config.
func (m *Mock) Config() *config.Config {
	if m.ConfigValue == nil {
		m.ConfigValue = &config.Config{}
	}
	return m.ConfigValue
}

// Merger returns a merger using the mock function or a default merger.
func (m *Mock) Merger() (roster.Merger, error) {
	if m.MergerFunc != nil {
		return m.MergerFunc()
	}
	return roster.New()
}

// Store returns a store using the mock function or nil.
func (m *Mock) Store() (*store.Store, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc()
	}
	return nil, nil
}

// Metrics returns MetricsValue, creating it on first use.
func (m *Mock) Metrics() *metrics.Metrics {
	if m.MetricsValue == nil {
		m.MetricsValue = metrics.New()
	}
	return m.MetricsValue
}

// Logger returns LoggerValue or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerValue != nil {
		return m.LoggerValue
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns Format or "table".
func (m *Mock) OutputFormat() string {
	if m.Format == "" {
		return "table"
	}
	return m.Format
}

// RunID returns Run or "test-run".
func (m *Mock) RunID() string {
	if m.Run == "" {
		return "test-run"
	}
	return m.Run
}

// Version returns "dev".
func (m *Mock) Version() string { return "dev" }

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string { return "test" }
