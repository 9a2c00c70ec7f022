package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/agentstation/roster/internal/config"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{"default", config.Config{}, "info"},
		{"explicit wins over verbose", config.Config{LogLevel: "error", Verbose: true}, "error"},
		{"invalid explicit falls back", config.Config{LogLevel: "loud"}, "info"},
		{"verbose", config.Config{Verbose: true}, "debug"},
		{"quiet", config.Config{Quiet: true}, "warn"},
		{"verbose and quiet", config.Config{Verbose: true, Quiet: true}, "warn"},
		{"verbose beats LOG_LEVEL", config.Config{Verbose: true, EnvLogLevel: "error"}, "debug"},
		{"LOG_LEVEL", config.Config{EnvLogLevel: "trace"}, "trace"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			assert.Equal(t, tt.want, determineLogLevel(&cfg))
		})
	}
}

func TestNewLogger(t *testing.T) {
	original := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(original) })

	logger := NewLogger(&config.Config{Quiet: true, LogFormat: "json", LogOutput: "stderr"})
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}
