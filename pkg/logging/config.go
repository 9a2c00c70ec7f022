package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/agentstation/roster/pkg/constants"
)

// Output formats understood by Config.Format.
const (
	FormatAuto    = "auto"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config describes how a logger is built.
type Config struct {
	// Level is the minimum level written (trace, debug, info, warn, error, off)
	Level string

	// Format is auto, json or console. auto picks console on a terminal.
	Format string

	// Output is stderr, stdout, discard or a file path opened for append
	Output string

	NoColor   bool
	AddCaller bool

	// Fields are attached to every line
	Fields map[string]string
}

// DefaultConfig returns the configuration used when the CLI sets nothing.
func DefaultConfig() *Config {
	return &Config{
		Level:   "info",
		Format:  FormatAuto,
		Output:  "stderr",
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// ParseLevel maps a level name to a zerolog level. Besides zerolog's own
// names it accepts "warning" and the "off"/"none" aliases for disabled.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "off", "none", "disabled":
		return zerolog.Disabled, nil
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
	return l, nil
}

// NewLoggerFromConfig builds a logger from cfg. An unknown level falls back to
// info and an unwritable output file falls back to stderr; both fallbacks are
// reported on the returned logger.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level, levelErr := ParseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	out, outErr := openOutput(cfg.Output)

	logCtx := zerolog.New(formatWriter(out, cfg)).Level(level).With().Timestamp()
	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logCtx = logCtx.Caller()
	}
	for k, v := range cfg.Fields {
		logCtx = logCtx.Str(k, v)
	}
	logger := logCtx.Logger()

	if levelErr != nil {
		logger.Warn().Err(levelErr).Msg("using info level")
	}
	if outErr != nil {
		logger.Warn().Err(outErr).Str("output", cfg.Output).Msg("logging to stderr")
	}
	return logger
}

// openOutput resolves the Output setting to a writer.
func openOutput(output string) (io.Writer, error) {
	switch strings.ToLower(output) {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	case "discard", "none":
		return io.Discard, nil
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return os.Stderr, err
	}
	return f, nil
}

// formatWriter wraps out in a console writer when the format asks for one.
func formatWriter(out io.Writer, cfg *Config) io.Writer {
	format := strings.ToLower(cfg.Format)
	if format == "" || format == FormatAuto {
		format = FormatJSON
		if isTerminal(out) {
			format = FormatConsole
		}
	}

	switch format {
	case FormatConsole, "pretty":
		return zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: constants.TimeFormatLog,
			NoColor:    cfg.NoColor,
		}
	default:
		return out
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
