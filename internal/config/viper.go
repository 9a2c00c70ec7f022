package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/errors"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"persons":          KeyPersons,
	"contacts":         KeyContacts,
	"output":           KeyOutput,
	"output-format":    KeyOutputFormat,
	"sheet":            KeySheet,
	"persons-sheet":    KeyPersonsSheet,
	"contacts-sheet":   KeyContactsSheet,
	"sqlite":           KeySQLitePath,
	"metrics-file":     KeyMetricsFile,
	"date-layout":      KeyDateLayouts,
	"identifier-width": KeyIdentifierWidth,
	"preview":          KeyPreview,
	"dry-run":          KeyDryRun,
	"verbose":          KeyVerbose,
	"quiet":            KeyQuiet,
	"no-color":         KeyNoColor,
	"format":           KeyFormat,
	"log-level":        KeyLogLevel,
}

// NewViper creates a viper instance wired to the environment and .env files.
// The config file is not read yet; see ReadConfigFile.
func NewViper() *viper.Viper {
	// .env files are loaded before env binding; existing variables win
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv(keyEnvLogLevel, "LOG_LEVEL")
	_ = v.BindEnv(KeyLogFormat, constants.EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT")
	_ = v.BindEnv(KeyLogOutput, constants.EnvPrefix+"_LOG_OUTPUT", "LOG_OUTPUT")

	setDefaults(v)
	return v
}

// ReadConfigFile reads path, or searches $HOME and the working directory for
// .roster.yaml when path is empty. A missing default config file is not an error.
func ReadConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.NewConfigError("file", "reading "+path, err)
	}
	return nil
}

// BindFlags binds every known flag of flags to its config key.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			errs = append(errs, v.BindPFlag(key, f))
		}
	})
	return errors.Join(errs...)
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first so its values take precedence over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
