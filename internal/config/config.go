// Package config resolves roster settings from flags, environment variables,
// .env files and the optional .roster.yaml config file.
package config

import (
	"github.com/spf13/viper"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/errors"
)

// Config keys, as used in the config file. Environment variables use the
// ROSTER_ prefix and upper case, e.g. ROSTER_SQLITE_PATH.
const (
	KeyPersons         = "persons"
	KeyContacts        = "contacts"
	KeyOutput          = "output"
	KeyOutputFormat    = "output_format"
	KeySheet           = "sheet"
	KeyPersonsSheet    = "persons_sheet"
	KeyContactsSheet   = "contacts_sheet"
	KeySQLitePath      = "sqlite_path"
	KeyMetricsFile     = "metrics_file"
	KeyDateLayouts     = "date_layouts"
	KeyIdentifierWidth = "identifier_width"
	KeyPreview         = "preview"
	KeyDryRun          = "dry_run"

	KeyVerbose   = "verbose"
	KeyQuiet     = "quiet"
	KeyNoColor   = "no_color"
	KeyFormat    = "format"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyLogOutput = "log_output"

	// keyEnvLogLevel holds the unprefixed LOG_LEVEL variable, which ranks
	// below -v and -q.
	keyEnvLogLevel = "env_log_level"
)

// Config holds the resolved settings of one invocation.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file actually read, if any
	ConfigFile string

	// Merge inputs and outputs
	Persons       string
	Contacts      string
	Output        string
	OutputFormat  string
	Sheet         string
	PersonsSheet  string
	ContactsSheet string
	SQLitePath    string
	MetricsFile   string
	Preview       int
	DryRun        bool

	// Record assembly
	DateLayouts     []string
	IdentifierWidth int

	// Logging configuration
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// Load builds a Config from v. Flags bound with BindFlags take precedence
// over environment variables, which take precedence over the config file.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Verbose:    v.GetBool(KeyVerbose),
		Quiet:      v.GetBool(KeyQuiet),
		NoColor:    v.GetBool(KeyNoColor),
		Format:     v.GetString(KeyFormat),
		ConfigFile: v.ConfigFileUsed(),

		Persons:       v.GetString(KeyPersons),
		Contacts:      v.GetString(KeyContacts),
		Output:        v.GetString(KeyOutput),
		OutputFormat:  v.GetString(KeyOutputFormat),
		Sheet:         v.GetString(KeySheet),
		PersonsSheet:  v.GetString(KeyPersonsSheet),
		ContactsSheet: v.GetString(KeyContactsSheet),
		SQLitePath:    v.GetString(KeySQLitePath),
		MetricsFile:   v.GetString(KeyMetricsFile),
		Preview:       v.GetInt(KeyPreview),
		DryRun:        v.GetBool(KeyDryRun),

		DateLayouts:     v.GetStringSlice(KeyDateLayouts),
		IdentifierWidth: v.GetInt(KeyIdentifierWidth),

		LogLevel:    v.GetString(KeyLogLevel),
		EnvLogLevel: v.GetString(keyEnvLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
		LogOutput:   v.GetString(KeyLogOutput),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be fixed by defaults.
func (c *Config) Validate() error {
	if c.IdentifierWidth <= 0 {
		return errors.NewConfigError(KeyIdentifierWidth, "must be positive",
			errors.NewValidationError(KeyIdentifierWidth, c.IdentifierWidth, "must be positive"))
	}
	if c.Preview < 0 {
		return errors.NewConfigError(KeyPreview, "must not be negative",
			errors.NewValidationError(KeyPreview, c.Preview, "must not be negative"))
	}
	return nil
}

// PersonsSheetName returns the workbook sheet to read persons from. It falls
// back to Sheet, and the empty string selects the first sheet.
func (c *Config) PersonsSheetName() string {
	if c.PersonsSheet != "" {
		return c.PersonsSheet
	}
	return c.Sheet
}

// ContactsSheetName is PersonsSheetName for the contacts workbook.
func (c *Config) ContactsSheetName() string {
	if c.ContactsSheet != "" {
		return c.ContactsSheet
	}
	return c.Sheet
}

// RequireInputs reports a validation error when either input path is unset.
func (c *Config) RequireInputs() error {
	var errs []error
	if c.Persons == "" {
		errs = append(errs, errors.NewValidationError(KeyPersons, c.Persons, "path is required (--persons or ROSTER_PERSONS)"))
	}
	if c.Contacts == "" {
		errs = append(errs, errors.NewValidationError(KeyContacts, c.Contacts, "path is required (--contacts or ROSTER_CONTACTS)"))
	}
	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutput, constants.DefaultOutputPath)
	v.SetDefault(KeyIdentifierWidth, constants.IdentifierWidth)
	v.SetDefault(KeyLogFormat, "auto")
	v.SetDefault(KeyLogOutput, "stderr")
}
