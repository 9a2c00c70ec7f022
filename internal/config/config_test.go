package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/roster/internal/config"
	"github.com/agentstation/roster/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	v := config.NewViper()
	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, "roster.xlsx", cfg.Output)
	assert.Equal(t, 7, cfg.IdentifierWidth)
	assert.Equal(t, "auto", cfg.LogFormat)
	assert.Equal(t, "stderr", cfg.LogOutput)
	assert.Empty(t, cfg.Persons)
	assert.Empty(t, cfg.DateLayouts)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("ROSTER_PERSONS", "a.xlsx")
	t.Setenv("ROSTER_SQLITE_PATH", "roster.db")
	t.Setenv("ROSTER_IDENTIFIER_WIDTH", "9")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load(config.NewViper())
	require.NoError(t, err)

	assert.Equal(t, "a.xlsx", cfg.Persons)
	assert.Equal(t, "roster.db", cfg.SQLitePath)
	assert.Equal(t, 9, cfg.IdentifierWidth)
	assert.Equal(t, "debug", cfg.EnvLogLevel)
	assert.Empty(t, cfg.LogLevel, "unprefixed LOG_LEVEL is not an explicit level")
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("ROSTER_CONTACTS", "env.xlsx")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("contacts", "", "")
	flags.StringArray("date-layout", nil, "")
	flags.Bool("verbose", false, "")
	flags.String("unrelated", "", "")
	require.NoError(t, flags.Parse([]string{"--contacts", "flag.csv", "--date-layout", "January 2, 2006", "--date-layout", "02/01/2006", "--verbose"}))

	v := config.NewViper()
	require.NoError(t, config.BindFlags(v, flags))

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "flag.csv", cfg.Contacts)
	assert.Equal(t, []string{"January 2, 2006", "02/01/2006"}, cfg.DateLayouts)
	assert.True(t, cfg.Verbose)
}

func TestSheetNames(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantPersons  string
		wantContacts string
	}{
		{"first sheet", nil, "", ""},
		{"shared sheet", []string{"--sheet", "Data"}, "Data", "Data"},
		{"contacts override", []string{"--sheet", "Data", "--contacts-sheet", "Guardians"}, "Data", "Guardians"},
		{"per table", []string{"--persons-sheet", "Bio", "--contacts-sheet", "Guardians"}, "Bio", "Guardians"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags.String("sheet", "", "")
			flags.String("persons-sheet", "", "")
			flags.String("contacts-sheet", "", "")
			require.NoError(t, flags.Parse(tt.args))

			v := config.NewViper()
			require.NoError(t, config.BindFlags(v, flags))
			cfg, err := config.Load(v)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPersons, cfg.PersonsSheetName())
			assert.Equal(t, tt.wantContacts, cfg.ContactsSheetName())
		})
	}
}

func TestReadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := "persons: bio.xlsx\ncontacts: contacts.csv\nmetrics_file: roster.prom\ndate_layouts:\n  - \"2006-01-02\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := config.NewViper()
	require.NoError(t, config.ReadConfigFile(v, path))

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, "bio.xlsx", cfg.Persons)
	assert.Equal(t, "contacts.csv", cfg.Contacts)
	assert.Equal(t, "roster.prom", cfg.MetricsFile)
	assert.Equal(t, []string{"2006-01-02"}, cfg.DateLayouts)
}

func TestReadConfigFileMissing(t *testing.T) {
	v := config.NewViper()
	err := config.ReadConfigFile(v, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Setenv("ROSTER_IDENTIFIER_WIDTH", "0")
	_, err := config.Load(config.NewViper())
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRequireInputs(t *testing.T) {
	cfg := &config.Config{}
	err := cfg.RequireInputs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persons")
	assert.Contains(t, err.Error(), "contacts")

	cfg = &config.Config{Persons: "a", Contacts: "b"}
	assert.NoError(t, cfg.RequireInputs())
}
