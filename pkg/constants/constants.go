// Package constants provides shared constants used throughout the roster codebase.
// This includes column names, record formatting rules, file permissions and the
// default values the CLI falls back to.
package constants

import "time"

// Input column names for the biographical dataset (table A).
const (
	ColumnIDNumber     = "ID_NUMBER"
	ColumnBirthDate    = "BIRTH_DATE"
	ColumnGender       = "GENDER"
	ColumnBirthPlace   = "BIRTH_PLACE"
	ColumnBirthCountry = "BIRTH_COUNTRY"
)

// Input column names for the contact dataset (table B).
const (
	// ColumnIdentifier is renamed to ColumnIDNumber before the join.
	ColumnIdentifier     = "IDENTIFIER"
	ColumnPersonName     = "PERSON_NAME"
	ColumnPersonAddress  = "PERSON_ADDRESS"
	ColumnParent1Name    = "PARENT1_NAME"
	ColumnParent1Address = "PARENT1_ADDRESS"
	ColumnParent1Email   = "PARENT1_EMAIL"
	ColumnParent1Phone   = "PARENT1_PHONE"
	ColumnParent2Name    = "PARENT2_NAME"
	ColumnParent2Address = "PARENT2_ADDRESS"
	ColumnParent2Email   = "PARENT2_EMAIL"
	ColumnParent2Phone   = "PARENT2_PHONE"
)

// Address decomposition rules
const (
	// AddressDelimiter separates address components in source fields
	AddressDelimiter = "-"

	// AddressSegments is the number of components every address decomposes into
	AddressSegments = 5
)

// Record formatting rules
const (
	// RoleLegal marks a responsible party slot held by a genuine legal guardian
	RoleLegal = "LEGAL"

	// RecordNumberSuffix is appended to the 1-based row position
	RecordNumberSuffix = ".001"

	// IdentifierWidth is the width identifiers are zero-padded to
	IdentifierWidth = 7

	// IdentifierPad is the padding character for identifiers
	IdentifierPad = '0'

	// BirthDateLayout is the output layout for birth dates (DD/MM/YYYY)
	BirthDateLayout = "02/01/2006"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Timeout constants
const (
	// ShutdownTimeout bounds cleanup after a failed or interrupted run
	ShutdownTimeout = 5 * time.Second
)

// Default values
const (
	// DefaultOutputPath is used when no output path is configured
	DefaultOutputPath = "roster.xlsx"

	// DefaultSheetIndex selects the first worksheet of a workbook
	DefaultSheetIndex = 0

	// DefaultPreviewRows is the number of records printed by --preview without a value
	DefaultPreviewRows = 10

	// EnvPrefix is the prefix for environment variables read by the CLI
	EnvPrefix = "ROSTER"

	// ConfigName is the config file name searched in $HOME and the working directory
	ConfigName = ".roster"
)

// Format constants
const (
	// FormatTable represents table output format
	FormatTable = "table"

	// FormatWide represents wide table output format
	FormatWide = "wide"

	// FormatJSON represents JSON output format
	FormatJSON = "json"

	// FormatYAML represents YAML output format
	FormatYAML = "yaml"

	// FormatXLSX represents Excel workbook output format
	FormatXLSX = "xlsx"

	// FormatCSV represents comma separated output format
	FormatCSV = "csv"

	// TimeFormatLog is the format used in log files
	TimeFormatLog = "2006-01-02 15:04:05.000"
)
