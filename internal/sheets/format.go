// Package sheets reads input tables from spreadsheet files and writes output
// rows to spreadsheet and document formats.
package sheets

import (
	"path/filepath"
	"strings"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/errors"
)

// Format is a file format understood by the package.
type Format string

// Supported formats.
const (
	FormatXLSX Format = constants.FormatXLSX
	FormatCSV  Format = constants.FormatCSV
	FormatJSON Format = constants.FormatJSON
	FormatYAML Format = constants.FormatYAML
)

// Readable reports whether tables can be read from the format.
func (f Format) Readable() bool {
	return f == FormatXLSX || f == FormatCSV
}

// ParseFormat converts a format name. The empty string is returned as is.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatXLSX, FormatCSV, FormatJSON, FormatYAML, "":
		return f, nil
	case "xlsm":
		return FormatXLSX, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", &errors.ValidationError{
			Field:   "format",
			Value:   s,
			Message: "must be one of: xlsx, csv, json, yaml",
		}
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "xlsx", "xlsm":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.NewParseError(ext, path, "unrecognized file extension", errors.ErrUnsupportedFormat)
	}
}

// resolve returns the explicit format, or the one inferred from path.
func resolve(path string, explicit Format) (Format, error) {
	if explicit != "" {
		return ParseFormat(string(explicit))
	}
	return FormatFromPath(path)
}
