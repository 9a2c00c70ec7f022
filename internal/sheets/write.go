package sheets

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/xuri/excelize/v2"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/logging"
)

// SheetName is the name of the single sheet of written workbooks.
const SheetName = "Sheet1"

// Write writes header and rows to path in the given format, or the format
// inferred from the extension when format is empty. The file is written to a
// temporary sibling first and renamed into place, so readers never observe a
// partial file.
func Write(ctx context.Context, path string, format Format, header []string, rows [][]string) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(errors.ErrCanceled, err)
	}

	format, err := resolve(path, format)
	if err != nil {
		return err
	}

	var encode func(io.Writer, []string, [][]string) error
	switch format {
	case FormatXLSX:
		encode = writeXLSX
	case FormatCSV:
		encode = writeCSV
	case FormatJSON:
		encode = writeJSON
	case FormatYAML:
		encode = writeYAML
	default:
		return errors.NewParseError(string(format), path, "format cannot be written", errors.ErrUnsupportedFormat)
	}

	if err := writeAtomic(path, func(w io.Writer) error {
		return encode(w, header, rows)
	}); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("file", path).
		Str("format", string(format)).
		Int("rows", len(rows)).
		Msg("table written")
	return nil
}

func writeAtomic(path string, fn func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	bw := bufio.NewWriter(tmp)
	if err := fn(bw); err != nil {
		_ = tmp.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.WrapIO("move", path, err)
	}
	return nil
}

// writeXLSX streams the rows into a single-sheet workbook. Every cell is
// written as a string so zero-padded identifiers keep their zeros.
func writeXLSX(w io.Writer, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return err
	}

	setRow := func(n int, row []string) error {
		cell, err := excelize.CoordinatesToCellName(1, n)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for i, v := range row {
			values[i] = v
		}
		return sw.SetRow(cell, values)
	}

	if err := setRow(1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(i+2, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// writeJSON writes an array of objects whose keys follow the header order.
func writeJSON(w io.Writer, header []string, rows [][]string) error {
	objs := make([]orderedRow, len(rows))
	for i, row := range rows {
		objs[i] = orderedRow{keys: header, values: row}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(objs)
}

// writeYAML writes a sequence of mappings whose keys follow the header order.
func writeYAML(w io.Writer, header []string, rows [][]string) error {
	docs := make([]yaml.MapSlice, len(rows))
	for i, row := range rows {
		m := make(yaml.MapSlice, len(header))
		for j, k := range header {
			m[j] = yaml.MapItem{Key: k, Value: cell(row, j)}
		}
		docs[i] = m
	}
	data, err := yaml.MarshalWithOptions(docs, yaml.Indent(2), yaml.IndentSequence(false))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

type orderedRow struct {
	keys   []string
	values []string
}

// MarshalJSON implements json.Marshaler.
func (r orderedRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(cell(r.values, i))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
