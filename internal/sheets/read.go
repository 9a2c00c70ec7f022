package sheets

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/logging"
	"github.com/agentstation/roster/pkg/tables"
)

// ReadOptions configures Read.
type ReadOptions struct {
	// Name is the table name used in errors and logs. Defaults to the file name
	// without its extension.
	Name string
	// Sheet selects a workbook sheet by name. Defaults to the first sheet.
	Sheet string
	// Format overrides the format inferred from the file extension.
	Format Format
}

// Read loads a table from path. The first non-empty row is the header; header
// cells are trimmed, data cells are kept verbatim. Rows with no content are
// skipped.
func Read(ctx context.Context, path string, opts ReadOptions) (*tables.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(errors.ErrCanceled, err)
	}

	format, err := resolve(path, opts.Format)
	if err != nil {
		return nil, err
	}
	if !format.Readable() {
		return nil, errors.NewParseError(string(format), path, "format cannot be read as a table", errors.ErrUnsupportedFormat)
	}

	name := opts.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	var raw [][]string
	switch format {
	case FormatXLSX:
		raw, err = readXLSX(path, opts.Sheet)
	case FormatCSV:
		raw, err = readCSV(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	header, rows := split(raw)
	logging.FromContext(ctx).Debug().
		Str("file", path).
		Str("table", name).
		Int("columns", len(header)).
		Int("rows", len(rows)).
		Msg("table read")

	return tables.New(name, header, rows), nil
}

// readXLSX returns the raw cell values of a sheet. Raw values keep dates as
// Excel serial numbers instead of the display format of the cell.
func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) <= constants.DefaultSheetIndex {
			return nil, errors.NewParseError(string(FormatXLSX), path, "workbook has no sheets", nil)
		}
		sheet = sheets[constants.DefaultSheetIndex]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.NewNotFoundError("sheet", sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.WrapParse(string(FormatXLSX), path, err)
	}
	return rows, nil
}

func readCSV(ctx context.Context, path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = file.Close() }()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(errors.ErrCanceled, err)
		}
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			pe := &errors.ParseError{Format: string(FormatCSV), File: path, Message: err.Error(), Err: err}
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				pe.Line, pe.Column = csvErr.Line, csvErr.Column
			}
			return nil, pe
		}
		rows = append(rows, rec)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return rows, nil
}

// split separates the header from the data rows, dropping empty rows.
func split(raw [][]string) ([]string, [][]string) {
	var header []string
	rows := make([][]string, 0, len(raw))
	for _, row := range raw {
		if isEmptyRow(row) {
			continue
		}
		if header == nil {
			header = make([]string, len(row))
			for i, h := range row {
				header[i] = strings.TrimSpace(h)
			}
			continue
		}
		rows = append(rows, row)
	}
	return header, rows
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
