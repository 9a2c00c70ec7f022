package merge

import (
	"github.com/agentstation/roster/internal/cmd/output"
	"github.com/agentstation/roster/pkg/records"
)

// previewColumns are shown in table mode; wide mode shows every column.
var previewColumns = []string{
	"RECORD_NUMBER",
	"ID_NUMBER",
	"LAST_NAME",
	"FIRST_NAME",
	"BIRTH_DATE",
	"CITY",
	"RESPONSIBLE1_LAST_NAME",
	"RESPONSIBLE1_FIRST_NAME",
	"RESPONSIBLE2_ROLE",
}

type preview []records.Record

// TableData implements output.Tabular.
func (p preview) TableData(wide bool) output.Data {
	cols := previewColumns
	if wide {
		cols = records.Columns
	}
	d := output.Data{Headers: cols, Rows: make([][]string, len(p))}
	for i, rec := range p {
		m := rec.Map()
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = m[c]
		}
		d.Rows[i] = row
	}
	return d
}

// previewData returns the first n records in a shape suited to format.
func previewData(format string, recs []records.Record, n int) any {
	if n < len(recs) {
		recs = recs[:n]
	}
	switch output.Format(format) {
	case output.FormatTable, output.FormatWide:
		return preview(recs)
	default:
		return recs
	}
}
