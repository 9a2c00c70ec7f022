// Package tables holds the in-memory input tables, the required-column
// preconditions, and the left join of the contact dataset against the
// biographical dataset.
package tables

import (
	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/field"
)

// Table is a bounded, row-oriented table with named columns.
// Rows may be shorter than the header; missing cells read as absent.
type Table struct {
	Name   string
	header []string
	rows   [][]string
	index  map[string]int
}

// New creates a table. The first occurrence of a duplicated column name wins.
func New(name string, header []string, rows [][]string) *Table {
	t := &Table{
		Name:   name,
		header: append([]string(nil), header...),
		rows:   rows,
		index:  make(map[string]int, len(header)),
	}
	for i, col := range t.header {
		if _, ok := t.index[col]; !ok {
			t.index[col] = i
		}
	}
	return t
}

// Columns returns a copy of the header.
func (t *Table) Columns() []string {
	return append([]string(nil), t.header...)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Has reports whether the table has the named column.
func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Cell returns the parsed cell at row for column. Unknown columns and short
// rows yield an absent field.
func (t *Table) Cell(row int, column string) field.Field {
	i, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return field.Absent()
	}
	r := t.rows[row]
	if i >= len(r) {
		return field.Absent()
	}
	return field.Parse(r[i])
}

// Missing returns the required columns the table lacks, in the order given.
func (t *Table) Missing(required ...string) []string {
	var missing []string
	for _, col := range required {
		if !t.Has(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// Require returns a MissingColumnsError listing every absent required column.
func (t *Table) Require(required ...string) error {
	if missing := t.Missing(required...); len(missing) > 0 {
		return errors.NewMissingColumnsError(t.Name, missing)
	}
	return nil
}

// Rename renames column from to column to. A missing source column is a
// precondition failure. If to already exists it is shadowed by the renamed column.
func (t *Table) Rename(from, to string) error {
	i, ok := t.index[from]
	if !ok {
		return errors.NewMissingColumnsError(t.Name, []string{from})
	}
	t.header[i] = to
	delete(t.index, from)
	t.index[to] = i
	return nil
}

// Renamed returns a copy of t with column from renamed to to. Rows are shared
// and t is left unchanged.
func (t *Table) Renamed(from, to string) (*Table, error) {
	if !t.Has(from) {
		return nil, errors.NewMissingColumnsError(t.Name, []string{from})
	}
	c := New(t.Name, t.header, t.rows)
	if err := c.Rename(from, to); err != nil {
		return nil, err
	}
	return c, nil
}
