// Package columns implements the columns command, which lists the required
// input columns and the output layout.
package columns

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/roster/internal/cmd/output"
	"github.com/agentstation/roster/pkg/records"
	"github.com/agentstation/roster/pkg/tables"
)

// AppContext defines what the columns command needs from the app.
type AppContext interface {
	OutputFormat() string
}

// Layout lists the columns of every table roster reads or writes.
type Layout struct {
	Persons  []string `json:"persons" yaml:"persons"`
	Contacts []string `json:"contacts" yaml:"contacts"`
	Output   []string `json:"output" yaml:"output"`
}

// Current returns the layout used by this build.
func Current() Layout {
	return Layout{
		Persons:  tables.PersonColumns,
		Contacts: tables.ContactInputColumns,
		Output:   records.Columns,
	}
}

// TableData implements output.Tabular.
func (l Layout) TableData(bool) output.Data {
	d := output.Data{
		Headers:         []string{"Table", "#", "Column"},
		ColumnAlignment: []output.Align{output.AlignLeft, output.AlignRight, output.AlignLeft},
	}
	add := func(table string, cols []string) {
		for i, c := range cols {
			d.Rows = append(d.Rows, []string{table, strconv.Itoa(i + 1), c})
		}
	}
	add("persons", l.Persons)
	add("contacts", l.Contacts)
	add("output", l.Output)
	return d
}

// NewCommand creates the columns command.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "columns",
		GroupID: "core",
		Short:   "List required input columns and the output column order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formatter := output.NewFormatter(output.Format(app.OutputFormat()))
			return formatter.Format(cmd.OutOrStdout(), Current())
		},
	}
}
