// Package validate implements the validate command, which checks the column
// preconditions of both input sheets without merging them.
package validate

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/roster"
	"github.com/agentstation/roster/cmd/roster/cmd/merge"
	"github.com/agentstation/roster/internal/cmd/alerts"
	"github.com/agentstation/roster/internal/cmd/output"
	"github.com/agentstation/roster/internal/config"
	"github.com/agentstation/roster/pkg/tables"
)

// AppContext defines what the validate command needs from the app.
type AppContext interface {
	Config() *config.Config
	Merger() (roster.Merger, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// Result is the validation outcome of one input table.
type Result struct {
	Table   string   `json:"table" yaml:"table"`
	File    string   `json:"file" yaml:"file"`
	Rows    int      `json:"rows" yaml:"rows"`
	Missing []string `json:"missing" yaml:"missing"`
}

// Results is the validation outcome of both tables.
type Results []Result

// TableData implements output.Tabular.
func (rs Results) TableData(bool) output.Data {
	d := output.Data{Headers: []string{"Table", "File", "Rows", "Status"}}
	for _, r := range rs {
		status := "ok"
		if len(r.Missing) > 0 {
			status = "missing " + strings.Join(r.Missing, ", ")
		}
		d.Rows = append(d.Rows, []string{r.Table, r.File, strconv.Itoa(r.Rows), status})
	}
	return d
}

// NewCommand creates the validate command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "core",
		Short:   "Check that both input sheets have the required columns",
		Example: `  roster validate --persons bio.xlsx --contacts contacts.xlsx`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.Config()
			if err := cfg.RequireInputs(); err != nil {
				return err
			}

			persons, contacts, err := merge.ReadInputs(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			results := Results{
				{Table: persons.Name, File: cfg.Persons, Rows: persons.Len(), Missing: persons.Missing(tables.PersonColumns...)},
				{Table: contacts.Name, File: cfg.Contacts, Rows: contacts.Len(), Missing: contacts.Missing(tables.ContactInputColumns...)},
			}
			formatter := output.NewFormatter(output.Format(app.OutputFormat()))
			if err := formatter.Format(cmd.OutOrStdout(), results); err != nil {
				return err
			}

			m, err := app.Merger()
			if err != nil {
				return err
			}
			if err := m.Validate(persons, contacts); err != nil {
				return err
			}
			return alerts.Write(cmd.ErrOrStderr(), alerts.New(alerts.LevelSuccess, "both tables have every required column"))
		},
	}

	flags := cmd.Flags()
	flags.String("persons", "", "biographical sheet (.xlsx or .csv)")
	flags.String("contacts", "", "contact sheet (.xlsx or .csv)")
	flags.String("sheet", "", "workbook sheet to read from both inputs (default is the first sheet)")
	flags.String("persons-sheet", "", "workbook sheet of --persons, overrides --sheet")
	flags.String("contacts-sheet", "", "workbook sheet of --contacts, overrides --sheet")

	return cmd
}
