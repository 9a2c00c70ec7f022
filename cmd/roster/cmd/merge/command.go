// Package merge implements the merge command, which reads both input sheets,
// assembles the roster and writes it out.
package merge

import (
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/roster"
	"github.com/agentstation/roster/internal/config"
	"github.com/agentstation/roster/internal/metrics"
	"github.com/agentstation/roster/internal/store"
	"github.com/agentstation/roster/pkg/constants"
)

// AppContext defines what the merge command needs from the app.
type AppContext interface {
	Config() *config.Config
	Merger() (roster.Merger, error)
	Store() (*store.Store, error)
	Metrics() *metrics.Metrics
	Logger() *zerolog.Logger
	OutputFormat() string
	RunID() string
}

// NewCommand creates the merge command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "merge",
		GroupID: "core",
		Short:   "Merge the person and contact sheets into a roster",
		Long: `Merge reads the biographical sheet (--persons) and the contact sheet
(--contacts), left-joins contacts to persons on the identifier and writes one
normalized record per joined row.

Inputs may be .xlsx or .csv. The output format follows the --output extension
(.xlsx, .csv, .json, .yaml) unless --output-format is given.

Rows with unparsable birth dates or without a biographical match are kept and
reported; missing input columns abort the run before anything is written.`,
		Example: `  roster merge --persons bio.xlsx --contacts contacts.xlsx
  roster merge --persons bio.csv --contacts contacts.csv --output roster.csv
  roster merge --persons bio.xlsx --contacts contacts.xlsx --dry-run --preview
  roster merge --persons bio.xlsx --contacts contacts.xlsx --dry-run --preview=25
  roster merge --persons bio.csv --contacts contacts.csv --date-layout "January 2, 2006"
  roster merge --persons bio.xlsx --persons-sheet Bio --contacts contacts.xlsx --contacts-sheet Guardians
  roster merge --persons bio.xlsx --contacts contacts.xlsx --sqlite roster.db --metrics-file roster.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app)
		},
	}

	flags := cmd.Flags()
	flags.String("persons", "", "biographical sheet (.xlsx or .csv)")
	flags.String("contacts", "", "contact sheet (.xlsx or .csv)")
	flags.String("output", constants.DefaultOutputPath, "output file")
	flags.String("output-format", "", "output file format: xlsx, csv, json, yaml (default from extension)")
	flags.String("sheet", "", "workbook sheet to read from both inputs (default is the first sheet)")
	flags.String("persons-sheet", "", "workbook sheet of --persons, overrides --sheet")
	flags.String("contacts-sheet", "", "workbook sheet of --contacts, overrides --sheet")
	flags.String("sqlite", "", "also store records in this SQLite database")
	flags.String("metrics-file", "", "write run metrics to this Prometheus textfile")
	flags.StringArray("date-layout", nil, "extra birth date layout in Go time format, tried before the defaults (repeatable)")
	flags.Int("identifier-width", constants.IdentifierWidth, "zero-padded width of ID_NUMBER")
	flags.Int("preview", 0, "print the first N records; use --preview=N (--preview alone prints 10)")
	flags.Lookup("preview").NoOptDefVal = strconv.Itoa(constants.DefaultPreviewRows)
	flags.Bool("dry-run", false, "merge and report without writing any output")

	return cmd
}
