package merge

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/agentstation/roster"
	"github.com/agentstation/roster/internal/cmd/alerts"
	"github.com/agentstation/roster/internal/cmd/output"
	"github.com/agentstation/roster/internal/config"
	"github.com/agentstation/roster/internal/sheets"
	"github.com/agentstation/roster/pkg/logging"
	"github.com/agentstation/roster/pkg/records"
	"github.com/agentstation/roster/pkg/tables"
)

// Report is the command result printed after a merge.
type Report struct {
	RunID   string         `json:"run_id" yaml:"run_id"`
	Output  string         `json:"output,omitempty" yaml:"output,omitempty"`
	Format  string         `json:"format,omitempty" yaml:"format,omitempty"`
	SQLite  string         `json:"sqlite,omitempty" yaml:"sqlite,omitempty"`
	DryRun  bool           `json:"dry_run" yaml:"dry_run"`
	Summary roster.Summary `json:"summary" yaml:"summary"`
}

// TableData implements output.Tabular.
func (r Report) TableData(bool) output.Data {
	s := r.Summary
	rows := [][]string{
		{"Run", r.RunID},
		{"Output", r.Output},
		{"Persons", fmt.Sprint(s.Persons)},
		{"Contacts", fmt.Sprint(s.Contacts)},
		{"Records", fmt.Sprint(s.Records)},
		{"Unmatched", fmt.Sprint(s.Unmatched)},
		{"Invalid birth dates", fmt.Sprint(s.InvalidBirthDates)},
		{"Second legal guardians", fmt.Sprint(s.SecondLegal)},
		{"Duration", s.Duration.String()},
	}
	if r.DryRun {
		rows[1][1] = "(dry run)"
	}
	if r.SQLite != "" {
		rows = append(rows, []string{"SQLite", r.SQLite})
	}
	return output.Data{
		Headers:         []string{"Property", "Value"},
		Rows:            rows,
		ColumnAlignment: []output.Align{output.AlignLeft, output.AlignRight},
	}
}

func run(cmd *cobra.Command, app AppContext) error {
	cfg := app.Config()
	if err := cfg.RequireInputs(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if logging.RunID(ctx) == "" {
		ctx = logging.WithRunID(logging.WithLogger(ctx, app.Logger()), app.RunID())
	}
	logger := logging.FromContext(ctx)

	persons, contacts, err := ReadInputs(ctx, cfg)
	if err != nil {
		return err
	}

	m, err := app.Merger()
	if err != nil {
		return err
	}
	res, err := m.Merge(ctx, persons, contacts)
	if err != nil {
		return err
	}

	report := Report{
		RunID:   app.RunID(),
		DryRun:  cfg.DryRun,
		Summary: res.Summary,
	}

	if cfg.DryRun {
		logger.Info().Msg("dry run, no output written")
	} else {
		if err := sheets.Write(ctx, cfg.Output, sheets.Format(cfg.OutputFormat), records.Columns, res.Rows()); err != nil {
			return err
		}
		report.Output = cfg.Output
		report.Format = cfg.OutputFormat
		logger.Info().Str("file", cfg.Output).Int("records", len(res.Records)).Msg("roster written")

		if cfg.SQLitePath != "" {
			st, err := app.Store()
			if err != nil {
				return err
			}
			if err := st.Save(ctx, app.RunID(), res.Records); err != nil {
				return err
			}
			report.SQLite = cfg.SQLitePath
			logger.Info().Str("file", cfg.SQLitePath).Msg("records stored")
		}
	}

	if cfg.MetricsFile != "" {
		met := app.Metrics()
		met.Observe(res.Summary)
		if err := met.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}

	formatter := output.NewFormatter(output.Format(app.OutputFormat()))
	if cfg.Preview > 0 {
		if err := formatter.Format(cmd.OutOrStdout(), previewData(app.OutputFormat(), res.Records, cfg.Preview)); err != nil {
			return err
		}
	}
	if err := formatter.Format(cmd.OutOrStdout(), report); err != nil {
		return err
	}
	return alerts.Write(cmd.ErrOrStderr(), alerts.FromSummary(res.Summary)...)
}

// ReadInputs reads the persons and contacts tables named in cfg.
func ReadInputs(ctx context.Context, cfg *config.Config) (persons, contacts *tables.Table, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		persons, err = sheets.Read(logging.WithTable(gctx, "persons"), cfg.Persons, sheets.ReadOptions{
			Name:  "persons",
			Sheet: cfg.PersonsSheetName(),
		})
		return err
	})
	g.Go(func() error {
		var err error
		contacts, err = sheets.Read(logging.WithTable(gctx, "contacts"), cfg.Contacts, sheets.ReadOptions{
			Name:  "contacts",
			Sheet: cfg.ContactsSheetName(),
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return persons, contacts, nil
}
