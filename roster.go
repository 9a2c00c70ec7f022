// Package roster merges a biographical table and a contact table into the
// normalized person roster.
//
// A Merger validates both tables, left-joins contacts against persons on the
// identifier and assembles one output record per joined row:
//
//	m, err := roster.New(roster.WithIdentifierWidth(7))
//	if err != nil {
//		return err
//	}
//	res, err := m.Merge(ctx, persons, contacts)
//
// Row-level problems (unparsable birth dates, unmatched contacts, short
// addresses) never abort a run; they are logged and counted in the Summary.
package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/logging"
	"github.com/agentstation/roster/pkg/records"
	"github.com/agentstation/roster/pkg/tables"
)

// Merger merges input tables into roster records.
type Merger interface {
	// Validate checks the column preconditions of both tables.
	Validate(persons, contacts *tables.Table) error

	// Merge validates, joins and assembles both tables. Neither table is
	// modified, so the same tables can be merged again.
	Merge(ctx context.Context, persons, contacts *tables.Table) (*Result, error)

	// OnRecord registers a callback for every assembled record
	OnRecord(RecordHook)

	// OnFallback registers a callback for records that used guardian 2 data
	OnFallback(FallbackHook)

	// OnUnmatched registers a callback for contacts without a biographical row
	OnUnmatched(UnmatchedHook)
}

// Result is the outcome of a merge.
type Result struct {
	Records []records.Record
	Summary Summary
}

// Rows returns the records as string rows in output column order.
func (r *Result) Rows() [][]string {
	return records.Rows(r.Records)
}

// merger is the internal implementation of the Merger interface
type merger struct {
	config *config
	hooks  *hooks
}

// New creates a Merger with the given options.
func New(opts ...Option) (Merger, error) {
	m := &merger{
		config: defaultConfig(),
		hooks:  newHooks(),
	}
	if err := m.options(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}
	return m, nil
}

func (m *merger) OnRecord(fn RecordHook)       { m.hooks.OnRecord(fn) }
func (m *merger) OnFallback(fn FallbackHook)   { m.hooks.OnFallback(fn) }
func (m *merger) OnUnmatched(fn UnmatchedHook) { m.hooks.OnUnmatched(fn) }

// Validate checks the column preconditions of both tables without modifying them.
func (m *merger) Validate(persons, contacts *tables.Table) error {
	return tables.Validate(persons, contacts)
}

// Merge runs the full pipeline. Cancellation is checked between rows; a
// canceled merge returns no records.
func (m *merger) Merge(ctx context.Context, persons, contacts *tables.Table) (*Result, error) {
	ctx = logging.WithOperation(ctx, "merge")
	logger := logging.FromContext(ctx)
	start := time.Now()

	joined, err := tables.Prepare(persons, contacts)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("persons", persons.Len()).
		Int("contacts", contacts.Len()).
		Int("joined", len(joined)).
		Msg("tables joined")

	sum := newSummary(persons.Len(), contacts.Len())
	asm := records.NewAssembler(m.config.assemblerOptions()...)
	recs := make([]records.Record, 0, len(joined))

	for _, j := range joined {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w after %d rows: %w", errors.ErrCanceled, len(recs), err)
		}

		rec, rep := asm.Assemble(j)
		recs = append(recs, rec)
		sum.add(rep)

		m.observe(logging.WithRow(ctx, len(recs)), j, rec, rep)
	}

	sum.Duration = time.Since(start)
	logger.Info().
		Int("rows_in", sum.Contacts).
		Int("rows_out", sum.Records).
		Int("unmatched", sum.Unmatched).
		Int("second_legal", sum.SecondLegal).
		Int("invalid_birth_dates", sum.InvalidBirthDates).
		Dur("duration", sum.Duration).
		Msg("merge complete")

	return &Result{Records: recs, Summary: sum}, nil
}

// observe logs row-level findings and fires hooks.
func (m *merger) observe(ctx context.Context, j tables.Joined, rec records.Record, rep records.Report) {
	logger := logging.FromContext(ctx)

	if !rep.Matched {
		logger.Warn().Str("id", j.Contact.ID.Value()).Msg("contact has no biographical row")
		m.hooks.triggerUnmatched(j.Contact)
	}
	if rep.InvalidBirthDate {
		logger.Warn().Str("birth_date", j.Person.BirthDate.Value()).Msg("unparsable birth date")
	}
	if rep.ShortAddress() {
		logger.Debug().Int("segments", rep.AddressSegments).Msg("short address padded")
	}
	if rep.Fallback != 0 {
		logger.Debug().Stringer("groups", rep.Fallback).Msg("guardian 2 data promoted")
		m.hooks.triggerFallback(rec, rep.Fallback)
	}
	m.hooks.triggerRecord(rec, rep)
}
