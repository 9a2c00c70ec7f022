// Package alerts prints human-readable status lines for a merge run.
package alerts

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/agentstation/roster"
)

// Alert represents a status notification.
type Alert struct {
	Level   Level
	Message string
	Details []string
	Err     error
}

// New creates a new alert with the given level and message.
func New(level Level, format string, args ...any) *Alert {
	return &Alert{Level: level, Message: fmt.Sprintf(format, args...)}
}

// WithError adds an underlying error to the alert.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails adds additional context details to the alert.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// String returns the alert line without details.
func (a *Alert) String() string {
	message := a.Level.Icon() + " " + a.Message
	if a.Err != nil {
		message += fmt.Sprintf(": %v", a.Err)
	}
	return message
}

// Write prints alerts to w, one per line, with details indented below.
func Write(w io.Writer, alerts ...*Alert) error {
	for _, a := range alerts {
		if _, err := fmt.Fprintln(w, a.String()); err != nil {
			return err
		}
		for _, d := range a.Details {
			if _, err := fmt.Fprintf(w, "    %s\n", d); err != nil {
				return err
			}
		}
	}
	return nil
}

// FromSummary turns a run summary into alerts: one success line and one
// warning per kind of soft failure that occurred.
func FromSummary(s roster.Summary) []*Alert {
	out := []*Alert{
		New(LevelSuccess, "assembled %d records from %d contacts and %d persons", s.Records, s.Contacts, s.Persons),
	}
	if s.Unmatched > 0 {
		out = append(out, New(LevelWarning, "%d contacts have no biographical row", s.Unmatched))
	}
	if s.InvalidBirthDates > 0 {
		out = append(out, New(LevelWarning, "%d birth dates could not be parsed and were left empty", s.InvalidBirthDates))
	}
	if s.ShortAddresses > 0 {
		out = append(out, New(LevelInfo, "%d addresses had fewer than 5 segments", s.ShortAddresses))
	}

	var groups []string
	for g, n := range s.Fallbacks {
		if n > 0 {
			groups = append(groups, fmt.Sprintf("%s: %d", g, n))
		}
	}
	if len(groups) > 0 {
		sort.Strings(groups)
		out = append(out, New(LevelInfo, "second guardian data used for the first guardian").
			WithDetails(strings.Join(groups, ", ")))
	}
	return out
}
