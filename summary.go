package roster

import (
	"time"

	"github.com/agentstation/roster/pkg/guardian"
	"github.com/agentstation/roster/pkg/records"
)

// Summary counts what a merge did.
type Summary struct {
	Persons           int            `json:"persons" yaml:"persons"`
	Contacts          int            `json:"contacts" yaml:"contacts"`
	Records           int            `json:"records" yaml:"records"`
	Unmatched         int            `json:"unmatched" yaml:"unmatched"`
	InvalidBirthDates int            `json:"invalid_birth_dates" yaml:"invalid_birth_dates"`
	ShortAddresses    int            `json:"short_addresses" yaml:"short_addresses"`
	SecondLegal       int            `json:"second_legal" yaml:"second_legal"`
	Fallbacks         map[string]int `json:"fallbacks" yaml:"fallbacks"`
	Duration          time.Duration  `json:"duration" yaml:"duration"`
}

func newSummary(persons, contacts int) Summary {
	fb := make(map[string]int, len(guardian.Groups))
	for _, g := range guardian.Groups {
		fb[g.Name()] = 0
	}
	return Summary{Persons: persons, Contacts: contacts, Fallbacks: fb}
}

func (s *Summary) add(rep records.Report) {
	s.Records++
	if !rep.Matched {
		s.Unmatched++
	}
	if rep.InvalidBirthDate {
		s.InvalidBirthDates++
	}
	if rep.ShortAddress() {
		s.ShortAddresses++
	}
	if rep.SecondLegal {
		s.SecondLegal++
	}
	for _, g := range guardian.Groups {
		if rep.Fallback.Has(g) {
			s.Fallbacks[g.Name()]++
		}
	}
}
