package records

import (
	"github.com/agentstation/roster/pkg/address"
	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/guardian"
	"github.com/agentstation/roster/pkg/normalize"
	"github.com/agentstation/roster/pkg/tables"
)

// Report describes what happened while assembling one record. It carries
// the row-level soft failures, which never abort a run.
type Report struct {
	Matched          bool
	InvalidBirthDate bool
	AddressSegments  int
	Fallback         guardian.Fallback
	SecondLegal      bool
	Guardian1Present bool
	Guardian2Present bool
}

// ShortAddress reports whether the person address had to be padded.
func (r Report) ShortAddress() bool {
	return r.AddressSegments > 0 && r.AddressSegments < constants.AddressSegments
}

// Assembler numbers and assembles output records. Record numbers follow call
// order, so records must be assembled in output order.
type Assembler struct {
	layouts []string
	width   int
	next    int
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithDateLayouts replaces the birth date layouts. An empty list keeps the defaults.
func WithDateLayouts(layouts ...string) Option {
	return func(a *Assembler) {
		if len(layouts) > 0 {
			a.layouts = layouts
		}
	}
}

// WithIdentifierWidth sets the zero-padding width of identifiers.
func WithIdentifierWidth(width int) Option {
	return func(a *Assembler) {
		if width > 0 {
			a.width = width
		}
	}
}

// NewAssembler creates an Assembler whose first record is number 1.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		layouts: DefaultDateLayouts,
		width:   constants.IdentifierWidth,
		next:    1,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Count returns the number of records assembled so far.
func (a *Assembler) Count() int {
	return a.next - 1
}

// Assemble builds the next record from a joined row.
func (a *Assembler) Assemble(j tables.Joined) (Record, Report) {
	c, p := j.Contact, j.Person

	pair := guardian.Reconcile(c.Guardian1, c.Guardian2)
	last, first := normalize.SplitPersonName(c.Name.Value())
	birth, ok := FormatDate(p.BirthDate, a.layouts)

	id := ""
	if v, present := c.ID.Get(); present {
		id = PadIdentifier(v, a.width)
	}

	rec := Record{
		RecordNumber: RecordNumber(a.next),
		LastName:     last,
		FirstName:    first,
		BirthDate:    birth,
		Gender:       normalize.TitleCase(p.Gender.Value()),
		BirthPlace:   normalize.TitleCase(p.BirthPlace.Value()),
		BirthCountry: normalize.TitleCase(p.BirthCountry.Value()),
		IDNumber:     id,
		Address:      address.FromField(c.Address),
		Responsible1: pair.Responsible1,
		Responsible2: pair.Responsible2,
	}
	a.next++

	return rec, Report{
		Matched:          j.Matched,
		InvalidBirthDate: !ok,
		AddressSegments:  address.Segments(c.Address.Value()),
		Fallback:         pair.Fallback,
		SecondLegal:      pair.HasSecondLegal(),
		Guardian1Present: c.Guardian1.Name.Present(),
		Guardian2Present: c.Guardian2.Name.Present(),
	}
}

// AssembleAll assembles every joined row in order with a fresh numbering.
func AssembleAll(joined []tables.Joined, opts ...Option) []Record {
	a := NewAssembler(opts...)
	recs := make([]Record, len(joined))
	for i, j := range joined {
		recs[i], _ = a.Assemble(j)
	}
	return recs
}
