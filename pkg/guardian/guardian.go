// Package guardian reconciles the two raw guardian blocks of a contact row into
// the Responsible1 and Responsible2 slots of an output record.
//
// Each field group (name, address, email, phone) is decided on its own: when
// guardian 1 has nothing for a group, guardian 2's value moves into
// Responsible1 and Responsible2 is left empty for that group. Otherwise each
// guardian keeps its own slot.
//
// Roles are decided from the raw input, not from the reconciled slots.
// Responsible1 is always LEGAL. Responsible2 is LEGAL only when both guardians
// originally had a name, so a slot populated purely by leftovers from
// guardian 2 carries no role.
package guardian

import (
	"github.com/agentstation/roster/pkg/address"
	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/normalize"
	"github.com/agentstation/roster/pkg/tables"
)

// Slot is a reconciled responsible party.
type Slot struct {
	Role      string             `json:"role" yaml:"role"`
	LastName  string             `json:"last_name" yaml:"last_name"`
	FirstName string             `json:"first_name" yaml:"first_name"`
	Address   address.Components `json:"address" yaml:"address"`
	Email     string             `json:"email" yaml:"email"`
	Phone     string             `json:"phone" yaml:"phone"`
}

// IsEmpty reports whether the slot holds no data at all, role included.
func (s Slot) IsEmpty() bool {
	return s == Slot{}
}

// Name is the parsed name group of a guardian.
type Name struct {
	First string
	Last  string
}

// IsEmpty reports whether both name parts are empty.
func (n Name) IsEmpty() bool {
	return n.First == "" && n.Last == ""
}

// Parsed is a guardian block with every field group normalized.
type Parsed struct {
	// Present reports whether the raw name was present before any fallback.
	Present bool
	Name    Name
	Address address.Components
	Email   string
	Phone   string
}

// Parse normalizes a raw guardian block.
func Parse(g tables.Guardian) Parsed {
	first, last := normalize.SplitName(g.Name.Value())
	return Parsed{
		Present: g.Name.Present(),
		Name:    Name{First: first, Last: last},
		Address: address.FromField(g.Address),
		Email:   normalize.LowerCase(g.Email.Value()),
		Phone:   normalize.DigitsOnly(g.Phone.Value()),
	}
}

// Pair is the reconciled Responsible1/Responsible2 pair for one record.
type Pair struct {
	Responsible1 Slot
	Responsible2 Slot

	// Fallback records the groups where guardian 2's data was moved into
	// Responsible1.
	Fallback Fallback
}

// Reconcile builds the slot pair from two raw guardian blocks.
func Reconcile(g1, g2 tables.Guardian) Pair {
	return ReconcileParsed(Parse(g1), Parse(g2))
}

// ReconcileParsed builds the slot pair from two parsed guardian blocks.
func ReconcileParsed(p1, p2 Parsed) Pair {
	var pair Pair

	r1 := &pair.Responsible1
	r2 := &pair.Responsible2

	r1.Role = constants.RoleLegal
	if p1.Present && p2.Present {
		r2.Role = constants.RoleLegal
	}

	if p1.Name.IsEmpty() {
		setName(r1, p2.Name)
		if !p2.Name.IsEmpty() {
			pair.Fallback |= FallbackName
		}
	} else {
		setName(r1, p1.Name)
		setName(r2, p2.Name)
	}

	if p1.Address.IsEmpty() {
		r1.Address = p2.Address
		if !p2.Address.IsEmpty() {
			pair.Fallback |= FallbackAddress
		}
	} else {
		r1.Address = p1.Address
		r2.Address = p2.Address
	}

	r1.Email, r2.Email = pick(p1.Email, p2.Email, &pair.Fallback, FallbackEmail)
	r1.Phone, r2.Phone = pick(p1.Phone, p2.Phone, &pair.Fallback, FallbackPhone)

	return pair
}

// HasSecondLegal reports whether the pair represents two distinct legal guardians.
func (p Pair) HasSecondLegal() bool {
	return p.Responsible2.Role == constants.RoleLegal
}

func setName(s *Slot, n Name) {
	s.FirstName = n.First
	s.LastName = n.Last
}

// pick resolves a single-value group.
func pick(v1, v2 string, fb *Fallback, group Fallback) (string, string) {
	if v1 == "" {
		if v2 != "" {
			*fb |= group
		}
		return v2, ""
	}
	return v1, v2
}
