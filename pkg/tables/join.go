package tables

import (
	"github.com/agentstation/roster/pkg/errors"
)

// Joined is a contact row paired with its biographical row. When no
// biographical row shares the identifier, Matched is false and Person is zero.
type Joined struct {
	Contact Contact
	Person  Person
	Matched bool
}

// Join performs a left join of contacts against persons on the identifier.
// Every contact produces at least one Joined; a contact whose identifier
// appears on several person rows produces one Joined per person row, in
// person order. Absent identifiers never match.
func Join(contacts []Contact, persons []Person) []Joined {
	byID := make(map[string][]int, len(persons))
	for i, p := range persons {
		if id, ok := p.ID.Get(); ok {
			byID[id] = append(byID[id], i)
		}
	}

	joined := make([]Joined, 0, len(contacts))
	for _, c := range contacts {
		id, ok := c.ID.Get()
		matches := byID[id]
		if !ok || len(matches) == 0 {
			joined = append(joined, Joined{Contact: c})
			continue
		}
		for _, pi := range matches {
			joined = append(joined, Joined{Contact: c, Person: persons[pi], Matched: true})
		}
	}
	return joined
}

// Validate checks the required columns of both tables without modifying them.
// Every missing column of both tables is reported; when both tables fail the
// two MissingColumnsErrors are joined.
func Validate(persons, contacts *Table) error {
	return errors.Join(
		persons.Require(PersonColumns...),
		contacts.Require(ContactInputColumns...),
	)
}

// Prepare validates both tables, extracts their rows and joins them.
// No row is read unless both tables pass validation.
func Prepare(persons, contacts *Table) ([]Joined, error) {
	if err := Validate(persons, contacts); err != nil {
		return nil, err
	}
	ps, err := Persons(persons)
	if err != nil {
		return nil, err
	}
	cs, err := Contacts(contacts)
	if err != nil {
		return nil, err
	}
	return Join(cs, ps), nil
}
