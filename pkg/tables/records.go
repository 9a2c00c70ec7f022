package tables

import (
	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/field"
)

// PersonColumns are the required columns of the biographical table.
var PersonColumns = []string{
	constants.ColumnIDNumber,
	constants.ColumnBirthDate,
	constants.ColumnGender,
	constants.ColumnBirthPlace,
	constants.ColumnBirthCountry,
}

// ContactColumns are the required columns of the contact table after
// IDENTIFIER has been renamed to ID_NUMBER.
var ContactColumns = []string{
	constants.ColumnIDNumber,
	constants.ColumnPersonName,
	constants.ColumnPersonAddress,
	constants.ColumnParent1Name,
	constants.ColumnParent1Address,
	constants.ColumnParent1Email,
	constants.ColumnParent1Phone,
	constants.ColumnParent2Name,
	constants.ColumnParent2Address,
	constants.ColumnParent2Email,
	constants.ColumnParent2Phone,
}

// ContactInputColumns are the required columns of the contact table as read,
// before the identifier rename.
var ContactInputColumns = append([]string{constants.ColumnIdentifier}, ContactColumns[1:]...)

// Person is a row of the biographical table.
type Person struct {
	ID           field.Field
	BirthDate    field.Field
	Gender       field.Field
	BirthPlace   field.Field
	BirthCountry field.Field
}

// Guardian is one raw guardian block of a contact row.
type Guardian struct {
	Name    field.Field
	Address field.Field
	Email   field.Field
	Phone   field.Field
}

// IsAbsent reports whether every field of the block is absent.
func (g Guardian) IsAbsent() bool {
	return !g.Name.Present() && !g.Address.Present() && !g.Email.Present() && !g.Phone.Present()
}

// Contact is a row of the contact table.
type Contact struct {
	ID        field.Field
	Name      field.Field
	Address   field.Field
	Guardian1 Guardian
	Guardian2 Guardian
}

// Persons validates the biographical table and extracts its rows.
func Persons(t *Table) ([]Person, error) {
	if err := t.Require(PersonColumns...); err != nil {
		return nil, err
	}
	persons := make([]Person, t.Len())
	for i := range persons {
		persons[i] = Person{
			ID:           t.Cell(i, constants.ColumnIDNumber),
			BirthDate:    t.Cell(i, constants.ColumnBirthDate),
			Gender:       t.Cell(i, constants.ColumnGender),
			BirthPlace:   t.Cell(i, constants.ColumnBirthPlace),
			BirthCountry: t.Cell(i, constants.ColumnBirthCountry),
		}
	}
	return persons, nil
}

// Contacts validates the contact table and extracts its rows with IDENTIFIER
// read as ID_NUMBER. The input table is not modified.
func Contacts(in *Table) ([]Contact, error) {
	if err := in.Require(ContactInputColumns...); err != nil {
		return nil, err
	}
	t, err := in.Renamed(constants.ColumnIdentifier, constants.ColumnIDNumber)
	if err != nil {
		return nil, err
	}
	contacts := make([]Contact, t.Len())
	for i := range contacts {
		contacts[i] = Contact{
			ID:      t.Cell(i, constants.ColumnIDNumber),
			Name:    t.Cell(i, constants.ColumnPersonName),
			Address: t.Cell(i, constants.ColumnPersonAddress),
			Guardian1: Guardian{
				Name:    t.Cell(i, constants.ColumnParent1Name),
				Address: t.Cell(i, constants.ColumnParent1Address),
				Email:   t.Cell(i, constants.ColumnParent1Email),
				Phone:   t.Cell(i, constants.ColumnParent1Phone),
			},
			Guardian2: Guardian{
				Name:    t.Cell(i, constants.ColumnParent2Name),
				Address: t.Cell(i, constants.ColumnParent2Address),
				Email:   t.Cell(i, constants.ColumnParent2Email),
				Phone:   t.Cell(i, constants.ColumnParent2Phone),
			},
		}
	}
	return contacts, nil
}
