// Package records assembles the fixed-shape output record from a joined
// contact/biographical row and its reconciled guardian slots.
package records

import (
	"github.com/agentstation/roster/pkg/address"
	"github.com/agentstation/roster/pkg/guardian"
)

// Columns is the output header, in output order.
var Columns = []string{
	"RECORD_NUMBER",
	"TITLE",
	"LAST_NAME",
	"FIRST_NAME",
	"BIRTH_DATE",
	"GENDER",
	"BIRTH_PLACE",
	"BIRTH_COUNTRY",
	"ID_NUMBER",
	"ADDRESS_LINE_1",
	"ADDRESS_LINE_2",
	"ADDRESS_LINE_3",
	"POSTAL_CODE",
	"CITY",
	"RESPONSIBLE1_ROLE",
	"RESPONSIBLE1_LAST_NAME",
	"RESPONSIBLE1_FIRST_NAME",
	"RESPONSIBLE1_ADDRESS_LINE_1",
	"RESPONSIBLE1_ADDRESS_LINE_2",
	"RESPONSIBLE1_ADDRESS_LINE_3",
	"RESPONSIBLE1_POSTAL_CODE",
	"RESPONSIBLE1_CITY",
	"RESPONSIBLE1_EMAIL",
	"RESPONSIBLE1_PHONE",
	"RESPONSIBLE2_ROLE",
	"RESPONSIBLE2_LAST_NAME",
	"RESPONSIBLE2_FIRST_NAME",
	"RESPONSIBLE2_ADDRESS_LINE_1",
	"RESPONSIBLE2_ADDRESS_LINE_2",
	"RESPONSIBLE2_ADDRESS_LINE_3",
	"RESPONSIBLE2_POSTAL_CODE",
	"RESPONSIBLE2_CITY",
	"RESPONSIBLE2_EMAIL",
	"RESPONSIBLE2_PHONE",
}

// Record is one output row. It is built once by an Assembler and not modified.
type Record struct {
	RecordNumber string             `json:"record_number" yaml:"record_number"`
	Title        string             `json:"title" yaml:"title"`
	LastName     string             `json:"last_name" yaml:"last_name"`
	FirstName    string             `json:"first_name" yaml:"first_name"`
	BirthDate    string             `json:"birth_date" yaml:"birth_date"`
	Gender       string             `json:"gender" yaml:"gender"`
	BirthPlace   string             `json:"birth_place" yaml:"birth_place"`
	BirthCountry string             `json:"birth_country" yaml:"birth_country"`
	IDNumber     string             `json:"id_number" yaml:"id_number"`
	Address      address.Components `json:"address" yaml:"address"`
	Responsible1 guardian.Slot      `json:"responsible1" yaml:"responsible1"`
	Responsible2 guardian.Slot      `json:"responsible2" yaml:"responsible2"`
}

// Values flattens the record in Columns order.
func (r Record) Values() []string {
	v := make([]string, 0, len(Columns))
	v = append(v,
		r.RecordNumber,
		r.Title,
		r.LastName,
		r.FirstName,
		r.BirthDate,
		r.Gender,
		r.BirthPlace,
		r.BirthCountry,
		r.IDNumber,
		r.Address.Line1,
		r.Address.Line2,
		r.Address.Line3,
		r.Address.PostalCode,
		r.Address.City,
	)
	v = appendSlot(v, r.Responsible1)
	v = appendSlot(v, r.Responsible2)
	return v
}

// Map returns the record keyed by output column name.
func (r Record) Map() map[string]string {
	values := r.Values()
	m := make(map[string]string, len(Columns))
	for i, col := range Columns {
		m[col] = values[i]
	}
	return m
}

func appendSlot(v []string, s guardian.Slot) []string {
	return append(v,
		s.Role,
		s.LastName,
		s.FirstName,
		s.Address.Line1,
		s.Address.Line2,
		s.Address.Line3,
		s.Address.PostalCode,
		s.Address.City,
		s.Email,
		s.Phone,
	)
}

// Rows flattens records into a header-less row set in Columns order.
func Rows(recs []Record) [][]string {
	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = r.Values()
	}
	return rows
}
