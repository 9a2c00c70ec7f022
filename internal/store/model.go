package store

import (
	"time"

	"github.com/agentstation/roster/pkg/guardian"
	"github.com/agentstation/roster/pkg/records"
)

// Row is the persisted form of an output record. Guardian slots and the
// address are flattened into columns mirroring the output sheet.
type Row struct {
	ID        uint   `gorm:"primaryKey"`
	RunID     string `gorm:"size:36;index;not null"`
	CreatedAt time.Time

	RecordNumber string `gorm:"size:32"`
	Title        string
	LastName     string
	FirstName    string
	BirthDate    string `gorm:"size:10"`
	Gender       string
	BirthPlace   string
	BirthCountry string
	IDNumber     string `gorm:"index"`
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	PostalCode   string
	City         string

	Responsible1Role         string
	Responsible1LastName     string
	Responsible1FirstName    string
	Responsible1AddressLine1 string
	Responsible1AddressLine2 string
	Responsible1AddressLine3 string
	Responsible1PostalCode   string
	Responsible1City         string
	Responsible1Email        string
	Responsible1Phone        string

	Responsible2Role         string
	Responsible2LastName     string
	Responsible2FirstName    string
	Responsible2AddressLine1 string
	Responsible2AddressLine2 string
	Responsible2AddressLine3 string
	Responsible2PostalCode   string
	Responsible2City         string
	Responsible2Email        string
	Responsible2Phone        string
}

// TableName overrides the GORM table name.
func (Row) TableName() string {
	return "roster_records"
}

// NewRow flattens a record for a run.
func NewRow(runID string, r records.Record) Row {
	row := Row{
		RunID:        runID,
		RecordNumber: r.RecordNumber,
		Title:        r.Title,
		LastName:     r.LastName,
		FirstName:    r.FirstName,
		BirthDate:    r.BirthDate,
		Gender:       r.Gender,
		BirthPlace:   r.BirthPlace,
		BirthCountry: r.BirthCountry,
		IDNumber:     r.IDNumber,
		AddressLine1: r.Address.Line1,
		AddressLine2: r.Address.Line2,
		AddressLine3: r.Address.Line3,
		PostalCode:   r.Address.PostalCode,
		City:         r.Address.City,
	}
	row.setResponsible1(r.Responsible1)
	row.setResponsible2(r.Responsible2)
	return row
}

func (row *Row) setResponsible1(s guardian.Slot) {
	row.Responsible1Role = s.Role
	row.Responsible1LastName = s.LastName
	row.Responsible1FirstName = s.FirstName
	row.Responsible1AddressLine1 = s.Address.Line1
	row.Responsible1AddressLine2 = s.Address.Line2
	row.Responsible1AddressLine3 = s.Address.Line3
	row.Responsible1PostalCode = s.Address.PostalCode
	row.Responsible1City = s.Address.City
	row.Responsible1Email = s.Email
	row.Responsible1Phone = s.Phone
}

func (row *Row) setResponsible2(s guardian.Slot) {
	row.Responsible2Role = s.Role
	row.Responsible2LastName = s.LastName
	row.Responsible2FirstName = s.FirstName
	row.Responsible2AddressLine1 = s.Address.Line1
	row.Responsible2AddressLine2 = s.Address.Line2
	row.Responsible2AddressLine3 = s.Address.Line3
	row.Responsible2PostalCode = s.Address.PostalCode
	row.Responsible2City = s.Address.City
	row.Responsible2Email = s.Email
	row.Responsible2Phone = s.Phone
}
