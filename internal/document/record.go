// Package document extracts structured records from the free text of the
// three documents a bidder submits: the chamber-of-commerce certificate,
// the RUT (tax registry) and the tender notice. Extraction is best-effort:
// a field that cannot be matched confidently is left empty instead of
// producing an error.
package document

import (
	"fmt"
	"time"
)

// Status is the registry status stated by a certificate or RUT.
type Status string

const (
	StatusActive   Status = "ACTIVO"
	StatusInactive Status = "INACTIVO"
	StatusUnknown  Status = "DESCONOCIDO"
)

// Date is a day/month/year triple without timezone, as printed on the
// documents.
type Date struct {
	Day   int
	Month int
	Year  int
}

func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%d", d.Day, d.Month, d.Year)
}

// Time converts the date to a time.Time in UTC. The zero time is returned
// for dates the calendar rejects.
func (d Date) Time() time.Time {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return time.Time{}
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	if t.Day() != d.Day {
		// Normalized away, e.g. 31/02.
		return time.Time{}
	}
	return t
}

// Certificate holds the fields extracted from a chamber-of-commerce
// certificate of existence and legal representation.
type Certificate struct {
	TaxID               string
	LegalName           string
	BusinessPurpose     string
	SecondaryActivities string
	Assets              *float64
	Equity              *float64
	ExpeditionDate      *Date
	LegalRepresentative string
	Municipality        string
	Status              Status
}

// TaxRecord holds the fields extracted from a RUT document.
type TaxRecord struct {
	TaxID            string
	LegalName        string
	EconomicActivity string
	Status           Status
}

// Notice holds the fields extracted from a public tender notice.
type Notice struct {
	ProcessNumber  string
	Entity         string
	ContractObject string
	Description    string
	EstimatedValue *float64
	Duration       string
	Requirements   []string
}
