package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PersonType classifies a person record.
type PersonType string

const (
	PersonTypeEmployee    PersonType = "EM"
	PersonTypeSalesPerson PersonType = "SP"
)

// Person holds name and contact classification for one identity.
type Person struct {
	BusinessEntityID int
	PersonType       PersonType
	NameStyle        bool
	Title            string
	FirstName        string
	MiddleName       string
	LastName         string
	Suffix           string
	EmailPromotion   int
	RowGUID          uuid.UUID
	ModifiedDate     time.Time
}

// FullName joins the non-empty name parts.
func (p Person) FullName() string {
	parts := make([]string, 0, 5)
	for _, part := range []string{p.Title, p.FirstName, p.MiddleName, p.LastName, p.Suffix} {
		if s := strings.TrimSpace(part); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
