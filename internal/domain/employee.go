package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	GenderMale   = "M"
	GenderFemale = "F"

	MaritalStatusMarried = "M"
	MaritalStatusSingle  = "S"
)

// Employee is the employment record sharing its key with Person.
// Version is bumped on every write and guards lifecycle transitions.
type Employee struct {
	BusinessEntityID  int
	NationalIDNumber  string
	LoginID           string
	OrganizationLevel *int
	JobTitle          string
	BirthDate         time.Time
	MaritalStatus     string
	Gender            string
	HireDate          time.Time
	SalariedFlag      bool
	VacationHours     int
	SickLeaveHours    int
	CurrentFlag       bool
	ManagerID         *int
	Version           int
	RowGUID           uuid.UUID
	ModifiedDate      time.Time
}
