package domain

import "time"

// LookupKind names a reference-data table checked before writes.
type LookupKind string

const (
	LookupAddressType     LookupKind = "AddressType"
	LookupPhoneNumberType LookupKind = "PhoneNumberType"
	LookupStateProvince   LookupKind = "StateProvince"
	LookupDepartment      LookupKind = "Department"
	LookupShift           LookupKind = "Shift"
)

// Department represents a high-level organizational unit.
type Department struct {
	ID           int
	Name         string
	GroupName    string
	ModifiedDate time.Time
}

// Shift is a work shift an employee can be assigned to.
type Shift struct {
	ID           int
	Name         string
	StartTime    string
	EndTime      string
	ModifiedDate time.Time
}
