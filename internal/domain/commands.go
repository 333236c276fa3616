package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PersonInput carries the caller-supplied person fields for staff creation.
type PersonInput struct {
	Title          string
	FirstName      string
	MiddleName     string
	LastName       string
	Suffix         string
	NameStyle      bool
	EmailPromotion int
}

// EmploymentInput carries the caller-supplied employment fields.
type EmploymentInput struct {
	NationalIDNumber  string
	LoginID           string
	OrganizationLevel *int
	JobTitle          string
	BirthDate         time.Time
	MaritalStatus     string
	Gender            string
	HireDate          time.Time
	SalariedFlag      bool
}

// SalesRoleInput is present only when the staff member is a sales person.
type SalesRoleInput struct {
	TerritoryID   *int
	SalesQuota    *decimal.Decimal
	Bonus         decimal.Decimal
	CommissionPct decimal.Decimal
}

type PhoneInput struct {
	PhoneNumber       string
	PhoneNumberTypeID int
}

type EmailInput struct {
	Address string
}

type AddressInput struct {
	AddressLine1    string
	AddressLine2    string
	City            string
	StateProvinceID int
	PostalCode      string
}

// CreateStaffCommand is the full input graph of one staff creation.
type CreateStaffCommand struct {
	Person        PersonInput
	Employment    EmploymentInput
	SalesRole     *SalesRoleInput
	Phone         PhoneInput
	Email         EmailInput
	Address       AddressInput
	AddressTypeID int
	AsOf          time.Time
}

// PersonPatch lists the mutable person fields; nil leaves a field unchanged.
type PersonPatch struct {
	Title          *string
	FirstName      *string
	MiddleName     *string
	LastName       *string
	Suffix         *string
	NameStyle      *bool
	EmailPromotion *int
}

// EmploymentPatch lists employment fields. NationalIDNumber, LoginID,
// BirthDate and HireDate are immutable and only accepted when unchanged.
type EmploymentPatch struct {
	JobTitle          *string
	MaritalStatus     *string
	Gender            *string
	SalariedFlag      *bool
	OrganizationLevel *int
	VacationHours     *int
	SickLeaveHours    *int

	NationalIDNumber *string
	LoginID          *string
	BirthDate        *time.Time
	HireDate         *time.Time
}

type SalesRolePatch struct {
	TerritoryID   *int
	SalesQuota    *decimal.Decimal
	Bonus         *decimal.Decimal
	CommissionPct *decimal.Decimal
}

// UpdateStaffCommand patches the employment subset of an aggregate.
type UpdateStaffCommand struct {
	Person     PersonPatch
	Employment EmploymentPatch
	SalesRole  *SalesRolePatch
	AsOf       time.Time
}

type AddressPatch struct {
	AddressLine1    *string
	AddressLine2    *string
	City            *string
	StateProvinceID *int
	PostalCode      *string
}

// HireCommand moves a prospective employee to Active.
type HireCommand struct {
	DepartmentID  int
	ShiftID       int
	HireDate      time.Time
	PayRate       decimal.Decimal
	PayFrequency  PayFrequency
	VacationHours int
	SickHours     int
	ManagerID     *int
}

// TerminateCommand moves an active employee to Terminated.
// PayoutPto defaults to true when nil.
type TerminateCommand struct {
	TerminationDate time.Time
	Reason          string
	Type            TerminationType
	PayoutPto       *bool
}

// RehireCommand moves a terminated employee back to Active.
type RehireCommand struct {
	DepartmentID     int
	ShiftID          int
	RehireDate       time.Time
	PayRate          decimal.Decimal
	PayFrequency     PayFrequency
	RestoreSeniority bool
}
