package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dates travel as YYYY-MM-DD strings and are parsed by the handlers.

// PersonRequest payload.
type PersonRequest struct {
	Title          string `json:"title"`
	FirstName      string `json:"firstName"`
	MiddleName     string `json:"middleName"`
	LastName       string `json:"lastName"`
	Suffix         string `json:"suffix"`
	NameStyle      bool   `json:"nameStyle"`
	EmailPromotion int    `json:"emailPromotion"`
}

// EmploymentRequest payload.
type EmploymentRequest struct {
	NationalIDNumber  string `json:"nationalIdNumber"`
	LoginID           string `json:"loginId"`
	OrganizationLevel *int   `json:"organizationLevel"`
	JobTitle          string `json:"jobTitle"`
	BirthDate         string `json:"birthDate"`
	MaritalStatus     string `json:"maritalStatus"`
	Gender            string `json:"gender"`
	HireDate          string `json:"hireDate"`
	SalariedFlag      bool   `json:"salariedFlag"`
}

// SalesRoleRequest is present only for sales people.
type SalesRoleRequest struct {
	TerritoryID   *int             `json:"territoryId"`
	SalesQuota    *decimal.Decimal `json:"salesQuota"`
	Bonus         decimal.Decimal  `json:"bonus"`
	CommissionPct decimal.Decimal  `json:"commissionPct"`
}

type PhoneRequest struct {
	PhoneNumber       string `json:"phoneNumber"`
	PhoneNumberTypeID int    `json:"phoneNumberTypeId"`
}

type EmailRequest struct {
	Address string `json:"address"`
}

type AddressRequest struct {
	AddressLine1    string `json:"addressLine1"`
	AddressLine2    string `json:"addressLine2"`
	City            string `json:"city"`
	StateProvinceID int    `json:"stateProvinceId"`
	PostalCode      string `json:"postalCode"`
}

// CreateStaffRequest payload for POST /staff.
type CreateStaffRequest struct {
	Person        PersonRequest     `json:"person"`
	Employment    EmploymentRequest `json:"employment"`
	SalesRole     *SalesRoleRequest `json:"salesRole"`
	Phone         PhoneRequest      `json:"phone"`
	Email         EmailRequest      `json:"email"`
	Address       AddressRequest    `json:"address"`
	AddressTypeID int               `json:"addressTypeId"`
	AsOf          string            `json:"asOf"`
}

// PersonPatchRequest lists mutable person fields; omitted fields are kept.
type PersonPatchRequest struct {
	Title          *string `json:"title"`
	FirstName      *string `json:"firstName"`
	MiddleName     *string `json:"middleName"`
	LastName       *string `json:"lastName"`
	Suffix         *string `json:"suffix"`
	NameStyle      *bool   `json:"nameStyle"`
	EmailPromotion *int    `json:"emailPromotion"`
}

// EmploymentPatchRequest also accepts the immutable fields so that unchanged
// round-tripped values pass.
type EmploymentPatchRequest struct {
	JobTitle          *string `json:"jobTitle"`
	MaritalStatus     *string `json:"maritalStatus"`
	Gender            *string `json:"gender"`
	SalariedFlag      *bool   `json:"salariedFlag"`
	OrganizationLevel *int    `json:"organizationLevel"`
	VacationHours     *int    `json:"vacationHours"`
	SickLeaveHours    *int    `json:"sickLeaveHours"`
	NationalIDNumber  *string `json:"nationalIdNumber"`
	LoginID           *string `json:"loginId"`
	BirthDate         *string `json:"birthDate"`
	HireDate          *string `json:"hireDate"`
}

type SalesRolePatchRequest struct {
	TerritoryID   *int             `json:"territoryId"`
	SalesQuota    *decimal.Decimal `json:"salesQuota"`
	Bonus         *decimal.Decimal `json:"bonus"`
	CommissionPct *decimal.Decimal `json:"commissionPct"`
}

// UpdateStaffRequest payload for PUT /staff/:id.
type UpdateStaffRequest struct {
	Person     PersonPatchRequest     `json:"person"`
	Employment EmploymentPatchRequest `json:"employment"`
	SalesRole  *SalesRolePatchRequest `json:"salesRole"`
	AsOf       string                 `json:"asOf"`
}

// AddressPatchRequest payload for PUT /staff/:id/address.
type AddressPatchRequest struct {
	AddressLine1    *string `json:"addressLine1"`
	AddressLine2    *string `json:"addressLine2"`
	City            *string `json:"city"`
	StateProvinceID *int    `json:"stateProvinceId"`
	PostalCode      *string `json:"postalCode"`
}

// StaffResponse is the read model of an aggregate.
type StaffResponse struct {
	ID           int                  `json:"id"`
	RowGUID      string               `json:"rowguid"`
	ModifiedDate time.Time            `json:"modifiedDate"`
	Person       PersonResponse       `json:"person"`
	Employment   EmploymentResponse   `json:"employment"`
	SalesRole    *SalesRoleResponse   `json:"salesRole,omitempty"`
	Phones       []PhoneRequest       `json:"phones"`
	Emails       []string             `json:"emails"`
	Addresses    []AddressResponse    `json:"addresses"`
	Assignments  []AssignmentResponse `json:"assignments"`
	PayHistory   []PayResponse        `json:"payHistory"`
}

type PersonResponse struct {
	PersonType     string `json:"personType"`
	Title          string `json:"title,omitempty"`
	FirstName      string `json:"firstName"`
	MiddleName     string `json:"middleName,omitempty"`
	LastName       string `json:"lastName"`
	Suffix         string `json:"suffix,omitempty"`
	FullName       string `json:"fullName"`
	NameStyle      bool   `json:"nameStyle"`
	EmailPromotion int    `json:"emailPromotion"`
}

type EmploymentResponse struct {
	NationalIDNumber  string `json:"nationalIdNumber"`
	LoginID           string `json:"loginId"`
	OrganizationLevel *int   `json:"organizationLevel,omitempty"`
	JobTitle          string `json:"jobTitle"`
	BirthDate         string `json:"birthDate"`
	MaritalStatus     string `json:"maritalStatus"`
	Gender            string `json:"gender"`
	HireDate          string `json:"hireDate"`
	SalariedFlag      bool   `json:"salariedFlag"`
	VacationHours     int    `json:"vacationHours"`
	SickLeaveHours    int    `json:"sickLeaveHours"`
	CurrentFlag       bool   `json:"currentFlag"`
	ManagerID         *int   `json:"managerId,omitempty"`
	Version           int    `json:"version"`
}

type SalesRoleResponse struct {
	TerritoryID   *int             `json:"territoryId,omitempty"`
	SalesQuota    *decimal.Decimal `json:"salesQuota,omitempty"`
	Bonus         decimal.Decimal  `json:"bonus"`
	CommissionPct decimal.Decimal  `json:"commissionPct"`
	SalesYTD      decimal.Decimal  `json:"salesYtd"`
	SalesLastYear decimal.Decimal  `json:"salesLastYear"`
}

type AddressResponse struct {
	AddressID     int `json:"addressId"`
	AddressTypeID int `json:"addressTypeId,omitempty"`
	AddressRequest
}

type AssignmentResponse struct {
	DepartmentID int     `json:"departmentId"`
	ShiftID      int     `json:"shiftId"`
	StartDate    string  `json:"startDate"`
	EndDate      *string `json:"endDate"`
}

type PayResponse struct {
	RateChangeDate string          `json:"rateChangeDate"`
	Rate           decimal.Decimal `json:"rate"`
	PayFrequency   string          `json:"payFrequency"`
}
