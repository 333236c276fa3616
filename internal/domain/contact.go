package domain

import (
	"time"

	"github.com/google/uuid"
)

// Phone is a person phone channel.
type Phone struct {
	BusinessEntityID  int
	PhoneNumber       string
	PhoneNumberTypeID int
	ModifiedDate      time.Time
}

// EmailAddress is a person email channel.
type EmailAddress struct {
	BusinessEntityID int
	EmailAddressID   int
	Address          string
	RowGUID          uuid.UUID
	ModifiedDate     time.Time
}

// Address is a postal address row; it is tied to an identity through AddressLink.
type Address struct {
	AddressID       int
	AddressLine1    string
	AddressLine2    string
	City            string
	StateProvinceID int
	PostalCode      string
	RowGUID         uuid.UUID
	ModifiedDate    time.Time
}

// AddressLink binds an address to an identity under an address type.
type AddressLink struct {
	BusinessEntityID int
	AddressID        int
	AddressTypeID    int
	RowGUID          uuid.UUID
	ModifiedDate     time.Time
}
