package domain

// StaffMember is the full aggregate of one staff identity.
type StaffMember struct {
	Identity    Identity
	Person      Person
	Employee    Employee
	SalesPerson *SalesPerson
	Phones      []Phone
	Emails      []EmailAddress
	Addresses   []LinkedAddress
	Assignments []DepartmentAssignment
	PayHistory  []PayHistoryEntry
}

// LinkedAddress pairs an address row with the link that owns it.
type LinkedAddress struct {
	Link    AddressLink
	Address Address
}

// IsSalesPerson reports whether the staff member carries a sales role.
func (s *StaffMember) IsSalesPerson() bool {
	return s.SalesPerson != nil
}
