package memory

import "github.com/spec-kit/staff-service/internal/domain"

// ReferenceData is the read-only lookup content a Store is seeded with.
type ReferenceData struct {
	Departments      []domain.Department
	Shifts           []domain.Shift
	AddressTypes     map[int]string
	PhoneNumberTypes map[int]string
	StateProvinces   map[int]string
}

// DefaultReferenceData mirrors the rows seeded by the SQL migrations.
func DefaultReferenceData() ReferenceData {
	return ReferenceData{
		Departments: []domain.Department{
			{ID: 1, Name: "Engineering", GroupName: "Research and Development"},
			{ID: 2, Name: "Tool Design", GroupName: "Research and Development"},
			{ID: 3, Name: "Sales", GroupName: "Sales and Marketing"},
			{ID: 4, Name: "Marketing", GroupName: "Sales and Marketing"},
			{ID: 5, Name: "Purchasing", GroupName: "Inventory Management"},
			{ID: 6, Name: "Research and Development", GroupName: "Research and Development"},
			{ID: 7, Name: "Production", GroupName: "Manufacturing"},
			{ID: 8, Name: "Production Control", GroupName: "Manufacturing"},
			{ID: 9, Name: "Human Resources", GroupName: "Executive General and Administration"},
			{ID: 10, Name: "Finance", GroupName: "Executive General and Administration"},
			{ID: 11, Name: "Information Services", GroupName: "Executive General and Administration"},
			{ID: 12, Name: "Document Control", GroupName: "Quality Assurance"},
			{ID: 13, Name: "Quality Assurance", GroupName: "Quality Assurance"},
			{ID: 14, Name: "Facilities and Maintenance", GroupName: "Executive General and Administration"},
			{ID: 15, Name: "Shipping and Receiving", GroupName: "Inventory Management"},
			{ID: 16, Name: "Executive", GroupName: "Executive General and Administration"},
		},
		Shifts: []domain.Shift{
			{ID: 1, Name: "Day", StartTime: "07:00", EndTime: "15:00"},
			{ID: 2, Name: "Evening", StartTime: "15:00", EndTime: "23:00"},
			{ID: 3, Name: "Night", StartTime: "23:00", EndTime: "07:00"},
		},
		AddressTypes: map[int]string{
			1: "Billing", 2: "Home", 3: "Main Office", 4: "Primary", 5: "Shipping", 6: "Archive",
		},
		PhoneNumberTypes: map[int]string{
			1: "Cell", 2: "Home", 3: "Work",
		},
		StateProvinces: map[int]string{
			1: "Alberta", 9: "California", 58: "Oregon", 79: "Washington",
		},
	}
}
