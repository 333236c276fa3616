package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LifecycleStatus is the point-in-time summary of an employee.
type LifecycleStatus struct {
	EmployeeID         int
	FullName           string
	Status             EmploymentStatus
	HireDate           *time.Time
	CurrentPeriodStart *time.Time
	TerminationDate    *time.Time
	DaysEmployed       int
	CurrentDepartment  *Department
	CurrentShift       *Shift
	CurrentPay         *PayHistoryEntry
	VacationHours      int
	SickLeaveHours     int
	ManagerID          *int
	RehireEligible     bool
	RehireEligibleFrom *time.Time
	RehireCount        int
}

// TerminationResult reports the paid-out PTO of a termination. The payout is
// not persisted as a ledger; it is echoed to the caller and kept in history.
type TerminationResult struct {
	EmployeeID          int
	TerminationDate     time.Time
	PayoutApplied       bool
	PayoutVacationHours int
	PayoutSickHours     int
	PayoutAmount        decimal.Decimal
}
