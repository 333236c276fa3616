package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HireRequest payload for POST /employees/:id/hire.
type HireRequest struct {
	DepartmentID  int             `json:"departmentId"`
	ShiftID       int             `json:"shiftId"`
	HireDate      string          `json:"hireDate"`
	PayRate       decimal.Decimal `json:"payRate"`
	PayFrequency  string          `json:"payFrequency"`
	VacationHours int             `json:"vacationHours"`
	SickHours     int             `json:"sickHours"`
	ManagerID     *int            `json:"managerId"`
}

// TerminateRequest payload for POST /employees/:id/terminate.
type TerminateRequest struct {
	TerminationDate string `json:"terminationDate"`
	Reason          string `json:"reason"`
	TerminationType string `json:"terminationType"`
	PayoutPto       *bool  `json:"payoutPto"`
}

// RehireRequest payload for POST /employees/:id/rehire.
type RehireRequest struct {
	DepartmentID     int             `json:"departmentId"`
	ShiftID          int             `json:"shiftId"`
	RehireDate       string          `json:"rehireDate"`
	PayRate          decimal.Decimal `json:"payRate"`
	PayFrequency     string          `json:"payFrequency"`
	RestoreSeniority bool            `json:"restoreSeniority"`
}

type DepartmentResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	GroupName string `json:"groupName"`
}

type ShiftResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// LifecycleStatusResponse is the GET /employees/:id/lifecycle body.
type LifecycleStatusResponse struct {
	EmployeeID           int                 `json:"employeeId"`
	FullName             string              `json:"fullName"`
	EmploymentStatus     string              `json:"employmentStatus"`
	HireDate             *string             `json:"hireDate"`
	CurrentPeriodStart   *string             `json:"currentPeriodStart"`
	TerminationDate      *string             `json:"terminationDate"`
	DaysEmployed         int                 `json:"daysEmployed"`
	CurrentDepartment    *DepartmentResponse `json:"currentDepartment"`
	CurrentShift         *ShiftResponse      `json:"currentShift"`
	CurrentPay           *PayResponse        `json:"currentPay"`
	VacationHoursBalance int                 `json:"vacationHoursBalance"`
	SickHoursBalance     int                 `json:"sickHoursBalance"`
	ManagerID            *int                `json:"managerId"`
	RehireEligible       bool                `json:"rehireEligible"`
	RehireEligibleFrom   *string             `json:"rehireEligibleFrom"`
	RehireCount          int                 `json:"rehireCount"`
}

// TerminationResponse reports the PTO payout of a termination.
type TerminationResponse struct {
	EmployeeID          int             `json:"employeeId"`
	TerminationDate     string          `json:"terminationDate"`
	PayoutApplied       bool            `json:"payoutApplied"`
	PayoutVacationHours int             `json:"payoutVacationHours"`
	PayoutSickHours     int             `json:"payoutSickHours"`
	PayoutAmount        decimal.Decimal `json:"payoutAmount"`
}

type LifecycleHistoryResponse struct {
	ID            int64          `json:"id"`
	Transition    string         `json:"transition"`
	EffectiveDate string         `json:"effectiveDate"`
	Details       map[string]any `json:"details"`
	CreatedAt     time.Time      `json:"createdAt"`
}
