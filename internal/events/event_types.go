package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/staff-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffCreated       EventType = "staff_created"
	EventStaffUpdated       EventType = "staff_updated"
	EventEmployeeHired      EventType = "employee_hired"
	EventEmployeeTerminated EventType = "employee_terminated"
	EventEmployeeRehired    EventType = "employee_rehired"
)

// Event represents a domain event emitted by services after commit.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	EmployeeID int       `json:"employee_id"`
	Timestamp  time.Time `json:"timestamp"`
	Payload    any       `json:"payload"`
}

// NewEvent stamps an event with a fresh id.
func NewEvent(eventType EventType, employeeID int, at time.Time, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EmployeeID: employeeID,
		Timestamp:  at,
		Payload:    payload,
	}
}

// StaffCreatedPayload payload.
type StaffCreatedPayload struct {
	FullName      string `json:"full_name"`
	LoginID       string `json:"login_id"`
	IsSalesPerson bool   `json:"is_sales_person"`
}

// StaffUpdatedPayload payload.
type StaffUpdatedPayload struct {
	Fields []string `json:"fields"`
}

// EmployeeHiredPayload is shared by hire and rehire.
type EmployeeHiredPayload struct {
	DepartmentID     int                 `json:"department_id"`
	ShiftID          int                 `json:"shift_id"`
	EffectiveDate    time.Time           `json:"effective_date"`
	PayRate          decimal.Decimal     `json:"pay_rate"`
	PayFrequency     domain.PayFrequency `json:"pay_frequency"`
	RestoreSeniority bool                `json:"restore_seniority,omitempty"`
}

// EmployeeTerminatedPayload payload.
type EmployeeTerminatedPayload struct {
	TerminationDate   time.Time              `json:"termination_date"`
	Type              domain.TerminationType `json:"termination_type"`
	Reason            string                 `json:"reason"`
	PayoutVacationHrs int                    `json:"payout_vacation_hours"`
	PayoutSickHrs     int                    `json:"payout_sick_hours"`
	PayoutAmount      decimal.Decimal        `json:"payout_amount"`
}
