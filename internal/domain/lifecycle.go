package domain

import "time"

// EmploymentStatus is the derived lifecycle state of an employee.
type EmploymentStatus string

const (
	StatusProspective EmploymentStatus = "Prospective"
	StatusActive      EmploymentStatus = "Active"
	StatusTerminated  EmploymentStatus = "Terminated"
)

// TerminationType enumerates the accepted termination categories.
type TerminationType string

const (
	TerminationVoluntary   TerminationType = "Voluntary"
	TerminationInvoluntary TerminationType = "Involuntary"
	TerminationRetirement  TerminationType = "Retirement"
	TerminationLayoff      TerminationType = "Layoff"
)

func (t TerminationType) Valid() bool {
	switch t {
	case TerminationVoluntary, TerminationInvoluntary, TerminationRetirement, TerminationLayoff:
		return true
	}
	return false
}

// LifecycleTransition captures what changed in a history entry.
type LifecycleTransition string

const (
	TransitionHire      LifecycleTransition = "HIRE"
	TransitionTerminate LifecycleTransition = "TERMINATE"
	TransitionRehire    LifecycleTransition = "REHIRE"
)

// LifecycleHistory is an immutable audit entry written with each transition.
type LifecycleHistory struct {
	ID               int64
	BusinessEntityID int
	Transition       LifecycleTransition
	EffectiveDate    time.Time
	Details          map[string]any
	CreatedAt        time.Time
}

// DeriveStatus classifies an employee from its flag and assignment intervals.
func DeriveStatus(emp Employee, assignments []DepartmentAssignment) EmploymentStatus {
	if len(assignments) == 0 {
		return StatusProspective
	}
	if emp.CurrentFlag && len(OpenAssignments(assignments)) > 0 {
		return StatusActive
	}
	return StatusTerminated
}
