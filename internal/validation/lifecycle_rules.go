package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spec-kit/staff-service/internal/config"
	"github.com/spec-kit/staff-service/internal/domain"
)

// ValidateHire checks the transition preconditions that need no lookups.
func ValidateHire(c *Collector, policy config.Policy, now time.Time, emp domain.Employee, assignments []domain.DepartmentAssignment, cmd domain.HireCommand) {
	if len(assignments) > 0 {
		c.Add(RuleAlreadyHired, "employeeId", "employee has already been hired; use rehire for a terminated employee")
	}
	if cmd.HireDate.IsZero() {
		c.Add(RuleHireDateRequired, "hireDate", "hire date is required")
	} else {
		ValidateHireDateHorizon(c, policy, now, cmd.HireDate, "hireDate")
		if !emp.BirthDate.IsZero() {
			ValidateMinimumAge(c, policy, emp.BirthDate, cmd.HireDate, "hireDate")
		}
	}
	ValidatePay(c, policy, cmd.PayRate, cmd.PayFrequency)
	ValidatePTO(c, policy, cmd.VacationHours, cmd.SickHours, "vacationHours", "sickHours")
	if cmd.ManagerID != nil && *cmd.ManagerID == emp.BusinessEntityID {
		c.Add(RuleManagerSelf, "managerId", "an employee cannot be their own manager")
	}
}

// ValidateManager checks a resolved manager record; nil means it does not exist.
func ValidateManager(c *Collector, manager *domain.Employee, assignments []domain.DepartmentAssignment) {
	if manager == nil {
		c.Add(RuleManagerNotFound, "managerId", "manager does not exist")
		return
	}
	if domain.DeriveStatus(*manager, assignments) != domain.StatusActive {
		c.Add(RuleManagerNotActive, "managerId", "manager is not an active employee")
	}
}

// ValidateTerminate checks the termination preconditions.
func ValidateTerminate(c *Collector, policy config.Policy, now time.Time, emp domain.Employee, assignments []domain.DepartmentAssignment, cmd domain.TerminateCommand) {
	open := domain.OpenAssignments(assignments)
	if domain.DeriveStatus(emp, assignments) != domain.StatusActive || len(open) != 1 {
		c.Add(RuleNotActive, "employeeId", "employee is not currently active")
	}

	if cmd.TerminationDate.IsZero() {
		c.Add(RuleTerminationDate, "terminationDate", "termination date is required")
	} else {
		limit := domain.DateOf(now).AddDate(0, 0, policy.TerminationMaxFutureDays)
		if domain.DateOf(cmd.TerminationDate).After(limit) {
			c.Addf(RuleTerminationFuture, "terminationDate", "termination date must be within %d days from today", policy.TerminationMaxFutureDays)
		}
		if len(open) == 1 && domain.DateOf(cmd.TerminationDate).Before(domain.DateOf(open[0].StartDate)) {
			c.Add(RuleTerminationBefore, "terminationDate", "termination date precedes the current assignment start")
		}
	}

	if strings.TrimSpace(cmd.Reason) == "" {
		c.Add(RuleTerminationReason, "reason", "termination reason is required")
	} else if utf8.RuneCountInString(cmd.Reason) > policy.TerminationReasonMaxChars {
		c.Addf(RuleTerminationReasonSz, "reason", "termination reason must be at most %d characters", policy.TerminationReasonMaxChars)
	}
	if !cmd.Type.Valid() {
		c.Add(RuleTerminationType, "terminationType", "termination type must be Voluntary, Involuntary, Retirement or Layoff")
	}
}

// ValidateRehire checks the rehire preconditions including the cooling-off period.
func ValidateRehire(c *Collector, policy config.Policy, now time.Time, emp domain.Employee, assignments []domain.DepartmentAssignment, cmd domain.RehireCommand) {
	if domain.DeriveStatus(emp, assignments) != domain.StatusTerminated {
		c.Add(RuleNotTerminated, "employeeId", "only a terminated employee can be rehired")
	}

	if cmd.RehireDate.IsZero() {
		c.Add(RuleRehireDate, "rehireDate", "rehire date is required")
	} else {
		rehire := domain.DateOf(cmd.RehireDate)
		if rehire.Before(domain.DateOf(now)) {
			c.Add(RuleRehireDateInPast, "rehireDate", "rehire date must not be in the past")
		}
		if last, ok := domain.LatestClosed(assignments); ok {
			eligible := domain.DateOf(*last.EndDate).AddDate(0, 0, policy.RehireCoolingOffDays)
			if rehire.Before(eligible) {
				c.Addf(RuleRehireCoolingOff, "rehireDate", "rehire date must be on or after %s", eligible.Format(time.DateOnly))
			}
		}
	}
	ValidatePay(c, policy, cmd.PayRate, cmd.PayFrequency)
}
