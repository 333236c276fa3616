package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/repository"
)

// GetLifecycleStatus assembles the read-only lifecycle summary of an employee
// as of the service clock.
func (s *LifecycleService) GetLifecycleStatus(ctx context.Context, id int) (*domain.LifecycleStatus, error) {
	snap, err := s.loadSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	today := domain.DateOf(s.clock.now())
	emp := snap.employee

	status := &domain.LifecycleStatus{
		EmployeeID:     id,
		FullName:       snap.person.FullName(),
		Status:         domain.DeriveStatus(emp, snap.assignments),
		VacationHours:  emp.VacationHours,
		SickLeaveHours: emp.SickLeaveHours,
		ManagerID:      emp.ManagerID,
		DaysEmployed:   daysEmployed(snap.assignments, today),
	}
	if n := len(snap.assignments); n > 1 {
		status.RehireCount = n - 1
	}
	if status.Status != domain.StatusProspective {
		hire := domain.DateOf(emp.HireDate)
		status.HireDate = &hire
	}
	if current, ok := domain.CurrentPay(snap.pay); ok {
		status.CurrentPay = &current
	}

	if n := len(snap.assignments); n > 0 {
		latest := snap.assignments[n-1]
		start := domain.DateOf(latest.StartDate)
		status.CurrentPeriodStart = &start
		if err := s.resolvePlacement(ctx, status, latest); err != nil {
			return nil, err
		}
	}

	if status.Status == domain.StatusTerminated {
		if last, ok := domain.LatestClosed(snap.assignments); ok {
			end := domain.DateOf(*last.EndDate)
			eligibleFrom := end.AddDate(0, 0, s.policy.RehireCoolingOffDays)
			status.TerminationDate = &end
			status.RehireEligibleFrom = &eligibleFrom
			status.RehireEligible = !today.Before(eligibleFrom)
		}
	}
	return status, nil
}

func (s *LifecycleService) resolvePlacement(ctx context.Context, status *domain.LifecycleStatus, a domain.DepartmentAssignment) error {
	lookups := s.store.Lookups()
	dept, err := lookups.GetDepartment(ctx, a.DepartmentID)
	switch {
	case err == nil:
		status.CurrentDepartment = dept
	case !errors.Is(err, repository.ErrNotFound):
		return storeError(err)
	}
	shift, err := lookups.GetShift(ctx, a.ShiftID)
	switch {
	case err == nil:
		status.CurrentShift = shift
	case !errors.Is(err, repository.ErrNotFound):
		return storeError(err)
	}
	return nil
}

// daysEmployed sums the elapsed days of every interval up to today. Intervals
// that start in the future contribute nothing.
func daysEmployed(assignments []domain.DepartmentAssignment, today time.Time) int {
	total := 0
	for _, a := range assignments {
		end := today
		if a.EndDate != nil && a.EndDate.Before(today) {
			end = domain.DateOf(*a.EndDate)
		}
		if days := domain.DaysBetween(a.StartDate, end); days > 0 {
			total += days
		}
	}
	return total
}
