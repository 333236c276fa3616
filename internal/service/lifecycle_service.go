package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-service/internal/config"
	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/events"
	"github.com/spec-kit/staff-service/internal/repository"
	"github.com/spec-kit/staff-service/internal/validation"
	apperrors "github.com/spec-kit/staff-service/pkg/util/errorutil"
)

// LifecycleService drives employees through hire, termination and rehire.
type LifecycleService struct {
	store      repository.Store
	locker     EmployeeLocker
	policy     config.Policy
	dispatcher events.Dispatcher
	logger     *zap.Logger
	clock      Clock
}

// LifecycleDependencies bundles collaborators of LifecycleService.
type LifecycleDependencies struct {
	Store      repository.Store
	Locker     EmployeeLocker
	Policy     config.Policy
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Clock      Clock
}

// NewLifecycleService creates the service.
func NewLifecycleService(deps LifecycleDependencies) *LifecycleService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	locker := deps.Locker
	if locker == nil {
		locker = NoopLocker{}
	}
	return &LifecycleService{
		store:      deps.Store,
		locker:     locker,
		policy:     deps.Policy,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		clock:      deps.Clock,
	}
}

type employeeSnapshot struct {
	person      domain.Person
	employee    domain.Employee
	assignments []domain.DepartmentAssignment
	pay         []domain.PayHistoryEntry
}

func (s *LifecycleService) loadSnapshot(ctx context.Context, id int) (*employeeSnapshot, error) {
	repos := s.store.Repositories()
	emp, err := repos.Employees.GetByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "employee", id)
	}
	person, err := repos.Persons.GetByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "employee", id)
	}
	assignments, err := repos.Assignments.ListByEmployee(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	pay, err := repos.PayHistory.ListByEmployee(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	domain.SortAssignments(assignments)
	return &employeeSnapshot{person: *person, employee: *emp, assignments: assignments, pay: pay}, nil
}

func (s *LifecycleService) lock(ctx context.Context, id int) (func(), error) {
	release, err := s.locker.Acquire(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return func() {
		if err := release(); err != nil {
			s.logger.Warn("release lifecycle lock", zap.Int("employee_id", id), zap.Error(err))
		}
	}, nil
}

// guardOpenIntervals re-reads the open interval count inside the transaction.
func guardOpenIntervals(ctx context.Context, repos repository.Repositories, id, want int) error {
	n, err := repos.Assignments.CountOpen(ctx, id)
	if err != nil {
		return err
	}
	if n != want {
		return apperrors.NewConflict("department assignment changed concurrently", map[string]any{
			"employee_id":    id,
			"open_intervals": n,
			"expected":       want,
		})
	}
	return nil
}

func (s *LifecycleService) checkPlacement(ctx context.Context, c *validation.Collector, departmentID, shiftID int) error {
	violations, err := validation.CheckLookups(ctx, s.store.Lookups(), []validation.LookupCheck{
		{Kind: domain.LookupDepartment, ID: departmentID, Field: "departmentId"},
		{Kind: domain.LookupShift, ID: shiftID, Field: "shiftId"},
	})
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	c.Extend(violations)
	return nil
}

func (s *LifecycleService) checkManager(ctx context.Context, c *validation.Collector, managerID int) error {
	repos := s.store.Repositories()
	manager, err := repos.Employees.GetByID(ctx, managerID)
	if errors.Is(err, repository.ErrNotFound) {
		validation.ValidateManager(c, nil, nil)
		return nil
	}
	if err != nil {
		return storeError(err)
	}
	assignments, err := repos.Assignments.ListByEmployee(ctx, managerID)
	if err != nil {
		return storeError(err)
	}
	validation.ValidateManager(c, manager, assignments)
	return nil
}

// Hire activates a prospective employee: it opens the first department
// interval, records the starting pay and seeds the PTO balances.
func (s *LifecycleService) Hire(ctx context.Context, id int, cmd domain.HireCommand) error {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	now := s.clock.now()
	snap, err := s.loadSnapshot(ctx, id)
	if err != nil {
		return err
	}

	var c validation.Collector
	validation.ValidateHire(&c, s.policy, now, snap.employee, snap.assignments, cmd)
	if err := s.checkPlacement(ctx, &c, cmd.DepartmentID, cmd.ShiftID); err != nil {
		return err
	}
	if cmd.ManagerID != nil && *cmd.ManagerID != id {
		if err := s.checkManager(ctx, &c, *cmd.ManagerID); err != nil {
			return err
		}
	}
	if err := c.Err(); err != nil {
		return err
	}

	hireDate := domain.DateOf(cmd.HireDate)
	emp := snap.employee
	emp.CurrentFlag = true
	emp.HireDate = hireDate
	emp.VacationHours = cmd.VacationHours
	emp.SickLeaveHours = cmd.SickHours
	emp.ManagerID = cmd.ManagerID
	emp.ModifiedDate = now

	details := map[string]any{
		"department_id":  cmd.DepartmentID,
		"shift_id":       cmd.ShiftID,
		"pay_rate":       cmd.PayRate.StringFixed(2),
		"pay_frequency":  cmd.PayFrequency.String(),
		"vacation_hours": cmd.VacationHours,
		"sick_hours":     cmd.SickHours,
	}
	if cmd.ManagerID != nil {
		details["manager_id"] = *cmd.ManagerID
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := guardOpenIntervals(ctx, repos, id, 0); err != nil {
			return err
		}
		if err := repos.Employees.Update(ctx, &emp); err != nil {
			return err
		}
		if err := repos.Assignments.Open(ctx, &domain.DepartmentAssignment{
			BusinessEntityID: id,
			DepartmentID:     cmd.DepartmentID,
			ShiftID:          cmd.ShiftID,
			StartDate:        hireDate,
			ModifiedDate:     now,
		}); err != nil {
			return err
		}
		if err := repos.PayHistory.Append(ctx, &domain.PayHistoryEntry{
			BusinessEntityID: id,
			RateChangeDate:   hireDate,
			Rate:             cmd.PayRate,
			PayFrequency:     cmd.PayFrequency,
			ModifiedDate:     now,
		}); err != nil {
			return err
		}
		if err := s.recordTransition(ctx, repos, id, domain.TransitionHire, hireDate, details); err != nil {
			return err
		}
		return repos.Identities.Touch(ctx, id, now)
	})
	if err != nil {
		return storeError(err)
	}

	s.logger.Info("employee hired",
		zap.Int("employee_id", id),
		zap.Int("department_id", cmd.DepartmentID),
		zap.Int("shift_id", cmd.ShiftID))
	s.publish(ctx, events.NewEvent(events.EventEmployeeHired, id, now, events.EmployeeHiredPayload{
		DepartmentID:  cmd.DepartmentID,
		ShiftID:       cmd.ShiftID,
		EffectiveDate: hireDate,
		PayRate:       cmd.PayRate,
		PayFrequency:  cmd.PayFrequency,
	}))
	return nil
}

// Terminate closes the open department interval and clears CurrentFlag. When
// PTO payout applies the balances are zeroed and the payout is reported.
func (s *LifecycleService) Terminate(ctx context.Context, id int, cmd domain.TerminateCommand) (*domain.TerminationResult, error) {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	now := s.clock.now()
	snap, err := s.loadSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}

	var c validation.Collector
	validation.ValidateTerminate(&c, s.policy, now, snap.employee, snap.assignments, cmd)
	if err := c.Err(); err != nil {
		return nil, err
	}

	terminationDate := domain.DateOf(cmd.TerminationDate)
	payout := cmd.PayoutPto == nil || *cmd.PayoutPto
	result := &domain.TerminationResult{
		EmployeeID:      id,
		TerminationDate: terminationDate,
		PayoutApplied:   payout,
		PayoutAmount:    decimal.Zero,
	}

	emp := snap.employee
	emp.CurrentFlag = false
	emp.ModifiedDate = now
	if payout {
		result.PayoutVacationHours = emp.VacationHours
		result.PayoutSickHours = emp.SickLeaveHours
		if current, ok := domain.CurrentPay(snap.pay); ok {
			result.PayoutAmount = current.Rate.Mul(decimal.NewFromInt(int64(emp.VacationHours))).Round(2)
		}
		emp.VacationHours = 0
		emp.SickLeaveHours = 0
	}

	details := map[string]any{
		"termination_type":      string(cmd.Type),
		"reason":                cmd.Reason,
		"payout_applied":        payout,
		"payout_vacation_hours": result.PayoutVacationHours,
		"payout_sick_hours":     result.PayoutSickHours,
		"payout_amount":         result.PayoutAmount.StringFixed(2),
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := guardOpenIntervals(ctx, repos, id, 1); err != nil {
			return err
		}
		if err := repos.Employees.Update(ctx, &emp); err != nil {
			return err
		}
		if err := repos.Assignments.CloseOpen(ctx, id, terminationDate, now); err != nil {
			return err
		}
		if err := s.recordTransition(ctx, repos, id, domain.TransitionTerminate, terminationDate, details); err != nil {
			return err
		}
		return repos.Identities.Touch(ctx, id, now)
	})
	if err != nil {
		return nil, storeError(err)
	}

	s.logger.Info("employee terminated",
		zap.Int("employee_id", id),
		zap.String("termination_type", string(cmd.Type)),
		zap.Bool("pto_payout", payout))
	s.publish(ctx, events.NewEvent(events.EventEmployeeTerminated, id, now, events.EmployeeTerminatedPayload{
		TerminationDate:   terminationDate,
		Type:              cmd.Type,
		Reason:            cmd.Reason,
		PayoutVacationHrs: result.PayoutVacationHours,
		PayoutSickHrs:     result.PayoutSickHours,
		PayoutAmount:      result.PayoutAmount,
	}))
	return result, nil
}

// Rehire starts a new employment period for a terminated employee once the
// cooling-off period has elapsed.
func (s *LifecycleService) Rehire(ctx context.Context, id int, cmd domain.RehireCommand) error {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	now := s.clock.now()
	snap, err := s.loadSnapshot(ctx, id)
	if err != nil {
		return err
	}

	var c validation.Collector
	validation.ValidateRehire(&c, s.policy, now, snap.employee, snap.assignments, cmd)
	if err := s.checkPlacement(ctx, &c, cmd.DepartmentID, cmd.ShiftID); err != nil {
		return err
	}
	if err := c.Err(); err != nil {
		return err
	}

	rehireDate := domain.DateOf(cmd.RehireDate)
	emp := snap.employee
	emp.CurrentFlag = true
	emp.ModifiedDate = now
	if !cmd.RestoreSeniority {
		emp.VacationHours = s.policy.NewHireVacationHours
		emp.SickLeaveHours = s.policy.NewHireSickHours
	}

	details := map[string]any{
		"department_id":     cmd.DepartmentID,
		"shift_id":          cmd.ShiftID,
		"pay_rate":          cmd.PayRate.StringFixed(2),
		"pay_frequency":     cmd.PayFrequency.String(),
		"restore_seniority": cmd.RestoreSeniority,
		"vacation_hours":    emp.VacationHours,
		"sick_hours":        emp.SickLeaveHours,
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := guardOpenIntervals(ctx, repos, id, 0); err != nil {
			return err
		}
		if err := repos.Employees.Update(ctx, &emp); err != nil {
			return err
		}
		if err := repos.Assignments.Open(ctx, &domain.DepartmentAssignment{
			BusinessEntityID: id,
			DepartmentID:     cmd.DepartmentID,
			ShiftID:          cmd.ShiftID,
			StartDate:        rehireDate,
			ModifiedDate:     now,
		}); err != nil {
			return err
		}
		if err := repos.PayHistory.Append(ctx, &domain.PayHistoryEntry{
			BusinessEntityID: id,
			RateChangeDate:   rehireDate,
			Rate:             cmd.PayRate,
			PayFrequency:     cmd.PayFrequency,
			ModifiedDate:     now,
		}); err != nil {
			return err
		}
		if err := s.recordTransition(ctx, repos, id, domain.TransitionRehire, rehireDate, details); err != nil {
			return err
		}
		return repos.Identities.Touch(ctx, id, now)
	})
	if err != nil {
		return storeError(err)
	}

	s.logger.Info("employee rehired",
		zap.Int("employee_id", id),
		zap.Int("department_id", cmd.DepartmentID),
		zap.Bool("restore_seniority", cmd.RestoreSeniority))
	s.publish(ctx, events.NewEvent(events.EventEmployeeRehired, id, now, events.EmployeeHiredPayload{
		DepartmentID:     cmd.DepartmentID,
		ShiftID:          cmd.ShiftID,
		EffectiveDate:    rehireDate,
		PayRate:          cmd.PayRate,
		PayFrequency:     cmd.PayFrequency,
		RestoreSeniority: cmd.RestoreSeniority,
	}))
	return nil
}

// History lists the recorded transitions of an employee, oldest first.
func (s *LifecycleService) History(ctx context.Context, id int) ([]domain.LifecycleHistory, error) {
	repos := s.store.Repositories()
	if _, err := repos.Employees.GetByID(ctx, id); err != nil {
		return nil, loadError(err, "employee", id)
	}
	history, err := repos.History.ListByEmployee(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return history, nil
}

func (s *LifecycleService) recordTransition(ctx context.Context, repos repository.Repositories, id int, transition domain.LifecycleTransition, effective time.Time, details map[string]any) error {
	return repos.History.Create(ctx, &domain.LifecycleHistory{
		BusinessEntityID: id,
		Transition:       transition,
		EffectiveDate:    effective,
		Details:          details,
	})
}

func (s *LifecycleService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed",
			zap.String("event_type", string(event.Type)),
			zap.Int("employee_id", event.EmployeeID),
			zap.Error(err))
	}
}
