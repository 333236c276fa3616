package validation

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/staff-service/internal/config"
	"github.com/spec-kit/staff-service/internal/domain"
	apperrors "github.com/spec-kit/staff-service/pkg/util/errorutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validEmployee() domain.Employee {
	return domain.Employee{
		BusinessEntityID: 10,
		NationalIDNumber: "295847284",
		LoginID:          `adventure-works\ken0`,
		JobTitle:         "Buyer",
		BirthDate:        date(1990, 5, 14),
		HireDate:         date(2024, 1, 8),
		MaritalStatus:    domain.MaritalStatusSingle,
		Gender:           domain.GenderMale,
	}
}

func rules(c *Collector) []string {
	var out []string
	for _, v := range c.Violations() {
		out = append(out, v.Rule)
	}
	return out
}

func hasRule(c *Collector, rule string) bool {
	for _, v := range c.Violations() {
		if v.Rule == rule {
			return true
		}
	}
	return false
}

func TestCollectorErr(t *testing.T) {
	var c Collector
	if c.Err() != nil {
		t.Fatal("expected nil error for empty collector")
	}
	c.Add(RuleGender, "employment.gender", "bad")
	c.Add(RuleMaritalStatus, "employment.maritalStatus", "bad")

	err := c.Err()
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if got := len(apperrors.ViolationsOf(err)); got != 2 {
		t.Fatalf("expected both violations reported, got %d", got)
	}
}

func TestValidateEmployeeGender(t *testing.T) {
	cases := []struct {
		gender string
		fail   bool
	}{
		{"M", false},
		{"F", false},
		{"Male", true},
		{"m", true},
		{"", true},
	}
	policy := config.DefaultPolicy()
	for _, tc := range cases {
		t.Run(tc.gender, func(t *testing.T) {
			emp := validEmployee()
			emp.Gender = tc.gender
			var c Collector
			ValidateEmployee(&c, policy, emp)
			if hasRule(&c, RuleGender) != tc.fail {
				t.Fatalf("gender %q: expected failure=%v, got rules %v", tc.gender, tc.fail, rules(&c))
			}
		})
	}
}

func TestValidateMinimumAge(t *testing.T) {
	policy := config.DefaultPolicy()
	birth := date(2000, 6, 15)

	cases := []struct {
		name string
		hire time.Time
		fail bool
	}{
		{"day before eighteenth birthday", date(2018, 6, 14), true},
		{"on eighteenth birthday", date(2018, 6, 15), false},
		{"well after", date(2030, 1, 1), false},
		{"as a child", date(2010, 1, 1), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c Collector
			ValidateMinimumAge(&c, policy, birth, tc.hire, "hireDate")
			if hasRule(&c, RuleMinimumAge) != tc.fail {
				t.Fatalf("expected failure=%v, got %v", tc.fail, rules(&c))
			}
		})
	}
}

func TestValidateEmployeeCollectsAll(t *testing.T) {
	emp := validEmployee()
	emp.Gender = "Male"
	emp.MaritalStatus = "X"
	emp.VacationHours = 241
	emp.SickLeaveHours = -1
	emp.JobTitle = ""

	var c Collector
	ValidateEmployee(&c, config.DefaultPolicy(), emp)

	for _, rule := range []string{RuleGender, RuleMaritalStatus, RuleVacationHours, RuleSickHours, RuleJobTitleRequired} {
		if !hasRule(&c, rule) {
			t.Fatalf("expected %s in %v", rule, rules(&c))
		}
	}
}

func TestValidateSalesPerson(t *testing.T) {
	negative := decimal.NewFromInt(-5)
	cases := []struct {
		name string
		sp   domain.SalesPerson
		want string
	}{
		{"commission above one", domain.SalesPerson{CommissionPct: decimal.RequireFromString("1.01")}, RuleSalesCommission},
		{"negative commission", domain.SalesPerson{CommissionPct: decimal.RequireFromString("-0.1")}, RuleSalesCommission},
		{"non-positive quota", domain.SalesPerson{SalesQuota: &negative}, RuleSalesQuota},
		{"negative bonus", domain.SalesPerson{Bonus: negative}, RuleSalesBonus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c Collector
			ValidateSalesPerson(&c, tc.sp)
			if !hasRule(&c, tc.want) {
				t.Fatalf("expected %s, got %v", tc.want, rules(&c))
			}
		})
	}

	var c Collector
	quota := decimal.NewFromInt(250000)
	ValidateSalesPerson(&c, domain.SalesPerson{CommissionPct: decimal.RequireFromString("0.015"), SalesQuota: &quota})
	if len(c.Violations()) != 0 {
		t.Fatalf("expected valid sales role, got %v", rules(&c))
	}
}

func TestValidateEmail(t *testing.T) {
	for _, addr := range []string{"ken0@adventure-works.com", "a.b@example.org"} {
		var c Collector
		ValidateEmail(&c, domain.EmailInput{Address: addr})
		if len(c.Violations()) != 0 {
			t.Fatalf("%s: unexpected %v", addr, rules(&c))
		}
	}
	for _, addr := range []string{"not-an-email", "Ken <ken@example.com>"} {
		var c Collector
		ValidateEmail(&c, domain.EmailInput{Address: addr})
		if !hasRule(&c, RuleEmailFormat) {
			t.Fatalf("%s: expected format failure, got %v", addr, rules(&c))
		}
	}
}

func TestValidatePay(t *testing.T) {
	policy := config.DefaultPolicy()
	cases := []struct {
		rate string
		freq domain.PayFrequency
		want []string
	}{
		{"25.00", domain.PayFrequencyBiWeekly, nil},
		{"500.00", domain.PayFrequencyMonthly, nil},
		{"500.01", domain.PayFrequencyMonthly, []string{RulePayRate}},
		{"0", domain.PayFrequencyMonthly, []string{RulePayRate}},
		{"10", domain.PayFrequency(3), []string{RulePayFrequency}},
	}
	for _, tc := range cases {
		var c Collector
		ValidatePay(&c, policy, decimal.RequireFromString(tc.rate), tc.freq)
		got := rules(&c)
		if strings.Join(got, ",") != strings.Join(tc.want, ",") {
			t.Fatalf("rate %s freq %d: expected %v, got %v", tc.rate, tc.freq, tc.want, got)
		}
	}
}

func TestValidateHire(t *testing.T) {
	policy := config.DefaultPolicy()
	now := date(2024, 3, 1)
	emp := validEmployee()
	cmd := domain.HireCommand{
		DepartmentID:  5,
		ShiftID:       1,
		HireDate:      now,
		PayRate:       decimal.RequireFromString("25.00"),
		PayFrequency:  domain.PayFrequencyBiWeekly,
		VacationHours: 40,
		SickHours:     24,
	}

	t.Run("valid", func(t *testing.T) {
		var c Collector
		ValidateHire(&c, policy, now, emp, nil, cmd)
		if len(c.Violations()) != 0 {
			t.Fatalf("unexpected %v", rules(&c))
		}
	})

	t.Run("too far in future", func(t *testing.T) {
		bad := cmd
		bad.HireDate = now.AddDate(0, 0, 31)
		var c Collector
		ValidateHire(&c, policy, now, emp, nil, bad)
		if !hasRule(&c, RuleHireDateFuture) {
			t.Fatalf("expected %s, got %v", RuleHireDateFuture, rules(&c))
		}
	})

	t.Run("already hired and self manager", func(t *testing.T) {
		bad := cmd
		self := emp.BusinessEntityID
		bad.ManagerID = &self
		var c Collector
		ValidateHire(&c, policy, now, emp, []domain.DepartmentAssignment{{StartDate: now}}, bad)
		if !hasRule(&c, RuleAlreadyHired) || !hasRule(&c, RuleManagerSelf) {
			t.Fatalf("expected both rules, got %v", rules(&c))
		}
	})

	t.Run("pto out of range", func(t *testing.T) {
		bad := cmd
		bad.VacationHours = 241
		bad.SickHours = 481
		var c Collector
		ValidateHire(&c, policy, now, emp, nil, bad)
		if !hasRule(&c, RuleVacationHours) || !hasRule(&c, RuleSickHours) {
			t.Fatalf("expected pto rules, got %v", rules(&c))
		}
	})
}

func TestValidateTerminate(t *testing.T) {
	policy := config.DefaultPolicy()
	now := date(2024, 3, 1)
	emp := validEmployee()
	emp.CurrentFlag = true
	open := []domain.DepartmentAssignment{{DepartmentID: 5, ShiftID: 1, StartDate: date(2024, 1, 8)}}
	cmd := domain.TerminateCommand{TerminationDate: now, Reason: "Layoff", Type: domain.TerminationLayoff}

	var c Collector
	ValidateTerminate(&c, policy, now, emp, open, cmd)
	if len(c.Violations()) != 0 {
		t.Fatalf("unexpected %v", rules(&c))
	}

	bad := domain.TerminateCommand{
		TerminationDate: date(2023, 12, 31),
		Reason:          strings.Repeat("x", 501),
		Type:            "Fired",
	}
	c = Collector{}
	ValidateTerminate(&c, policy, now, emp, open, bad)
	for _, rule := range []string{RuleTerminationBefore, RuleTerminationReasonSz, RuleTerminationType} {
		if !hasRule(&c, rule) {
			t.Fatalf("expected %s in %v", rule, rules(&c))
		}
	}

	c = Collector{}
	far := cmd
	far.TerminationDate = now.AddDate(0, 0, 91)
	ValidateTerminate(&c, policy, now, emp, open, far)
	if !hasRule(&c, RuleTerminationFuture) {
		t.Fatalf("expected %s, got %v", RuleTerminationFuture, rules(&c))
	}

	c = Collector{}
	ValidateTerminate(&c, policy, now, emp, nil, cmd)
	if !hasRule(&c, RuleNotActive) {
		t.Fatalf("expected %s for prospective employee, got %v", RuleNotActive, rules(&c))
	}
}

func TestValidateRehireCoolingOff(t *testing.T) {
	policy := config.DefaultPolicy()
	terminated := date(2024, 3, 1)
	emp := validEmployee()
	history := []domain.DepartmentAssignment{{DepartmentID: 5, ShiftID: 1, StartDate: date(2024, 1, 8), EndDate: &terminated}}

	cases := []struct {
		name  string
		day   int
		valid bool
	}{
		{"day 10", 10, false},
		{"day 89", 89, false},
		{"day 90", 90, true},
		{"day 91", 91, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rehire := terminated.AddDate(0, 0, tc.day)
			cmd := domain.RehireCommand{
				DepartmentID: 7,
				ShiftID:      2,
				RehireDate:   rehire,
				PayRate:      decimal.RequireFromString("30"),
				PayFrequency: domain.PayFrequencyMonthly,
			}
			var c Collector
			ValidateRehire(&c, policy, rehire, emp, history, cmd)
			if hasRule(&c, RuleRehireCoolingOff) == tc.valid {
				t.Fatalf("expected valid=%v, got %v", tc.valid, rules(&c))
			}
		})
	}
}

func TestValidateRehireRequiresTerminated(t *testing.T) {
	emp := validEmployee()
	emp.CurrentFlag = true
	now := date(2024, 3, 1)
	cmd := domain.RehireCommand{RehireDate: now.AddDate(0, 0, -1), PayRate: decimal.NewFromInt(10), PayFrequency: domain.PayFrequencyMonthly}

	var c Collector
	ValidateRehire(&c, config.DefaultPolicy(), now, emp, []domain.DepartmentAssignment{{StartDate: date(2024, 1, 1)}}, cmd)
	if !hasRule(&c, RuleNotTerminated) || !hasRule(&c, RuleRehireDateInPast) {
		t.Fatalf("expected not-terminated and past-date rules, got %v", rules(&c))
	}
}

type fakeLookups struct {
	known map[domain.LookupKind]map[int]bool
	err   error
	calls atomic.Int32
}

func (f *fakeLookups) Exists(_ context.Context, kind domain.LookupKind, id int) (bool, error) {
	f.calls.Add(1)
	if f.err != nil {
		return false, f.err
	}
	return f.known[kind][id], nil
}
func (f *fakeLookups) GetDepartment(context.Context, int) (*domain.Department, error) {
	return nil, errors.New("not used")
}
func (f *fakeLookups) GetShift(context.Context, int) (*domain.Shift, error) {
	return nil, errors.New("not used")
}

func TestCheckLookups(t *testing.T) {
	lookups := &fakeLookups{known: map[domain.LookupKind]map[int]bool{
		domain.LookupDepartment: {5: true},
		domain.LookupShift:      {1: true},
	}}
	checks := []LookupCheck{
		{Kind: domain.LookupDepartment, ID: 5, Field: "departmentId"},
		{Kind: domain.LookupShift, ID: 9, Field: "shiftId"},
		{Kind: domain.LookupAddressType, ID: 2, Field: "addressTypeId"},
	}

	violations, err := CheckLookups(context.Background(), lookups, checks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lookups.calls.Load() != 3 {
		t.Fatalf("expected 3 lookups, got %d", lookups.calls.Load())
	}
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %+v", violations)
	}
	if violations[0].Rule != "SHIFT_NOT_FOUND" || violations[0].Field != "shiftId" {
		t.Fatalf("unexpected first violation %+v", violations[0])
	}
	if violations[1].Rule != "ADDRESS_TYPE_NOT_FOUND" {
		t.Fatalf("unexpected second violation %+v", violations[1])
	}
}

func TestCheckLookupsStorageError(t *testing.T) {
	boom := errors.New("connection reset")
	lookups := &fakeLookups{err: boom}

	_, err := CheckLookups(context.Background(), lookups, []LookupCheck{{Kind: domain.LookupShift, ID: 1, Field: "shiftId"}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
}
