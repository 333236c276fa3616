package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/staff-service/internal/config"
	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/events"
	"github.com/spec-kit/staff-service/internal/repository"
	"github.com/spec-kit/staff-service/internal/repository/memory"
	apperrors "github.com/spec-kit/staff-service/pkg/util/errorutil"
)

var (
	day0        = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	errInjected = errors.New("injected failure")
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(t time.Time) *testClock {
	return &testClock{now: t}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type harness struct {
	clock     *testClock
	store     repository.Store
	mem       *memory.Store
	events    *recordedEvents
	staff     *StaffService
	lifecycle *LifecycleService
}

type recordedEvents struct {
	mu    sync.Mutex
	types []events.EventType
}

func (r *recordedEvents) handler(_ context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, event.Type)
	return nil
}

func (r *recordedEvents) seen() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.EventType(nil), r.types...)
}

// newHarness wires both services over one memory store. wrap, when set,
// decorates the store handed to the services.
func newHarness(t *testing.T, wrap func(repository.Store) repository.Store) *harness {
	t.Helper()
	clock := newTestClock(day0)
	mem := memory.NewStore(memory.WithClock(clock.Now))
	var store repository.Store = mem
	if wrap != nil {
		store = wrap(mem)
	}

	recorded := &recordedEvents{}
	dispatcher := events.NewInMemoryDispatcher()
	for _, eventType := range []events.EventType{
		events.EventStaffCreated,
		events.EventStaffUpdated,
		events.EventEmployeeHired,
		events.EventEmployeeTerminated,
		events.EventEmployeeRehired,
	} {
		dispatcher.Subscribe(eventType, recorded.handler)
	}

	policy := config.DefaultPolicy()
	return &harness{
		clock:  clock,
		store:  store,
		mem:    mem,
		events: recorded,
		staff: NewStaffService(StaffDependencies{
			Store:      store,
			Policy:     policy,
			Dispatcher: dispatcher,
			Clock:      clock.Now,
		}),
		lifecycle: NewLifecycleService(LifecycleDependencies{
			Store:      store,
			Policy:     policy,
			Dispatcher: dispatcher,
			Clock:      clock.Now,
		}),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createCommand(login string) domain.CreateStaffCommand {
	return domain.CreateStaffCommand{
		Person: domain.PersonInput{
			Title:     "Ms.",
			FirstName: "Ana",
			LastName:  "Trujillo",
		},
		Employment: domain.EmploymentInput{
			NationalIDNumber: "NID-" + login,
			LoginID:          `adventure-works\` + login,
			JobTitle:         "Production Technician - WC60",
			BirthDate:        date(1990, 6, 15),
			MaritalStatus:    domain.MaritalStatusSingle,
			Gender:           domain.GenderFemale,
			HireDate:         date(2024, 1, 15),
		},
		Phone:         domain.PhoneInput{PhoneNumber: "425-555-0100", PhoneNumberTypeID: 1},
		Email:         domain.EmailInput{Address: login + "@adventure-works.com"},
		Address:       domain.AddressInput{AddressLine1: "1 Microsoft Way", City: "Redmond", StateProvinceID: 79, PostalCode: "98052"},
		AddressTypeID: 2,
	}
}

func hireCommand(hireDate time.Time) domain.HireCommand {
	return domain.HireCommand{
		DepartmentID:  5,
		ShiftID:       1,
		HireDate:      hireDate,
		PayRate:       decimal.RequireFromString("25.00"),
		PayFrequency:  domain.PayFrequencyBiWeekly,
		VacationHours: 40,
		SickHours:     24,
	}
}

func rehireCommand(rehireDate time.Time) domain.RehireCommand {
	return domain.RehireCommand{
		DepartmentID: 7,
		ShiftID:      2,
		RehireDate:   rehireDate,
		PayRate:      decimal.RequireFromString("27.50"),
		PayFrequency: domain.PayFrequencyMonthly,
	}
}

func (h *harness) mustCreate(t *testing.T, login string) int {
	t.Helper()
	id, err := h.staff.CreateStaff(context.Background(), createCommand(login))
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}
	return id
}

func (h *harness) mustHire(t *testing.T, id int, hireDate time.Time) {
	t.Helper()
	if err := h.lifecycle.Hire(context.Background(), id, hireCommand(hireDate)); err != nil {
		t.Fatalf("hire: %v", err)
	}
}

func (h *harness) openIntervals(t *testing.T, id int) int {
	t.Helper()
	n, err := h.mem.Repositories().Assignments.CountOpen(context.Background(), id)
	if err != nil {
		t.Fatalf("count open: %v", err)
	}
	return n
}

// failingStore injects errInjected into the write named by step, inside the
// transaction, so that atomicity can be observed on the wrapped store.
type failingStore struct {
	repository.Store
	step string
}

func failAt(step string) func(repository.Store) repository.Store {
	return func(inner repository.Store) repository.Store {
		return &failingStore{Store: inner, step: step}
	}
}

func (f *failingStore) WithTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	return f.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		repos.Identities = failingIdentities{repos.Identities, f.step}
		repos.Persons = failingPersons{repos.Persons, f.step}
		repos.Employees = failingEmployees{repos.Employees, f.step}
		repos.SalesPeople = failingSales{repos.SalesPeople, f.step}
		repos.Contacts = failingContacts{repos.Contacts, f.step}
		repos.Assignments = failingAssignments{repos.Assignments, f.step}
		repos.PayHistory = failingPay{repos.PayHistory, f.step}
		repos.History = failingHistory{repos.History, f.step}
		return fn(ctx, repos)
	})
}

type failingIdentities struct {
	repository.IdentityRepository
	step string
}

func (f failingIdentities) Create(ctx context.Context, identity *domain.Identity) error {
	if f.step == "identity" {
		return errInjected
	}
	return f.IdentityRepository.Create(ctx, identity)
}

func (f failingIdentities) Touch(ctx context.Context, id int, at time.Time) error {
	if f.step == "touch" {
		return errInjected
	}
	return f.IdentityRepository.Touch(ctx, id, at)
}

type failingPersons struct {
	repository.PersonRepository
	step string
}

func (f failingPersons) Create(ctx context.Context, person *domain.Person) error {
	if f.step == "person" {
		return errInjected
	}
	return f.PersonRepository.Create(ctx, person)
}

func (f failingPersons) Update(ctx context.Context, person *domain.Person) error {
	if f.step == "person.update" {
		return errInjected
	}
	return f.PersonRepository.Update(ctx, person)
}

type failingEmployees struct {
	repository.EmployeeRepository
	step string
}

func (f failingEmployees) Create(ctx context.Context, emp *domain.Employee) error {
	if f.step == "employee" {
		return errInjected
	}
	return f.EmployeeRepository.Create(ctx, emp)
}

func (f failingEmployees) Update(ctx context.Context, emp *domain.Employee) error {
	if f.step == "employee.update" {
		return errInjected
	}
	return f.EmployeeRepository.Update(ctx, emp)
}

type failingSales struct {
	repository.SalesPersonRepository
	step string
}

func (f failingSales) Create(ctx context.Context, sp *domain.SalesPerson) error {
	if f.step == "sales" {
		return errInjected
	}
	return f.SalesPersonRepository.Create(ctx, sp)
}

type failingContacts struct {
	repository.ContactRepository
	step string
}

func (f failingContacts) CreatePhone(ctx context.Context, phone *domain.Phone) error {
	if f.step == "phone" {
		return errInjected
	}
	return f.ContactRepository.CreatePhone(ctx, phone)
}

func (f failingContacts) CreateEmail(ctx context.Context, email *domain.EmailAddress) error {
	if f.step == "email" {
		return errInjected
	}
	return f.ContactRepository.CreateEmail(ctx, email)
}

func (f failingContacts) CreateAddress(ctx context.Context, addr *domain.Address) error {
	if f.step == "address" {
		return errInjected
	}
	return f.ContactRepository.CreateAddress(ctx, addr)
}

func (f failingContacts) LinkAddress(ctx context.Context, link *domain.AddressLink) error {
	if f.step == "address.link" {
		return errInjected
	}
	return f.ContactRepository.LinkAddress(ctx, link)
}

type failingAssignments struct {
	repository.AssignmentRepository
	step string
}

func (f failingAssignments) Open(ctx context.Context, a *domain.DepartmentAssignment) error {
	if f.step == "assignment.open" {
		return errInjected
	}
	return f.AssignmentRepository.Open(ctx, a)
}

func (f failingAssignments) CloseOpen(ctx context.Context, entityID int, endDate, at time.Time) error {
	if f.step == "assignment.close" {
		return errInjected
	}
	return f.AssignmentRepository.CloseOpen(ctx, entityID, endDate, at)
}

type failingPay struct {
	repository.PayHistoryRepository
	step string
}

func (f failingPay) Append(ctx context.Context, entry *domain.PayHistoryEntry) error {
	if f.step == "pay" {
		return errInjected
	}
	return f.PayHistoryRepository.Append(ctx, entry)
}

type failingHistory struct {
	repository.LifecycleHistoryRepository
	step string
}

func (f failingHistory) Create(ctx context.Context, history *domain.LifecycleHistory) error {
	if f.step == "history" {
		return errInjected
	}
	return f.LifecycleHistoryRepository.Create(ctx, history)
}

// racingStore commits a competing employee write right before each
// transaction, which makes the version check of the transaction fail.
type racingStore struct {
	repository.Store
	employeeID int
}

func (r *racingStore) WithTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	err := r.Store.WithTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		emp, err := repos.Employees.GetByID(ctx, r.employeeID)
		if err != nil {
			return err
		}
		emp.JobTitle = "Changed Concurrently"
		return repos.Employees.Update(ctx, emp)
	})
	if err != nil {
		return err
	}
	return r.Store.WithTx(ctx, fn)
}

type heldLocker struct{}

func (heldLocker) Acquire(context.Context, int) (func() error, error) {
	return nil, apperrors.NewConflict("employee is locked", nil)
}

// mustCreateUnwrapped seeds a staff member through the bare memory store so
// that failures injected by the harness store only affect the call under test.
func (h *harness) mustCreateUnwrapped(t *testing.T, login string) int {
	t.Helper()
	svc := NewStaffService(StaffDependencies{Store: h.mem, Policy: config.DefaultPolicy(), Clock: h.clock.Now})
	id, err := svc.CreateStaff(context.Background(), createCommand(login))
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}
	return id
}

func (h *harness) mustHireUnwrapped(t *testing.T, id int, hireDate time.Time) {
	t.Helper()
	svc := NewLifecycleService(LifecycleDependencies{Store: h.mem, Policy: config.DefaultPolicy(), Clock: h.clock.Now})
	if err := svc.Hire(context.Background(), id, hireCommand(hireDate)); err != nil {
		t.Fatalf("hire: %v", err)
	}
}
