// Package memory is an in-process Store used when no database is configured
// and by tests. Transactions run against a cloned state that replaces the
// live state only on success.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/repository"
)

type state struct {
	identities  map[int]domain.Identity
	persons     map[int]domain.Person
	employees   map[int]domain.Employee
	salesPeople map[int]domain.SalesPerson
	phones      map[int][]domain.Phone
	emails      map[int][]domain.EmailAddress
	addresses   map[int]domain.Address
	links       map[int][]domain.AddressLink
	assignments map[int][]domain.DepartmentAssignment
	pay         map[int][]domain.PayHistoryEntry
	history     map[int][]domain.LifecycleHistory

	nextEntityID  int
	nextAddressID int
	nextEmailID   int
	nextHistoryID int64
}

func newState() *state {
	return &state{
		identities:    map[int]domain.Identity{},
		persons:       map[int]domain.Person{},
		employees:     map[int]domain.Employee{},
		salesPeople:   map[int]domain.SalesPerson{},
		phones:        map[int][]domain.Phone{},
		emails:        map[int][]domain.EmailAddress{},
		addresses:     map[int]domain.Address{},
		links:         map[int][]domain.AddressLink{},
		assignments:   map[int][]domain.DepartmentAssignment{},
		pay:           map[int][]domain.PayHistoryEntry{},
		history:       map[int][]domain.LifecycleHistory{},
		nextEntityID:  1,
		nextAddressID: 1,
		nextEmailID:   1,
		nextHistoryID: 1,
	}
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneSliceMap[K comparable, V any](in map[K][]V) map[K][]V {
	out := make(map[K][]V, len(in))
	for k, v := range in {
		out[k] = append([]V(nil), v...)
	}
	return out
}

func (s *state) clone() *state {
	return &state{
		identities:    cloneMap(s.identities),
		persons:       cloneMap(s.persons),
		employees:     cloneMap(s.employees),
		salesPeople:   cloneMap(s.salesPeople),
		phones:        cloneSliceMap(s.phones),
		emails:        cloneSliceMap(s.emails),
		addresses:     cloneMap(s.addresses),
		links:         cloneSliceMap(s.links),
		assignments:   cloneSliceMap(s.assignments),
		pay:           cloneSliceMap(s.pay),
		history:       cloneSliceMap(s.history),
		nextEntityID:  s.nextEntityID,
		nextAddressID: s.nextAddressID,
		nextEmailID:   s.nextEmailID,
		nextHistoryID: s.nextHistoryID,
	}
}

type locker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

type noLock struct{}

func (noLock) Lock()    {}
func (noLock) Unlock()  {}
func (noLock) RLock()   {}
func (noLock) RUnlock() {}

// view binds repositories to one state. Outside a transaction it guards the
// live state with the store mutex; inside one the caller already holds it.
type view struct {
	mu    locker
	state func() *state
	now   func() time.Time
}

// Store is a goroutine-safe in-memory repository.Store.
type Store struct {
	mu    sync.RWMutex
	state *state
	ref   ReferenceData
	now   func() time.Time
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the clock used for generated timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithReferenceData replaces the default lookup seed.
func WithReferenceData(ref ReferenceData) Option {
	return func(s *Store) { s.ref = ref }
}

// NewStore returns an empty store seeded with reference data.
func NewStore(opts ...Option) *Store {
	s := &Store{
		state: newState(),
		ref:   DefaultReferenceData(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ repository.Store = (*Store)(nil)

func (s *Store) Repositories() repository.Repositories {
	return newRepositories(&view{
		mu:    &s.mu,
		state: func() *state { return s.state },
		now:   s.now,
	})
}

func (s *Store) Lookups() repository.LookupRepository {
	return &lookupRepository{ref: s.ref}
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// WithTx serialises transactions. fn sees a private clone which becomes the
// live state only when fn succeeds and ctx has not been cancelled.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.state.clone()
	repos := newRepositories(&view{
		mu:    noLock{},
		state: func() *state { return draft },
		now:   s.now,
	})
	if err := fn(ctx, repos); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = draft
	return nil
}

func newRepositories(v *view) repository.Repositories {
	return repository.Repositories{
		Identities:  &identityRepository{v},
		Persons:     &personRepository{v},
		Employees:   &employeeRepository{v},
		SalesPeople: &salesPersonRepository{v},
		Contacts:    &contactRepository{v},
		Assignments: &assignmentRepository{v},
		PayHistory:  &payHistoryRepository{v},
		History:     &historyRepository{v},
	}
}
