package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/staff-service/internal/domain"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")
	// ErrVersionConflict is returned when an optimistic version check fails.
	ErrVersionConflict = errors.New("version conflict")
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// IdentityRepository persists business-entity identities.
type IdentityRepository interface {
	Create(ctx context.Context, identity *domain.Identity) error
	Touch(ctx context.Context, id int, at time.Time) error
	GetByID(ctx context.Context, id int) (*domain.Identity, error)
}

// PersonRepository persists person rows keyed by identity.
type PersonRepository interface {
	Create(ctx context.Context, person *domain.Person) error
	Update(ctx context.Context, person *domain.Person) error
	GetByID(ctx context.Context, id int) (*domain.Person, error)
}

// EmployeeRepository persists employment records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	// Update writes emp only when the stored version equals emp.Version,
	// then increments emp.Version.
	Update(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int) (*domain.Employee, error)
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)
	ExistsByLoginID(ctx context.Context, loginID string) (bool, error)
}

// SalesPersonRepository persists the optional sales role.
type SalesPersonRepository interface {
	Create(ctx context.Context, sp *domain.SalesPerson) error
	Update(ctx context.Context, sp *domain.SalesPerson) error
	GetByID(ctx context.Context, id int) (*domain.SalesPerson, error)
}

// ContactRepository persists phone, email and address channels.
type ContactRepository interface {
	CreatePhone(ctx context.Context, phone *domain.Phone) error
	CreateEmail(ctx context.Context, email *domain.EmailAddress) error
	CreateAddress(ctx context.Context, addr *domain.Address) error
	LinkAddress(ctx context.Context, link *domain.AddressLink) error
	UpdateAddress(ctx context.Context, addr *domain.Address) error
	ListPhones(ctx context.Context, entityID int) ([]domain.Phone, error)
	ListEmails(ctx context.Context, entityID int) ([]domain.EmailAddress, error)
	ListAddresses(ctx context.Context, entityID int) ([]domain.LinkedAddress, error)
}

// AssignmentRepository persists department assignment intervals.
type AssignmentRepository interface {
	Open(ctx context.Context, a *domain.DepartmentAssignment) error
	// CloseOpen sets the end date of the single open interval.
	CloseOpen(ctx context.Context, entityID int, endDate, at time.Time) error
	CountOpen(ctx context.Context, entityID int) (int, error)
	ListByEmployee(ctx context.Context, entityID int) ([]domain.DepartmentAssignment, error)
}

// PayHistoryRepository appends pay rate changes.
type PayHistoryRepository interface {
	Append(ctx context.Context, entry *domain.PayHistoryEntry) error
	ListByEmployee(ctx context.Context, entityID int) ([]domain.PayHistoryEntry, error)
}

// LifecycleHistoryRepository stores transition audit entries.
type LifecycleHistoryRepository interface {
	Create(ctx context.Context, history *domain.LifecycleHistory) error
	ListByEmployee(ctx context.Context, entityID int) ([]domain.LifecycleHistory, error)
}

// LookupRepository answers reference-data existence checks.
type LookupRepository interface {
	Exists(ctx context.Context, kind domain.LookupKind, id int) (bool, error)
	GetDepartment(ctx context.Context, id int) (*domain.Department, error)
	GetShift(ctx context.Context, id int) (*domain.Shift, error)
}

// Repositories groups the repositories bound to one connection or transaction.
type Repositories struct {
	Identities  IdentityRepository
	Persons     PersonRepository
	Employees   EmployeeRepository
	SalesPeople SalesPersonRepository
	Contacts    ContactRepository
	Assignments AssignmentRepository
	PayHistory  PayHistoryRepository
	History     LifecycleHistoryRepository
}

// Store is the transactional boundary over the staff tables.
type Store interface {
	// Repositories returns repositories that run outside any transaction.
	Repositories() Repositories
	Lookups() LookupRepository
	// WithTx runs fn inside one transaction. The transaction commits only when
	// fn returns nil and ctx is still live; otherwise it is rolled back.
	WithTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
	Ping(ctx context.Context) error
}
