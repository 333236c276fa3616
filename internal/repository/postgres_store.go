package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type pgBeginner interface {
	Querier
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

type postgresStore struct {
	pool pgBeginner
}

// NewPostgresStore binds the repositories to a pgx pool.
func NewPostgresStore(pool pgBeginner) Store {
	return &postgresStore{pool: pool}
}

func newRepositories(db Querier) Repositories {
	return Repositories{
		Identities:  NewIdentityRepository(db),
		Persons:     NewPersonRepository(db),
		Employees:   NewEmployeeRepository(db),
		SalesPeople: NewSalesPersonRepository(db),
		Contacts:    NewContactRepository(db),
		Assignments: NewAssignmentRepository(db),
		PayHistory:  NewPayHistoryRepository(db),
		History:     NewLifecycleHistoryRepository(db),
	}
}

func (s *postgresStore) Repositories() Repositories {
	return newRepositories(s.pool)
}

func (s *postgresStore) Lookups() LookupRepository {
	return NewLookupRepository(s.pool)
}

func (s *postgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *postgresStore) WithTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if err := fn(ctx, newRepositories(tx)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
