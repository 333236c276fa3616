package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/repository"
)

// IdentityAllocator creates the root business-entity row of a new aggregate.
type IdentityAllocator struct {
	newGUID func() uuid.UUID
	clock   Clock
}

// NewIdentityAllocator builds an allocator; nil arguments select uuid.New and
// the wall clock.
func NewIdentityAllocator(newGUID func() uuid.UUID, clock Clock) *IdentityAllocator {
	if newGUID == nil {
		newGUID = uuid.New
	}
	return &IdentityAllocator{newGUID: newGUID, clock: clock}
}

// Allocate persists one identity through repo and returns it with its
// generated key. repo is expected to be bound to the caller's transaction.
func (a *IdentityAllocator) Allocate(ctx context.Context, repo repository.IdentityRepository) (domain.Identity, error) {
	identity := domain.Identity{
		RowGUID:      a.newGUID(),
		ModifiedDate: a.clock.now(),
	}
	if err := repo.Create(ctx, &identity); err != nil {
		return domain.Identity{}, err
	}
	return identity, nil
}

// GUID returns a fresh correlation id for dependent rows.
func (a *IdentityAllocator) GUID() uuid.UUID {
	return a.newGUID()
}
