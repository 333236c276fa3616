package repository

import (
	"context"
	"time"

	"github.com/spec-kit/staff-service/internal/domain"
)

type identityRepository struct {
	db Querier
}

// NewIdentityRepository builds the repository.
func NewIdentityRepository(db Querier) IdentityRepository {
	return &identityRepository{db: db}
}

func (r *identityRepository) Create(ctx context.Context, identity *domain.Identity) error {
	const query = `
        INSERT INTO business_entity (rowguid, modified_date)
        VALUES ($1,$2)
        RETURNING business_entity_id`
	return classify(r.db.QueryRow(ctx, query, identity.RowGUID, identity.ModifiedDate).Scan(&identity.ID))
}

func (r *identityRepository) Touch(ctx context.Context, id int, at time.Time) error {
	cmd, err := r.db.Exec(ctx, `UPDATE business_entity SET modified_date=$1 WHERE business_entity_id=$2`, at, id)
	if err != nil {
		return classify(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *identityRepository) GetByID(ctx context.Context, id int) (*domain.Identity, error) {
	const query = `
        SELECT business_entity_id, rowguid, modified_date
        FROM business_entity WHERE business_entity_id=$1`
	var identity domain.Identity
	if err := r.db.QueryRow(ctx, query, id).Scan(&identity.ID, &identity.RowGUID, &identity.ModifiedDate); err != nil {
		return nil, classify(err)
	}
	return &identity, nil
}
