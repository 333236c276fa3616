package repository

import (
	"context"

	"github.com/spec-kit/staff-service/internal/domain"
)

type lifecycleHistoryRepository struct {
	db Querier
}

// NewLifecycleHistoryRepository builds repository.
func NewLifecycleHistoryRepository(db Querier) LifecycleHistoryRepository {
	return &lifecycleHistoryRepository{db: db}
}

func (r *lifecycleHistoryRepository) Create(ctx context.Context, history *domain.LifecycleHistory) error {
	const query = `
        INSERT INTO employee_lifecycle_history (business_entity_id, transition, effective_date, details)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	details := history.Details
	if details == nil {
		details = map[string]any{}
	}
	return classify(r.db.QueryRow(ctx, query,
		history.BusinessEntityID,
		history.Transition,
		history.EffectiveDate,
		details,
	).Scan(&history.ID, &history.CreatedAt))
}

func (r *lifecycleHistoryRepository) ListByEmployee(ctx context.Context, entityID int) ([]domain.LifecycleHistory, error) {
	const query = `
        SELECT id, business_entity_id, transition, effective_date, details, created_at
        FROM employee_lifecycle_history WHERE business_entity_id=$1 ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query, entityID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var result []domain.LifecycleHistory
	for rows.Next() {
		var history domain.LifecycleHistory
		if err := rows.Scan(
			&history.ID,
			&history.BusinessEntityID,
			&history.Transition,
			&history.EffectiveDate,
			&history.Details,
			&history.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, history)
	}
	return result, rows.Err()
}
