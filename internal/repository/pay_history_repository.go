package repository

import (
	"context"

	"github.com/spec-kit/staff-service/internal/domain"
)

type payHistoryRepository struct {
	db Querier
}

// NewPayHistoryRepository builds the repository.
func NewPayHistoryRepository(db Querier) PayHistoryRepository {
	return &payHistoryRepository{db: db}
}

func (r *payHistoryRepository) Append(ctx context.Context, entry *domain.PayHistoryEntry) error {
	const query = `
        INSERT INTO employee_pay_history (business_entity_id, rate_change_date, rate, pay_frequency, modified_date)
        VALUES ($1,$2,$3,$4,$5)`
	_, err := r.db.Exec(ctx, query,
		entry.BusinessEntityID,
		entry.RateChangeDate,
		entry.Rate,
		int16(entry.PayFrequency),
		entry.ModifiedDate,
	)
	return classify(err)
}

func (r *payHistoryRepository) ListByEmployee(ctx context.Context, entityID int) ([]domain.PayHistoryEntry, error) {
	const query = `
        SELECT business_entity_id, rate_change_date, rate, pay_frequency, modified_date
        FROM employee_pay_history WHERE business_entity_id=$1 ORDER BY rate_change_date ASC`
	rows, err := r.db.Query(ctx, query, entityID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var result []domain.PayHistoryEntry
	for rows.Next() {
		var (
			entry domain.PayHistoryEntry
			freq  int16
		)
		if err := rows.Scan(&entry.BusinessEntityID, &entry.RateChangeDate, &entry.Rate, &freq, &entry.ModifiedDate); err != nil {
			return nil, err
		}
		entry.PayFrequency = domain.PayFrequency(freq)
		result = append(result, entry)
	}
	return result, rows.Err()
}
