package repository

import (
	"context"

	"github.com/spec-kit/staff-service/internal/domain"
)

type salesPersonRepository struct {
	db Querier
}

// NewSalesPersonRepository builds the repository.
func NewSalesPersonRepository(db Querier) SalesPersonRepository {
	return &salesPersonRepository{db: db}
}

func (r *salesPersonRepository) Create(ctx context.Context, sp *domain.SalesPerson) error {
	const query = `
        INSERT INTO sales_person (business_entity_id, territory_id, sales_quota, bonus, commission_pct,
            sales_ytd, sales_last_year, rowguid, modified_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	_, err := r.db.Exec(ctx, query,
		sp.BusinessEntityID,
		sp.TerritoryID,
		sp.SalesQuota,
		sp.Bonus,
		sp.CommissionPct,
		sp.SalesYTD,
		sp.SalesLastYear,
		sp.RowGUID,
		sp.ModifiedDate,
	)
	return classify(err)
}

func (r *salesPersonRepository) Update(ctx context.Context, sp *domain.SalesPerson) error {
	const query = `
        UPDATE sales_person
        SET territory_id=$1, sales_quota=$2, bonus=$3, commission_pct=$4, modified_date=$5
        WHERE business_entity_id=$6`
	cmd, err := r.db.Exec(ctx, query,
		sp.TerritoryID,
		sp.SalesQuota,
		sp.Bonus,
		sp.CommissionPct,
		sp.ModifiedDate,
		sp.BusinessEntityID,
	)
	if err != nil {
		return classify(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *salesPersonRepository) GetByID(ctx context.Context, id int) (*domain.SalesPerson, error) {
	const query = `
        SELECT business_entity_id, territory_id, sales_quota, bonus, commission_pct, sales_ytd,
            sales_last_year, rowguid, modified_date
        FROM sales_person WHERE business_entity_id=$1`
	var sp domain.SalesPerson
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&sp.BusinessEntityID,
		&sp.TerritoryID,
		&sp.SalesQuota,
		&sp.Bonus,
		&sp.CommissionPct,
		&sp.SalesYTD,
		&sp.SalesLastYear,
		&sp.RowGUID,
		&sp.ModifiedDate,
	); err != nil {
		return nil, classify(err)
	}
	return &sp, nil
}
