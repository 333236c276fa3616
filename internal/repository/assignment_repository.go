package repository

import (
	"context"
	"time"

	"github.com/spec-kit/staff-service/internal/domain"
)

type assignmentRepository struct {
	db Querier
}

// NewAssignmentRepository builds the repository.
func NewAssignmentRepository(db Querier) AssignmentRepository {
	return &assignmentRepository{db: db}
}

// Open inserts a new interval. The partial unique index on open intervals
// turns a second open row into ErrDuplicate.
func (r *assignmentRepository) Open(ctx context.Context, a *domain.DepartmentAssignment) error {
	const query = `
        INSERT INTO employee_department_history (business_entity_id, department_id, shift_id, start_date, end_date, modified_date)
        VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := r.db.Exec(ctx, query, a.BusinessEntityID, a.DepartmentID, a.ShiftID, a.StartDate, a.EndDate, a.ModifiedDate)
	return classify(err)
}

func (r *assignmentRepository) CloseOpen(ctx context.Context, entityID int, endDate, at time.Time) error {
	const query = `
        UPDATE employee_department_history SET end_date=$1, modified_date=$2
        WHERE business_entity_id=$3 AND end_date IS NULL`
	cmd, err := r.db.Exec(ctx, query, endDate, at, entityID)
	if err != nil {
		return classify(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *assignmentRepository) CountOpen(ctx context.Context, entityID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM employee_department_history WHERE business_entity_id=$1 AND end_date IS NULL`,
		entityID).Scan(&count)
	return count, classify(err)
}

func (r *assignmentRepository) ListByEmployee(ctx context.Context, entityID int) ([]domain.DepartmentAssignment, error) {
	const query = `
        SELECT business_entity_id, department_id, shift_id, start_date, end_date, modified_date
        FROM employee_department_history WHERE business_entity_id=$1 ORDER BY start_date ASC`
	rows, err := r.db.Query(ctx, query, entityID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var result []domain.DepartmentAssignment
	for rows.Next() {
		var a domain.DepartmentAssignment
		if err := rows.Scan(&a.BusinessEntityID, &a.DepartmentID, &a.ShiftID, &a.StartDate, &a.EndDate, &a.ModifiedDate); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}
