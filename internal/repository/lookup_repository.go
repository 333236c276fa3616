package repository

import (
	"context"
	"fmt"

	"github.com/spec-kit/staff-service/internal/domain"
)

var lookupExistsQueries = map[domain.LookupKind]string{
	domain.LookupAddressType:     `SELECT EXISTS (SELECT 1 FROM address_type WHERE address_type_id=$1)`,
	domain.LookupPhoneNumberType: `SELECT EXISTS (SELECT 1 FROM phone_number_type WHERE phone_number_type_id=$1)`,
	domain.LookupStateProvince:   `SELECT EXISTS (SELECT 1 FROM state_province WHERE state_province_id=$1)`,
	domain.LookupDepartment:      `SELECT EXISTS (SELECT 1 FROM department WHERE department_id=$1)`,
	domain.LookupShift:           `SELECT EXISTS (SELECT 1 FROM shift WHERE shift_id=$1)`,
}

type lookupRepository struct {
	db Querier
}

// NewLookupRepository builds the reference-data repository.
func NewLookupRepository(db Querier) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) Exists(ctx context.Context, kind domain.LookupKind, id int) (bool, error) {
	query, ok := lookupExistsQueries[kind]
	if !ok {
		return false, fmt.Errorf("unknown lookup kind %q", kind)
	}
	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, classify(err)
	}
	return exists, nil
}

func (r *lookupRepository) GetDepartment(ctx context.Context, id int) (*domain.Department, error) {
	const query = `
        SELECT department_id, name, group_name, modified_date
        FROM department WHERE department_id=$1`
	var dept domain.Department
	if err := r.db.QueryRow(ctx, query, id).Scan(&dept.ID, &dept.Name, &dept.GroupName, &dept.ModifiedDate); err != nil {
		return nil, classify(err)
	}
	return &dept, nil
}

func (r *lookupRepository) GetShift(ctx context.Context, id int) (*domain.Shift, error) {
	const query = `
        SELECT shift_id, name, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), modified_date
        FROM shift WHERE shift_id=$1`
	var shift domain.Shift
	if err := r.db.QueryRow(ctx, query, id).Scan(&shift.ID, &shift.Name, &shift.StartTime, &shift.EndTime, &shift.ModifiedDate); err != nil {
		return nil, classify(err)
	}
	return &shift, nil
}
