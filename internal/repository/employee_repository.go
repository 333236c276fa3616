package repository

import (
	"context"
	"errors"

	"github.com/spec-kit/staff-service/internal/domain"
)

type employeeRepository struct {
	db Querier
}

// NewEmployeeRepository instantiates the repository.
func NewEmployeeRepository(db Querier) EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `business_entity_id, national_id_number, login_id, organization_level, job_title,
        birth_date, marital_status, gender, hire_date, salaried_flag, vacation_hours, sick_leave_hours,
        current_flag, manager_id, version, rowguid, modified_date`

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employee (business_entity_id, national_id_number, login_id, organization_level, job_title,
            birth_date, marital_status, gender, hire_date, salaried_flag, vacation_hours, sick_leave_hours,
            current_flag, manager_id, version, rowguid, modified_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,1,$15,$16)
        RETURNING version`

	return classify(r.db.QueryRow(ctx, query,
		emp.BusinessEntityID,
		emp.NationalIDNumber,
		emp.LoginID,
		emp.OrganizationLevel,
		emp.JobTitle,
		emp.BirthDate,
		emp.MaritalStatus,
		emp.Gender,
		emp.HireDate,
		emp.SalariedFlag,
		emp.VacationHours,
		emp.SickLeaveHours,
		emp.CurrentFlag,
		emp.ManagerID,
		emp.RowGUID,
		emp.ModifiedDate,
	).Scan(&emp.Version))
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	const query = `
        UPDATE employee
        SET organization_level=$1, job_title=$2, marital_status=$3, gender=$4, hire_date=$5, salaried_flag=$6,
            vacation_hours=$7, sick_leave_hours=$8, current_flag=$9, manager_id=$10, modified_date=$11,
            version = version + 1
        WHERE business_entity_id=$12 AND version=$13
        RETURNING version`

	err := r.db.QueryRow(ctx, query,
		emp.OrganizationLevel,
		emp.JobTitle,
		emp.MaritalStatus,
		emp.Gender,
		emp.HireDate,
		emp.SalariedFlag,
		emp.VacationHours,
		emp.SickLeaveHours,
		emp.CurrentFlag,
		emp.ManagerID,
		emp.ModifiedDate,
		emp.BusinessEntityID,
		emp.Version,
	).Scan(&emp.Version)
	if err == nil {
		return nil
	}
	if err = classify(err); !errors.Is(err, ErrNotFound) {
		return err
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employee WHERE business_entity_id=$1)`,
		emp.BusinessEntityID).Scan(&exists); err != nil {
		return classify(err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrVersionConflict
}

func (r *employeeRepository) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employee WHERE business_entity_id=$1`

	var emp domain.Employee
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&emp.BusinessEntityID,
		&emp.NationalIDNumber,
		&emp.LoginID,
		&emp.OrganizationLevel,
		&emp.JobTitle,
		&emp.BirthDate,
		&emp.MaritalStatus,
		&emp.Gender,
		&emp.HireDate,
		&emp.SalariedFlag,
		&emp.VacationHours,
		&emp.SickLeaveHours,
		&emp.CurrentFlag,
		&emp.ManagerID,
		&emp.Version,
		&emp.RowGUID,
		&emp.ModifiedDate,
	); err != nil {
		return nil, classify(err)
	}
	return &emp, nil
}

func (r *employeeRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employee WHERE national_id_number=$1)`, nationalID).Scan(&exists)
	return exists, classify(err)
}

func (r *employeeRepository) ExistsByLoginID(ctx context.Context, loginID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employee WHERE login_id=$1)`, loginID).Scan(&exists)
	return exists, classify(err)
}
