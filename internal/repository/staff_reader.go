package repository

import (
	"context"
	"errors"

	"github.com/spec-kit/staff-service/internal/domain"
)

// LoadStaffMember reads every part of the aggregate keyed by id.
func LoadStaffMember(ctx context.Context, repos Repositories, id int) (*domain.StaffMember, error) {
	identity, err := repos.Identities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	person, err := repos.Persons.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	emp, err := repos.Employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	staff := &domain.StaffMember{
		Identity: *identity,
		Person:   *person,
		Employee: *emp,
	}

	sp, err := repos.SalesPeople.GetByID(ctx, id)
	switch {
	case err == nil:
		staff.SalesPerson = sp
	case errors.Is(err, ErrNotFound):
	default:
		return nil, err
	}

	if staff.Phones, err = repos.Contacts.ListPhones(ctx, id); err != nil {
		return nil, err
	}
	if staff.Emails, err = repos.Contacts.ListEmails(ctx, id); err != nil {
		return nil, err
	}
	if staff.Addresses, err = repos.Contacts.ListAddresses(ctx, id); err != nil {
		return nil, err
	}
	if staff.Assignments, err = repos.Assignments.ListByEmployee(ctx, id); err != nil {
		return nil, err
	}
	if staff.PayHistory, err = repos.PayHistory.ListByEmployee(ctx, id); err != nil {
		return nil, err
	}
	domain.SortAssignments(staff.Assignments)
	return staff, nil
}
