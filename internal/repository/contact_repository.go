package repository

import (
	"context"

	"github.com/spec-kit/staff-service/internal/domain"
)

type contactRepository struct {
	db Querier
}

// NewContactRepository builds the repository.
func NewContactRepository(db Querier) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) CreatePhone(ctx context.Context, phone *domain.Phone) error {
	const query = `
        INSERT INTO person_phone (business_entity_id, phone_number, phone_number_type_id, modified_date)
        VALUES ($1,$2,$3,$4)`
	_, err := r.db.Exec(ctx, query, phone.BusinessEntityID, phone.PhoneNumber, phone.PhoneNumberTypeID, phone.ModifiedDate)
	return classify(err)
}

func (r *contactRepository) CreateEmail(ctx context.Context, email *domain.EmailAddress) error {
	const query = `
        INSERT INTO email_address (business_entity_id, email_address, rowguid, modified_date)
        VALUES ($1,$2,$3,$4)
        RETURNING email_address_id`
	return classify(r.db.QueryRow(ctx, query,
		email.BusinessEntityID,
		email.Address,
		email.RowGUID,
		email.ModifiedDate,
	).Scan(&email.EmailAddressID))
}

func (r *contactRepository) CreateAddress(ctx context.Context, addr *domain.Address) error {
	const query = `
        INSERT INTO address (address_line1, address_line2, city, state_province_id, postal_code, rowguid, modified_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING address_id`
	return classify(r.db.QueryRow(ctx, query,
		addr.AddressLine1,
		addr.AddressLine2,
		addr.City,
		addr.StateProvinceID,
		addr.PostalCode,
		addr.RowGUID,
		addr.ModifiedDate,
	).Scan(&addr.AddressID))
}

func (r *contactRepository) LinkAddress(ctx context.Context, link *domain.AddressLink) error {
	const query = `
        INSERT INTO business_entity_address (business_entity_id, address_id, address_type_id, rowguid, modified_date)
        VALUES ($1,$2,$3,$4,$5)`
	_, err := r.db.Exec(ctx, query, link.BusinessEntityID, link.AddressID, link.AddressTypeID, link.RowGUID, link.ModifiedDate)
	return classify(err)
}

func (r *contactRepository) UpdateAddress(ctx context.Context, addr *domain.Address) error {
	const query = `
        UPDATE address
        SET address_line1=$1, address_line2=$2, city=$3, state_province_id=$4, postal_code=$5, modified_date=$6
        WHERE address_id=$7`
	cmd, err := r.db.Exec(ctx, query,
		addr.AddressLine1,
		addr.AddressLine2,
		addr.City,
		addr.StateProvinceID,
		addr.PostalCode,
		addr.ModifiedDate,
		addr.AddressID,
	)
	if err != nil {
		return classify(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *contactRepository) ListPhones(ctx context.Context, entityID int) ([]domain.Phone, error) {
	const query = `
        SELECT business_entity_id, phone_number, phone_number_type_id, modified_date
        FROM person_phone WHERE business_entity_id=$1 ORDER BY modified_date ASC, phone_number ASC`
	rows, err := r.db.Query(ctx, query, entityID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var result []domain.Phone
	for rows.Next() {
		var phone domain.Phone
		if err := rows.Scan(&phone.BusinessEntityID, &phone.PhoneNumber, &phone.PhoneNumberTypeID, &phone.ModifiedDate); err != nil {
			return nil, err
		}
		result = append(result, phone)
	}
	return result, rows.Err()
}

func (r *contactRepository) ListEmails(ctx context.Context, entityID int) ([]domain.EmailAddress, error) {
	const query = `
        SELECT business_entity_id, email_address_id, email_address, rowguid, modified_date
        FROM email_address WHERE business_entity_id=$1 ORDER BY email_address_id ASC`
	rows, err := r.db.Query(ctx, query, entityID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var result []domain.EmailAddress
	for rows.Next() {
		var email domain.EmailAddress
		if err := rows.Scan(&email.BusinessEntityID, &email.EmailAddressID, &email.Address, &email.RowGUID, &email.ModifiedDate); err != nil {
			return nil, err
		}
		result = append(result, email)
	}
	return result, rows.Err()
}

func (r *contactRepository) ListAddresses(ctx context.Context, entityID int) ([]domain.LinkedAddress, error) {
	const query = `
        SELECT l.business_entity_id, l.address_id, l.address_type_id, l.rowguid, l.modified_date,
            a.address_id, a.address_line1, a.address_line2, a.city, a.state_province_id, a.postal_code,
            a.rowguid, a.modified_date
        FROM business_entity_address l
        JOIN address a ON a.address_id = l.address_id
        WHERE l.business_entity_id=$1
        ORDER BY l.address_id ASC`
	rows, err := r.db.Query(ctx, query, entityID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var result []domain.LinkedAddress
	for rows.Next() {
		var la domain.LinkedAddress
		if err := rows.Scan(
			&la.Link.BusinessEntityID,
			&la.Link.AddressID,
			&la.Link.AddressTypeID,
			&la.Link.RowGUID,
			&la.Link.ModifiedDate,
			&la.Address.AddressID,
			&la.Address.AddressLine1,
			&la.Address.AddressLine2,
			&la.Address.City,
			&la.Address.StateProvinceID,
			&la.Address.PostalCode,
			&la.Address.RowGUID,
			&la.Address.ModifiedDate,
		); err != nil {
			return nil, err
		}
		result = append(result, la)
	}
	return result, rows.Err()
}
