package repository

import (
	"context"

	"github.com/spec-kit/staff-service/internal/domain"
)

type personRepository struct {
	db Querier
}

// NewPersonRepository builds the repository.
func NewPersonRepository(db Querier) PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) Create(ctx context.Context, p *domain.Person) error {
	const query = `
        INSERT INTO person (business_entity_id, person_type, name_style, title, first_name, middle_name,
            last_name, suffix, email_promotion, rowguid, modified_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
	_, err := r.db.Exec(ctx, query,
		p.BusinessEntityID,
		p.PersonType,
		p.NameStyle,
		p.Title,
		p.FirstName,
		p.MiddleName,
		p.LastName,
		p.Suffix,
		p.EmailPromotion,
		p.RowGUID,
		p.ModifiedDate,
	)
	return classify(err)
}

func (r *personRepository) Update(ctx context.Context, p *domain.Person) error {
	const query = `
        UPDATE person
        SET person_type=$1, name_style=$2, title=$3, first_name=$4, middle_name=$5, last_name=$6,
            suffix=$7, email_promotion=$8, modified_date=$9
        WHERE business_entity_id=$10`
	cmd, err := r.db.Exec(ctx, query,
		p.PersonType,
		p.NameStyle,
		p.Title,
		p.FirstName,
		p.MiddleName,
		p.LastName,
		p.Suffix,
		p.EmailPromotion,
		p.ModifiedDate,
		p.BusinessEntityID,
	)
	if err != nil {
		return classify(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *personRepository) GetByID(ctx context.Context, id int) (*domain.Person, error) {
	const query = `
        SELECT business_entity_id, person_type, name_style, title, first_name, middle_name, last_name,
            suffix, email_promotion, rowguid, modified_date
        FROM person WHERE business_entity_id=$1`
	var p domain.Person
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&p.BusinessEntityID,
		&p.PersonType,
		&p.NameStyle,
		&p.Title,
		&p.FirstName,
		&p.MiddleName,
		&p.LastName,
		&p.Suffix,
		&p.EmailPromotion,
		&p.RowGUID,
		&p.ModifiedDate,
	); err != nil {
		return nil, classify(err)
	}
	return &p, nil
}
