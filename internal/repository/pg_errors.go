package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr != nil {
		return strings.TrimSpace(pgErr.Code)
	}
	return ""
}

func pgConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr != nil {
		return strings.TrimSpace(pgErr.ConstraintName)
	}
	return ""
}

// classify maps driver errors onto the repository sentinels. Anything it does
// not recognise is returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	switch pgErrorCode(err) {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicate, pgConstraint(err))
	case pgForeignKeyViolation, pgCheckViolation:
		return fmt.Errorf("constraint %s rejected write: %w", pgConstraint(err), err)
	}
	return err
}
