package repository

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassify(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if err := classify(nil); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("no rows", func(t *testing.T) {
		err := classify(fmt.Errorf("scan: %w", pgx.ErrNoRows))
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("unique violation", func(t *testing.T) {
		err := classify(&pgconn.PgError{Code: "23505", ConstraintName: "ux_employee_login_id"})
		if !errors.Is(err, ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", err)
		}
		if !strings.Contains(err.Error(), "ux_employee_login_id") {
			t.Fatalf("expected constraint name in %q", err.Error())
		}
	})

	t.Run("check violation keeps driver error", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23514", ConstraintName: "ck_employee_gender"}
		err := classify(pgErr)
		var got *pgconn.PgError
		if !errors.As(err, &got) || got.ConstraintName != "ck_employee_gender" {
			t.Fatalf("expected wrapped PgError, got %v", err)
		}
	})

	t.Run("unknown passes through", func(t *testing.T) {
		boom := errors.New("boom")
		if err := classify(boom); err != boom {
			t.Fatalf("expected passthrough, got %v", err)
		}
	})
}
