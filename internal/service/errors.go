package service

import (
	"errors"
	"time"

	"github.com/spec-kit/staff-service/internal/repository"
	apperrors "github.com/spec-kit/staff-service/pkg/util/errorutil"
)

// Clock returns the current time; tests pin it.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}

// storeError translates repository failures into the service error taxonomy.
// Errors that are already DomainErrors pass through.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	switch {
	case errors.Is(err, repository.ErrVersionConflict):
		return apperrors.NewConflict("employee was modified by a concurrent request", nil)
	case errors.Is(err, repository.ErrDuplicate):
		return apperrors.NewConflict("record already exists", map[string]any{"reason": err.Error()})
	}
	return apperrors.NewStorageError(err)
}

// loadError maps a read miss to NotFound for the given resource.
func loadError(err error, resource string, id int) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound(resource, map[string]any{"id": id})
	}
	return storeError(err)
}
