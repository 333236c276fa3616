package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the root business-entity row every person record hangs off.
// Person, Employee and SalesPerson rows reuse its ID as their own key.
type Identity struct {
	ID           int
	RowGUID      uuid.UUID
	ModifiedDate time.Time
}
