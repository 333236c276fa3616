package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesPerson extends an Employee that holds a sales role.
type SalesPerson struct {
	BusinessEntityID int
	TerritoryID      *int
	SalesQuota       *decimal.Decimal
	Bonus            decimal.Decimal
	CommissionPct    decimal.Decimal
	SalesYTD         decimal.Decimal
	SalesLastYear    decimal.Decimal
	RowGUID          uuid.UUID
	ModifiedDate     time.Time
}
