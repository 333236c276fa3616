package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PayFrequency is stored as the numeric code 1 (monthly) or 2 (bi-weekly).
type PayFrequency int

const (
	PayFrequencyMonthly  PayFrequency = 1
	PayFrequencyBiWeekly PayFrequency = 2
)

// ParsePayFrequency accepts the names used by callers.
func ParsePayFrequency(s string) (PayFrequency, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "")) {
	case "monthly", "1":
		return PayFrequencyMonthly, nil
	case "biweekly", "2":
		return PayFrequencyBiWeekly, nil
	}
	return 0, fmt.Errorf("unknown pay frequency %q", s)
}

func (f PayFrequency) Valid() bool {
	return f == PayFrequencyMonthly || f == PayFrequencyBiWeekly
}

func (f PayFrequency) String() string {
	switch f {
	case PayFrequencyMonthly:
		return "Monthly"
	case PayFrequencyBiWeekly:
		return "BiWeekly"
	}
	return fmt.Sprintf("PayFrequency(%d)", int(f))
}

// PayHistoryEntry is an append-only pay rate change.
type PayHistoryEntry struct {
	BusinessEntityID int
	RateChangeDate   time.Time
	Rate             decimal.Decimal
	PayFrequency     PayFrequency
	ModifiedDate     time.Time
}

// CurrentPay returns the entry with the latest effective date.
func CurrentPay(entries []PayHistoryEntry) (PayHistoryEntry, bool) {
	var (
		current PayHistoryEntry
		found   bool
	)
	for _, e := range entries {
		if !found || e.RateChangeDate.After(current.RateChangeDate) {
			current = e
			found = true
		}
	}
	return current, found
}
