package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Policy holds the business limits applied by validation and lifecycle rules.
type Policy struct {
	MinimumAgeYears           int             `yaml:"minimum_age_years"`
	MaxVacationHours          int             `yaml:"max_vacation_hours"`
	MaxSickHours              int             `yaml:"max_sick_hours"`
	HireDateMaxFutureDays     int             `yaml:"hire_date_max_future_days"`
	TerminationMaxFutureDays  int             `yaml:"termination_date_max_future_days"`
	RehireCoolingOffDays      int             `yaml:"rehire_cooling_off_days"`
	NewHireVacationHours      int             `yaml:"new_hire_vacation_hours"`
	NewHireSickHours          int             `yaml:"new_hire_sick_hours"`
	TerminationReasonMaxChars int             `yaml:"termination_reason_max_chars"`
	MaxPayRate                decimal.Decimal `yaml:"max_pay_rate"`
}

// DefaultPolicy returns the reference rules.
func DefaultPolicy() Policy {
	return Policy{
		MinimumAgeYears:           18,
		MaxVacationHours:          240,
		MaxSickHours:              480,
		HireDateMaxFutureDays:     30,
		TerminationMaxFutureDays:  90,
		RehireCoolingOffDays:      90,
		NewHireVacationHours:      40,
		NewHireSickHours:          24,
		TerminationReasonMaxChars: 500,
		MaxPayRate:                decimal.RequireFromString("500.00"),
	}
}

// LoadPolicy overlays the YAML file at path onto DefaultPolicy.
// A missing file or empty path yields the defaults.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return policy, nil
		}
		return Policy{}, fmt.Errorf("read policy %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &policy); err != nil {
		return Policy{}, fmt.Errorf("parse policy %s: %w", path, err)
	}
	if err := policy.Validate(); err != nil {
		return Policy{}, fmt.Errorf("policy %s: %w", path, err)
	}
	return policy, nil
}

// Validate rejects limits that would make every transition fail.
func (p Policy) Validate() error {
	if p.MinimumAgeYears < 0 {
		return errors.New("minimum_age_years must not be negative")
	}
	if p.MaxVacationHours < 0 || p.MaxSickHours < 0 {
		return errors.New("pto maxima must not be negative")
	}
	if p.NewHireVacationHours > p.MaxVacationHours || p.NewHireSickHours > p.MaxSickHours {
		return errors.New("new hire pto defaults exceed maxima")
	}
	if !p.MaxPayRate.IsPositive() {
		return errors.New("max_pay_rate must be positive")
	}
	if p.RehireCoolingOffDays < 0 {
		return errors.New("rehire_cooling_off_days must not be negative")
	}
	return nil
}
