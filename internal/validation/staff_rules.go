package validation

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/staff-service/internal/config"
	"github.com/spec-kit/staff-service/internal/domain"
)

func checkLength(c *Collector, field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		c.Addf(RuleFieldLength, field, "%s must be at most %d characters", field, max)
	}
}

// ValidatePerson checks name and promotion fields.
func ValidatePerson(c *Collector, p domain.Person) {
	if strings.TrimSpace(p.FirstName) == "" {
		c.Add(RulePersonFirstName, "person.firstName", "first name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		c.Add(RulePersonLastName, "person.lastName", "last name is required")
	}
	checkLength(c, "person.title", p.Title, 8)
	checkLength(c, "person.firstName", p.FirstName, 50)
	checkLength(c, "person.middleName", p.MiddleName, 50)
	checkLength(c, "person.lastName", p.LastName, 50)
	checkLength(c, "person.suffix", p.Suffix, 10)
	if p.EmailPromotion < 0 || p.EmailPromotion > 2 {
		c.Add(RulePersonEmailPromotion, "person.emailPromotion", "email promotion must be 0, 1 or 2")
	}
}

// ValidateEmployee checks the record-level employment invariants.
func ValidateEmployee(c *Collector, policy config.Policy, emp domain.Employee) {
	if strings.TrimSpace(emp.NationalIDNumber) == "" {
		c.Add(RuleNationalIDRequired, "employment.nationalIdNumber", "national id number is required")
	}
	checkLength(c, "employment.nationalIdNumber", emp.NationalIDNumber, 15)
	if strings.TrimSpace(emp.LoginID) == "" {
		c.Add(RuleLoginIDRequired, "employment.loginId", "login id is required")
	}
	checkLength(c, "employment.loginId", emp.LoginID, 256)
	if strings.TrimSpace(emp.JobTitle) == "" {
		c.Add(RuleJobTitleRequired, "employment.jobTitle", "job title is required")
	}
	checkLength(c, "employment.jobTitle", emp.JobTitle, 50)

	if emp.Gender != domain.GenderMale && emp.Gender != domain.GenderFemale {
		c.Addf(RuleGender, "employment.gender", "gender must be %q or %q", domain.GenderMale, domain.GenderFemale)
	}
	if emp.MaritalStatus != domain.MaritalStatusMarried && emp.MaritalStatus != domain.MaritalStatusSingle {
		c.Addf(RuleMaritalStatus, "employment.maritalStatus", "marital status must be %q or %q",
			domain.MaritalStatusMarried, domain.MaritalStatusSingle)
	}
	if emp.OrganizationLevel != nil && *emp.OrganizationLevel < 0 {
		c.Add(RuleOrganizationLevel, "employment.organizationLevel", "organization level must not be negative")
	}
	ValidatePTO(c, policy, emp.VacationHours, emp.SickLeaveHours, "employment.vacationHours", "employment.sickLeaveHours")

	switch {
	case emp.BirthDate.IsZero():
		c.Add(RuleBirthDateRequired, "employment.birthDate", "birth date is required")
	case emp.HireDate.IsZero():
		c.Add(RuleHireDateRequired, "employment.hireDate", "hire date is required")
	default:
		ValidateMinimumAge(c, policy, emp.BirthDate, emp.HireDate, "employment.birthDate")
	}
}

// ValidateMinimumAge requires birthDate + MinimumAgeYears <= hireDate.
func ValidateMinimumAge(c *Collector, policy config.Policy, birthDate, hireDate time.Time, field string) {
	earliest := domain.DateOf(birthDate).AddDate(policy.MinimumAgeYears, 0, 0)
	if earliest.After(domain.DateOf(hireDate)) {
		c.Addf(RuleMinimumAge, field, "employee must be at least %d years old at hire", policy.MinimumAgeYears)
	}
}

// ValidatePTO bounds vacation and sick balances to the policy maxima.
func ValidatePTO(c *Collector, policy config.Policy, vacation, sick int, vacationField, sickField string) {
	if vacation < 0 || vacation > policy.MaxVacationHours {
		c.Addf(RuleVacationHours, vacationField, "vacation hours must be between 0 and %d", policy.MaxVacationHours)
	}
	if sick < 0 || sick > policy.MaxSickHours {
		c.Addf(RuleSickHours, sickField, "sick leave hours must be between 0 and %d", policy.MaxSickHours)
	}
}

// ValidateHireDateHorizon rejects hire dates further ahead than the policy allows.
func ValidateHireDateHorizon(c *Collector, policy config.Policy, now, hireDate time.Time, field string) {
	limit := domain.DateOf(now).AddDate(0, 0, policy.HireDateMaxFutureDays)
	if domain.DateOf(hireDate).After(limit) {
		c.Addf(RuleHireDateFuture, field, "hire date must be within %d days from today", policy.HireDateMaxFutureDays)
	}
}

// ValidateSalesPerson checks commission, quota and bonus.
func ValidateSalesPerson(c *Collector, sp domain.SalesPerson) {
	if sp.CommissionPct.IsNegative() || sp.CommissionPct.GreaterThan(decimal.NewFromInt(1)) {
		c.Add(RuleSalesCommission, "salesRole.commissionPct", "commission percentage must be between 0 and 1")
	}
	if sp.SalesQuota != nil && !sp.SalesQuota.IsPositive() {
		c.Add(RuleSalesQuota, "salesRole.salesQuota", "sales quota must be greater than 0 when present")
	}
	if sp.Bonus.IsNegative() {
		c.Add(RuleSalesBonus, "salesRole.bonus", "bonus must not be negative")
	}
}

func ValidatePhone(c *Collector, phone domain.PhoneInput) {
	if strings.TrimSpace(phone.PhoneNumber) == "" {
		c.Add(RulePhoneRequired, "phone.phoneNumber", "phone number is required")
	}
	checkLength(c, "phone.phoneNumber", phone.PhoneNumber, 25)
}

func ValidateEmail(c *Collector, email domain.EmailInput) {
	address := strings.TrimSpace(email.Address)
	if address == "" {
		c.Add(RuleEmailRequired, "email.address", "email address is required")
		return
	}
	checkLength(c, "email.address", address, 50)
	if parsed, err := mail.ParseAddress(address); err != nil || parsed.Address != address {
		c.Add(RuleEmailFormat, "email.address", "email address is malformed")
	}
}

// ValidateAddress checks an address; StateProvinceID existence is a lookup check.
func ValidateAddress(c *Collector, addr domain.Address) {
	if strings.TrimSpace(addr.AddressLine1) == "" {
		c.Add(RuleAddressLine, "address.addressLine1", "address line 1 is required")
	}
	checkLength(c, "address.addressLine1", addr.AddressLine1, 60)
	checkLength(c, "address.addressLine2", addr.AddressLine2, 60)
	if strings.TrimSpace(addr.City) == "" {
		c.Add(RuleAddressCity, "address.city", "city is required")
	}
	checkLength(c, "address.city", addr.City, 30)
	if strings.TrimSpace(addr.PostalCode) == "" {
		c.Add(RuleAddressPostcode, "address.postalCode", "postal code is required")
	}
	checkLength(c, "address.postalCode", addr.PostalCode, 15)
}

// ValidatePay applies the shared hire/rehire pay rules.
func ValidatePay(c *Collector, policy config.Policy, rate decimal.Decimal, freq domain.PayFrequency) {
	if !rate.IsPositive() || rate.GreaterThan(policy.MaxPayRate) {
		c.Addf(RulePayRate, "payRate", "pay rate must be greater than 0 and at most %s", policy.MaxPayRate.StringFixed(2))
	}
	if !freq.Valid() {
		c.Add(RulePayFrequency, "payFrequency", "pay frequency must be Monthly or BiWeekly")
	}
}
