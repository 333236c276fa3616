// Package validation holds the business rules that gate staff and lifecycle
// writes. Rules collect every violation instead of stopping at the first.
package validation

import (
	"fmt"

	apperrors "github.com/spec-kit/staff-service/pkg/util/errorutil"
)

// Stable rule codes reported to callers.
const (
	RulePersonFirstName      = "PERSON_FIRST_NAME"
	RulePersonLastName       = "PERSON_LAST_NAME"
	RulePersonNameLength     = "PERSON_NAME_LENGTH"
	RulePersonEmailPromotion = "PERSON_EMAIL_PROMOTION"

	RuleNationalIDRequired = "EMPLOYEE_NATIONAL_ID_REQUIRED"
	RuleLoginIDRequired    = "EMPLOYEE_LOGIN_ID_REQUIRED"
	RuleJobTitleRequired   = "EMPLOYEE_JOB_TITLE_REQUIRED"
	RuleFieldLength        = "FIELD_LENGTH"
	RuleBirthDateRequired  = "EMPLOYEE_BIRTH_DATE_REQUIRED"
	RuleHireDateRequired   = "EMPLOYEE_HIRE_DATE_REQUIRED"
	RuleMinimumAge         = "EMPLOYEE_MINIMUM_AGE"
	RuleGender             = "EMPLOYEE_GENDER"
	RuleMaritalStatus      = "EMPLOYEE_MARITAL_STATUS"
	RuleOrganizationLevel  = "EMPLOYEE_ORGANIZATION_LEVEL"
	RuleVacationHours      = "VACATION_HOURS_RANGE"
	RuleSickHours          = "SICK_HOURS_RANGE"
	RuleNationalIDUnique   = "NATIONAL_ID_UNIQUE"
	RuleLoginIDUnique      = "LOGIN_ID_UNIQUE"
	RuleImmutableField     = "IMMUTABLE_FIELD"

	RuleSalesCommission  = "SALES_COMMISSION_RANGE"
	RuleSalesQuota       = "SALES_QUOTA_POSITIVE"
	RuleSalesBonus       = "SALES_BONUS_NON_NEGATIVE"
	RuleSalesRoleMissing = "SALES_ROLE_NOT_PRESENT"

	RulePhoneRequired   = "PHONE_NUMBER_REQUIRED"
	RuleEmailRequired   = "EMAIL_ADDRESS_REQUIRED"
	RuleEmailFormat     = "EMAIL_ADDRESS_FORMAT"
	RuleAddressLine     = "ADDRESS_LINE1_REQUIRED"
	RuleAddressCity     = "ADDRESS_CITY_REQUIRED"
	RuleAddressPostcode = "ADDRESS_POSTAL_CODE_REQUIRED"

	RulePayRate      = "PAY_RATE_RANGE"
	RulePayFrequency = "PAY_FREQUENCY"

	RuleAlreadyHired        = "EMPLOYEE_ALREADY_HIRED"
	RuleHireDateFuture      = "HIRE_DATE_TOO_FAR_IN_FUTURE"
	RuleManagerSelf         = "MANAGER_SELF"
	RuleManagerNotFound     = "MANAGER_NOT_FOUND"
	RuleManagerNotActive    = "MANAGER_NOT_ACTIVE"
	RuleNotActive           = "EMPLOYEE_NOT_ACTIVE"
	RuleTerminationDate     = "TERMINATION_DATE_REQUIRED"
	RuleTerminationFuture   = "TERMINATION_DATE_TOO_FAR_IN_FUTURE"
	RuleTerminationBefore   = "TERMINATION_DATE_BEFORE_ASSIGNMENT_START"
	RuleTerminationReason   = "TERMINATION_REASON_REQUIRED"
	RuleTerminationReasonSz = "TERMINATION_REASON_LENGTH"
	RuleTerminationType     = "TERMINATION_TYPE"
	RuleNotTerminated       = "EMPLOYEE_NOT_TERMINATED"
	RuleRehireDate          = "REHIRE_DATE_REQUIRED"
	RuleRehireDateInPast    = "REHIRE_DATE_IN_PAST"
	RuleRehireCoolingOff    = "REHIRE_COOLING_OFF"

	RuleMalformedRequest = "MALFORMED_REQUEST"
	RuleFieldFormat      = "FIELD_FORMAT"
)

// Collector accumulates violations across rule groups.
type Collector struct {
	violations []apperrors.Violation
}

func (c *Collector) Add(rule, field, message string) {
	c.violations = append(c.violations, apperrors.Violation{Rule: rule, Field: field, Message: message})
}

func (c *Collector) Addf(rule, field, format string, args ...any) {
	c.Add(rule, field, fmt.Sprintf(format, args...))
}

// Extend appends violations produced elsewhere, e.g. by lookup checks.
func (c *Collector) Extend(violations []apperrors.Violation) {
	c.violations = append(c.violations, violations...)
}

func (c *Collector) Violations() []apperrors.Violation {
	return c.violations
}

// Err returns a validation failure carrying every violation, or nil.
func (c *Collector) Err() error {
	if len(c.violations) == 0 {
		return nil
	}
	return apperrors.NewValidationFailure(c.violations)
}
