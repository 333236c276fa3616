package validation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/repository"
	apperrors "github.com/spec-kit/staff-service/pkg/util/errorutil"
)

var lookupRules = map[domain.LookupKind]string{
	domain.LookupAddressType:     "ADDRESS_TYPE_NOT_FOUND",
	domain.LookupPhoneNumberType: "PHONE_NUMBER_TYPE_NOT_FOUND",
	domain.LookupStateProvince:   "STATE_PROVINCE_NOT_FOUND",
	domain.LookupDepartment:      "DEPARTMENT_NOT_FOUND",
	domain.LookupShift:           "SHIFT_NOT_FOUND",
}

// LookupRule returns the rule code reported when id of kind does not exist.
func LookupRule(kind domain.LookupKind) string {
	if rule, ok := lookupRules[kind]; ok {
		return rule
	}
	return "LOOKUP_NOT_FOUND"
}

// LookupCheck is one reference-data existence requirement.
type LookupCheck struct {
	Kind  domain.LookupKind
	ID    int
	Field string
}

// CheckLookups runs every check concurrently. Missing ids become violations in
// input order; a repository error aborts the whole pass and is returned as is.
func CheckLookups(ctx context.Context, lookups repository.LookupRepository, checks []LookupCheck) ([]apperrors.Violation, error) {
	found := make([]bool, len(checks))

	g, gctx := errgroup.WithContext(ctx)
	for i, check := range checks {
		g.Go(func() error {
			ok, err := lookups.Exists(gctx, check.Kind, check.ID)
			if err != nil {
				return fmt.Errorf("lookup %s %d: %w", check.Kind, check.ID, err)
			}
			found[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var violations []apperrors.Violation
	for i, check := range checks {
		if found[i] {
			continue
		}
		violations = append(violations, apperrors.Violation{
			Rule:    LookupRule(check.Kind),
			Field:   check.Field,
			Message: fmt.Sprintf("%s %d does not exist", check.Kind, check.ID),
		})
	}
	return violations, nil
}
