package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/validation"
	apperrors "github.com/spec-kit/staff-service/pkg/util/errorutil"
)

const dateLayout = "2006-01-02"

// requestParser accumulates format violations while a request body is turned
// into a command, so one response lists every malformed field.
type requestParser struct {
	c validation.Collector
}

func (p *requestParser) date(field, value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		p.c.Addf(validation.RuleFieldFormat, field, "%s must be a YYYY-MM-DD date", field)
		return time.Time{}
	}
	return t
}

func (p *requestParser) optionalDate(field string, value *string) *time.Time {
	if value == nil {
		return nil
	}
	t := p.date(field, *value)
	return &t
}

func (p *requestParser) payFrequency(field, value string) domain.PayFrequency {
	freq, err := domain.ParsePayFrequency(value)
	if err != nil {
		p.c.Addf(validation.RuleFieldFormat, field, "%s must be Monthly or BiWeekly", field)
	}
	return freq
}

func (p *requestParser) err() error {
	return p.c.Err()
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationFailure([]apperrors.Violation{{
			Rule:    validation.RuleMalformedRequest,
			Field:   "body",
			Message: "request body is not valid JSON",
		}})
	}
	return nil
}

func parseEntityID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationFailure([]apperrors.Violation{{
			Rule:    validation.RuleFieldFormat,
			Field:   "id",
			Message: "id must be a positive integer",
		}})
	}
	return id, nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}
