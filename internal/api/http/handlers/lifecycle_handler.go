package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-service/internal/api/dto"
	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/service"
)

// LifecycleHandler exposes hire, terminate and rehire transitions.
type LifecycleHandler struct {
	service *service.LifecycleService
}

// NewLifecycleHandler constructs handler.
func NewLifecycleHandler(lifecycleService *service.LifecycleService) *LifecycleHandler {
	return &LifecycleHandler{service: lifecycleService}
}

// Hire POST /employees/:id/hire.
func (h *LifecycleHandler) Hire(c *fiber.Ctx) error {
	id, err := parseEntityID(c)
	if err != nil {
		return err
	}
	var req dto.HireRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	var p requestParser
	cmd := domain.HireCommand{
		DepartmentID:  req.DepartmentID,
		ShiftID:       req.ShiftID,
		HireDate:      p.date("hireDate", req.HireDate),
		PayRate:       req.PayRate,
		PayFrequency:  p.payFrequency("payFrequency", req.PayFrequency),
		VacationHours: req.VacationHours,
		SickHours:     req.SickHours,
		ManagerID:     req.ManagerID,
	}
	if err := p.err(); err != nil {
		return err
	}
	if err := h.service.Hire(c.UserContext(), id, cmd); err != nil {
		return err
	}
	return h.respondStatus(c, id)
}

// Terminate POST /employees/:id/terminate.
func (h *LifecycleHandler) Terminate(c *fiber.Ctx) error {
	id, err := parseEntityID(c)
	if err != nil {
		return err
	}
	var req dto.TerminateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	var p requestParser
	cmd := domain.TerminateCommand{
		TerminationDate: p.date("terminationDate", req.TerminationDate),
		Reason:          req.Reason,
		Type:            domain.TerminationType(req.TerminationType),
		PayoutPto:       req.PayoutPto,
	}
	if err := p.err(); err != nil {
		return err
	}
	result, err := h.service.Terminate(c.UserContext(), id, cmd)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": terminationResponse(result)})
}

// Rehire POST /employees/:id/rehire.
func (h *LifecycleHandler) Rehire(c *fiber.Ctx) error {
	id, err := parseEntityID(c)
	if err != nil {
		return err
	}
	var req dto.RehireRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	var p requestParser
	cmd := domain.RehireCommand{
		DepartmentID:     req.DepartmentID,
		ShiftID:          req.ShiftID,
		RehireDate:       p.date("rehireDate", req.RehireDate),
		PayRate:          req.PayRate,
		PayFrequency:     p.payFrequency("payFrequency", req.PayFrequency),
		RestoreSeniority: req.RestoreSeniority,
	}
	if err := p.err(); err != nil {
		return err
	}
	if err := h.service.Rehire(c.UserContext(), id, cmd); err != nil {
		return err
	}
	return h.respondStatus(c, id)
}

// Status GET /employees/:id/lifecycle.
func (h *LifecycleHandler) Status(c *fiber.Ctx) error {
	id, err := parseEntityID(c)
	if err != nil {
		return err
	}
	return h.respondStatus(c, id)
}

// History GET /employees/:id/history.
func (h *LifecycleHandler) History(c *fiber.Ctx) error {
	id, err := parseEntityID(c)
	if err != nil {
		return err
	}
	entries, err := h.service.History(c.UserContext(), id)
	if err != nil {
		return err
	}
	items := make([]dto.LifecycleHistoryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, historyResponse(e))
	}
	return c.JSON(fiber.Map{"data": items})
}

func (h *LifecycleHandler) respondStatus(c *fiber.Ctx, id int) error {
	status, err := h.service.GetLifecycleStatus(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": lifecycleStatusResponse(status)})
}
