package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-service/internal/api/dto"
	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/service"
)

// StaffHandler exposes staff aggregate endpoints.
type StaffHandler struct {
	service *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{service: staffService}
}

// Create POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	var p requestParser
	cmd := domain.CreateStaffCommand{
		Person: domain.PersonInput{
			Title:          req.Person.Title,
			FirstName:      req.Person.FirstName,
			MiddleName:     req.Person.MiddleName,
			LastName:       req.Person.LastName,
			Suffix:         req.Person.Suffix,
			NameStyle:      req.Person.NameStyle,
			EmailPromotion: req.Person.EmailPromotion,
		},
		Employment: domain.EmploymentInput{
			NationalIDNumber:  req.Employment.NationalIDNumber,
			LoginID:           req.Employment.LoginID,
			OrganizationLevel: req.Employment.OrganizationLevel,
			JobTitle:          req.Employment.JobTitle,
			BirthDate:         p.date("employment.birthDate", req.Employment.BirthDate),
			MaritalStatus:     req.Employment.MaritalStatus,
			Gender:            req.Employment.Gender,
			HireDate:          p.date("employment.hireDate", req.Employment.HireDate),
			SalariedFlag:      req.Employment.SalariedFlag,
		},
		Phone: domain.PhoneInput{
			PhoneNumber:       req.Phone.PhoneNumber,
			PhoneNumberTypeID: req.Phone.PhoneNumberTypeID,
		},
		Email: domain.EmailInput{Address: req.Email.Address},
		Address: domain.AddressInput{
			AddressLine1:    req.Address.AddressLine1,
			AddressLine2:    req.Address.AddressLine2,
			City:            req.Address.City,
			StateProvinceID: req.Address.StateProvinceID,
			PostalCode:      req.Address.PostalCode,
		},
		AddressTypeID: req.AddressTypeID,
		AsOf:          p.date("asOf", req.AsOf),
	}
	if sr := req.SalesRole; sr != nil {
		cmd.SalesRole = &domain.SalesRoleInput{
			TerritoryID:   sr.TerritoryID,
			SalesQuota:    sr.SalesQuota,
			Bonus:         sr.Bonus,
			CommissionPct: sr.CommissionPct,
		}
	}
	if err := p.err(); err != nil {
		return err
	}

	id, err := h.service.CreateStaff(c.UserContext(), cmd)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"id": id}})
}

// Get GET /staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	id, err := parseEntityID(c)
	if err != nil {
		return err
	}
	staff, err := h.service.GetStaff(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponse(staff)})
}

// Update PUT /staff/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, err := parseEntityID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateStaffRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	var p requestParser
	emp := req.Employment
	cmd := domain.UpdateStaffCommand{
		Person: domain.PersonPatch{
			Title:          req.Person.Title,
			FirstName:      req.Person.FirstName,
			MiddleName:     req.Person.MiddleName,
			LastName:       req.Person.LastName,
			Suffix:         req.Person.Suffix,
			NameStyle:      req.Person.NameStyle,
			EmailPromotion: req.Person.EmailPromotion,
		},
		Employment: domain.EmploymentPatch{
			JobTitle:          emp.JobTitle,
			MaritalStatus:     emp.MaritalStatus,
			Gender:            emp.Gender,
			SalariedFlag:      emp.SalariedFlag,
			OrganizationLevel: emp.OrganizationLevel,
			VacationHours:     emp.VacationHours,
			SickLeaveHours:    emp.SickLeaveHours,
			NationalIDNumber:  emp.NationalIDNumber,
			LoginID:           emp.LoginID,
			BirthDate:         p.optionalDate("employment.birthDate", emp.BirthDate),
			HireDate:          p.optionalDate("employment.hireDate", emp.HireDate),
		},
		AsOf: p.date("asOf", req.AsOf),
	}
	if sr := req.SalesRole; sr != nil {
		cmd.SalesRole = &domain.SalesRolePatch{
			TerritoryID:   sr.TerritoryID,
			SalesQuota:    sr.SalesQuota,
			Bonus:         sr.Bonus,
			CommissionPct: sr.CommissionPct,
		}
	}
	if err := p.err(); err != nil {
		return err
	}

	staff, err := h.service.UpdateStaff(c.UserContext(), id, cmd)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponse(staff)})
}

// UpdateAddress PUT /staff/:id/address.
func (h *StaffHandler) UpdateAddress(c *fiber.Ctx) error {
	id, err := parseEntityID(c)
	if err != nil {
		return err
	}
	var req dto.AddressPatchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	addr, err := h.service.UpdateAddress(c.UserContext(), id, domain.AddressPatch{
		AddressLine1:    req.AddressLine1,
		AddressLine2:    req.AddressLine2,
		City:            req.City,
		StateProvinceID: req.StateProvinceID,
		PostalCode:      req.PostalCode,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": addressResponse(*addr, 0)})
}
