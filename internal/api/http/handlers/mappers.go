package handlers

import (
	"github.com/spec-kit/staff-service/internal/api/dto"
	"github.com/spec-kit/staff-service/internal/domain"
)

func staffResponse(s *domain.StaffMember) dto.StaffResponse {
	resp := dto.StaffResponse{
		ID:           s.Identity.ID,
		RowGUID:      s.Identity.RowGUID.String(),
		ModifiedDate: s.Identity.ModifiedDate,
		Person: dto.PersonResponse{
			PersonType:     string(s.Person.PersonType),
			Title:          s.Person.Title,
			FirstName:      s.Person.FirstName,
			MiddleName:     s.Person.MiddleName,
			LastName:       s.Person.LastName,
			Suffix:         s.Person.Suffix,
			FullName:       s.Person.FullName(),
			NameStyle:      s.Person.NameStyle,
			EmailPromotion: s.Person.EmailPromotion,
		},
		Employment: dto.EmploymentResponse{
			NationalIDNumber:  s.Employee.NationalIDNumber,
			LoginID:           s.Employee.LoginID,
			OrganizationLevel: s.Employee.OrganizationLevel,
			JobTitle:          s.Employee.JobTitle,
			BirthDate:         formatDate(s.Employee.BirthDate),
			MaritalStatus:     s.Employee.MaritalStatus,
			Gender:            s.Employee.Gender,
			HireDate:          formatDate(s.Employee.HireDate),
			SalariedFlag:      s.Employee.SalariedFlag,
			VacationHours:     s.Employee.VacationHours,
			SickLeaveHours:    s.Employee.SickLeaveHours,
			CurrentFlag:       s.Employee.CurrentFlag,
			ManagerID:         s.Employee.ManagerID,
			Version:           s.Employee.Version,
		},
		Phones:      make([]dto.PhoneRequest, 0, len(s.Phones)),
		Emails:      make([]string, 0, len(s.Emails)),
		Addresses:   make([]dto.AddressResponse, 0, len(s.Addresses)),
		Assignments: make([]dto.AssignmentResponse, 0, len(s.Assignments)),
		PayHistory:  make([]dto.PayResponse, 0, len(s.PayHistory)),
	}
	if sp := s.SalesPerson; sp != nil {
		resp.SalesRole = &dto.SalesRoleResponse{
			TerritoryID:   sp.TerritoryID,
			SalesQuota:    sp.SalesQuota,
			Bonus:         sp.Bonus,
			CommissionPct: sp.CommissionPct,
			SalesYTD:      sp.SalesYTD,
			SalesLastYear: sp.SalesLastYear,
		}
	}
	for _, p := range s.Phones {
		resp.Phones = append(resp.Phones, dto.PhoneRequest{PhoneNumber: p.PhoneNumber, PhoneNumberTypeID: p.PhoneNumberTypeID})
	}
	for _, e := range s.Emails {
		resp.Emails = append(resp.Emails, e.Address)
	}
	for _, a := range s.Addresses {
		resp.Addresses = append(resp.Addresses, addressResponse(a.Address, a.Link.AddressTypeID))
	}
	for _, a := range s.Assignments {
		resp.Assignments = append(resp.Assignments, dto.AssignmentResponse{
			DepartmentID: a.DepartmentID,
			ShiftID:      a.ShiftID,
			StartDate:    formatDate(a.StartDate),
			EndDate:      formatDatePtr(a.EndDate),
		})
	}
	for _, p := range s.PayHistory {
		resp.PayHistory = append(resp.PayHistory, payResponse(p))
	}
	return resp
}

func addressResponse(a domain.Address, addressTypeID int) dto.AddressResponse {
	return dto.AddressResponse{
		AddressID:     a.AddressID,
		AddressTypeID: addressTypeID,
		AddressRequest: dto.AddressRequest{
			AddressLine1:    a.AddressLine1,
			AddressLine2:    a.AddressLine2,
			City:            a.City,
			StateProvinceID: a.StateProvinceID,
			PostalCode:      a.PostalCode,
		},
	}
}

func payResponse(p domain.PayHistoryEntry) dto.PayResponse {
	return dto.PayResponse{
		RateChangeDate: formatDate(p.RateChangeDate),
		Rate:           p.Rate,
		PayFrequency:   p.PayFrequency.String(),
	}
}

func lifecycleStatusResponse(s *domain.LifecycleStatus) dto.LifecycleStatusResponse {
	resp := dto.LifecycleStatusResponse{
		EmployeeID:           s.EmployeeID,
		FullName:             s.FullName,
		EmploymentStatus:     string(s.Status),
		HireDate:             formatDatePtr(s.HireDate),
		CurrentPeriodStart:   formatDatePtr(s.CurrentPeriodStart),
		TerminationDate:      formatDatePtr(s.TerminationDate),
		DaysEmployed:         s.DaysEmployed,
		VacationHoursBalance: s.VacationHours,
		SickHoursBalance:     s.SickLeaveHours,
		ManagerID:            s.ManagerID,
		RehireEligible:       s.RehireEligible,
		RehireEligibleFrom:   formatDatePtr(s.RehireEligibleFrom),
		RehireCount:          s.RehireCount,
	}
	if d := s.CurrentDepartment; d != nil {
		resp.CurrentDepartment = &dto.DepartmentResponse{ID: d.ID, Name: d.Name, GroupName: d.GroupName}
	}
	if sh := s.CurrentShift; sh != nil {
		resp.CurrentShift = &dto.ShiftResponse{ID: sh.ID, Name: sh.Name, StartTime: sh.StartTime, EndTime: sh.EndTime}
	}
	if s.CurrentPay != nil {
		pay := payResponse(*s.CurrentPay)
		resp.CurrentPay = &pay
	}
	return resp
}

func terminationResponse(r *domain.TerminationResult) dto.TerminationResponse {
	return dto.TerminationResponse{
		EmployeeID:          r.EmployeeID,
		TerminationDate:     formatDate(r.TerminationDate),
		PayoutApplied:       r.PayoutApplied,
		PayoutVacationHours: r.PayoutVacationHours,
		PayoutSickHours:     r.PayoutSickHours,
		PayoutAmount:        r.PayoutAmount,
	}
}

func historyResponse(h domain.LifecycleHistory) dto.LifecycleHistoryResponse {
	return dto.LifecycleHistoryResponse{
		ID:            h.ID,
		Transition:    string(h.Transition),
		EffectiveDate: formatDate(h.EffectiveDate),
		Details:       h.Details,
		CreatedAt:     h.CreatedAt,
	}
}
