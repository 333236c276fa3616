package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spec-kit/staff-service/internal/config"
	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/events"
	"github.com/spec-kit/staff-service/internal/repository"
	"github.com/spec-kit/staff-service/internal/validation"
	apperrors "github.com/spec-kit/staff-service/pkg/util/errorutil"
)

// StaffService creates, updates and reads staff aggregates.
type StaffService struct {
	store      repository.Store
	allocator  *IdentityAllocator
	policy     config.Policy
	dispatcher events.Dispatcher
	logger     *zap.Logger
	clock      Clock
}

// StaffDependencies bundles collaborators of StaffService.
type StaffDependencies struct {
	Store      repository.Store
	Allocator  *IdentityAllocator
	Policy     config.Policy
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Clock      Clock
}

// NewStaffService constructs the service.
func NewStaffService(deps StaffDependencies) *StaffService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	allocator := deps.Allocator
	if allocator == nil {
		allocator = NewIdentityAllocator(nil, deps.Clock)
	}
	return &StaffService{
		store:      deps.Store,
		allocator:  allocator,
		policy:     deps.Policy,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		clock:      deps.Clock,
	}
}

// CreateStaff validates the full input graph, then writes identity, person,
// employee, optional sales person and the three contact channels in one
// transaction. It returns the allocated identity id.
func (s *StaffService) CreateStaff(ctx context.Context, cmd domain.CreateStaffCommand) (int, error) {
	now := s.clock.now()
	asOf := cmd.AsOf
	if asOf.IsZero() {
		asOf = now
	}

	personType := domain.PersonTypeEmployee
	if cmd.SalesRole != nil {
		personType = domain.PersonTypeSalesPerson
	}
	person := domain.Person{
		PersonType:     personType,
		NameStyle:      cmd.Person.NameStyle,
		Title:          strings.TrimSpace(cmd.Person.Title),
		FirstName:      strings.TrimSpace(cmd.Person.FirstName),
		MiddleName:     strings.TrimSpace(cmd.Person.MiddleName),
		LastName:       strings.TrimSpace(cmd.Person.LastName),
		Suffix:         strings.TrimSpace(cmd.Person.Suffix),
		EmailPromotion: cmd.Person.EmailPromotion,
	}
	emp := domain.Employee{
		NationalIDNumber:  strings.TrimSpace(cmd.Employment.NationalIDNumber),
		LoginID:           strings.TrimSpace(cmd.Employment.LoginID),
		OrganizationLevel: cmd.Employment.OrganizationLevel,
		JobTitle:          strings.TrimSpace(cmd.Employment.JobTitle),
		BirthDate:         domain.DateOf(cmd.Employment.BirthDate),
		MaritalStatus:     cmd.Employment.MaritalStatus,
		Gender:            cmd.Employment.Gender,
		HireDate:          domain.DateOf(cmd.Employment.HireDate),
		SalariedFlag:      cmd.Employment.SalariedFlag,
		CurrentFlag:       true,
	}
	var sales *domain.SalesPerson
	if cmd.SalesRole != nil {
		sales = &domain.SalesPerson{
			TerritoryID:   cmd.SalesRole.TerritoryID,
			SalesQuota:    cmd.SalesRole.SalesQuota,
			Bonus:         cmd.SalesRole.Bonus,
			CommissionPct: cmd.SalesRole.CommissionPct,
			SalesYTD:      decimal.Zero,
			SalesLastYear: decimal.Zero,
		}
	}
	address := domain.Address{
		AddressLine1:    strings.TrimSpace(cmd.Address.AddressLine1),
		AddressLine2:    strings.TrimSpace(cmd.Address.AddressLine2),
		City:            strings.TrimSpace(cmd.Address.City),
		StateProvinceID: cmd.Address.StateProvinceID,
		PostalCode:      strings.TrimSpace(cmd.Address.PostalCode),
	}

	if err := s.validateCreate(ctx, asOf, cmd, person, emp, sales, address); err != nil {
		return 0, err
	}

	var id int
	err := s.store.WithTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		identity, err := s.allocator.Allocate(ctx, repos.Identities)
		if err != nil {
			return err
		}
		id = identity.ID

		person.BusinessEntityID = id
		person.RowGUID = s.allocator.GUID()
		person.ModifiedDate = now
		if err := repos.Persons.Create(ctx, &person); err != nil {
			return err
		}

		emp.BusinessEntityID = id
		emp.RowGUID = s.allocator.GUID()
		emp.ModifiedDate = now
		if err := repos.Employees.Create(ctx, &emp); err != nil {
			return err
		}

		if sales != nil {
			sales.BusinessEntityID = id
			sales.RowGUID = s.allocator.GUID()
			sales.ModifiedDate = now
			if err := repos.SalesPeople.Create(ctx, sales); err != nil {
				return err
			}
		}

		if err := repos.Contacts.CreatePhone(ctx, &domain.Phone{
			BusinessEntityID:  id,
			PhoneNumber:       strings.TrimSpace(cmd.Phone.PhoneNumber),
			PhoneNumberTypeID: cmd.Phone.PhoneNumberTypeID,
			ModifiedDate:      now,
		}); err != nil {
			return err
		}
		if err := repos.Contacts.CreateEmail(ctx, &domain.EmailAddress{
			BusinessEntityID: id,
			Address:          strings.TrimSpace(cmd.Email.Address),
			RowGUID:          s.allocator.GUID(),
			ModifiedDate:     now,
		}); err != nil {
			return err
		}

		address.RowGUID = s.allocator.GUID()
		address.ModifiedDate = now
		if err := repos.Contacts.CreateAddress(ctx, &address); err != nil {
			return err
		}
		return repos.Contacts.LinkAddress(ctx, &domain.AddressLink{
			BusinessEntityID: id,
			AddressID:        address.AddressID,
			AddressTypeID:    cmd.AddressTypeID,
			RowGUID:          s.allocator.GUID(),
			ModifiedDate:     now,
		})
	})
	if err != nil {
		return 0, storeError(err)
	}

	s.logger.Info("staff created",
		zap.Int("employee_id", id),
		zap.String("login_id", emp.LoginID),
		zap.Bool("sales_person", sales != nil))
	s.publish(ctx, events.NewEvent(events.EventStaffCreated, id, now, events.StaffCreatedPayload{
		FullName:      person.FullName(),
		LoginID:       emp.LoginID,
		IsSalesPerson: sales != nil,
	}))
	return id, nil
}

func (s *StaffService) validateCreate(ctx context.Context, asOf time.Time, cmd domain.CreateStaffCommand, person domain.Person, emp domain.Employee, sales *domain.SalesPerson, address domain.Address) error {
	var c validation.Collector
	validation.ValidatePerson(&c, person)
	validation.ValidateEmployee(&c, s.policy, emp)
	if !emp.HireDate.IsZero() {
		validation.ValidateHireDateHorizon(&c, s.policy, asOf, emp.HireDate, "employment.hireDate")
	}
	if sales != nil {
		validation.ValidateSalesPerson(&c, *sales)
	}
	validation.ValidatePhone(&c, cmd.Phone)
	validation.ValidateEmail(&c, cmd.Email)
	validation.ValidateAddress(&c, address)

	violations, err := validation.CheckLookups(ctx, s.store.Lookups(), []validation.LookupCheck{
		{Kind: domain.LookupPhoneNumberType, ID: cmd.Phone.PhoneNumberTypeID, Field: "phone.phoneNumberTypeId"},
		{Kind: domain.LookupStateProvince, ID: address.StateProvinceID, Field: "address.stateProvinceId"},
		{Kind: domain.LookupAddressType, ID: cmd.AddressTypeID, Field: "addressTypeId"},
	})
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	c.Extend(violations)

	if err := s.checkUniqueness(ctx, &c, emp); err != nil {
		return apperrors.NewStorageError(err)
	}
	return c.Err()
}

// checkUniqueness reports national id and login id clashes up front; the
// unique constraints still back this up at commit.
func (s *StaffService) checkUniqueness(ctx context.Context, c *validation.Collector, emp domain.Employee) error {
	employees := s.store.Repositories().Employees
	var nationalTaken, loginTaken bool

	g, gctx := errgroup.WithContext(ctx)
	if emp.NationalIDNumber != "" {
		g.Go(func() error {
			var err error
			nationalTaken, err = employees.ExistsByNationalID(gctx, emp.NationalIDNumber)
			return err
		})
	}
	if emp.LoginID != "" {
		g.Go(func() error {
			var err error
			loginTaken, err = employees.ExistsByLoginID(gctx, emp.LoginID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if nationalTaken {
		c.Add(validation.RuleNationalIDUnique, "employment.nationalIdNumber", "national id number is already registered")
	}
	if loginTaken {
		c.Add(validation.RuleLoginIDUnique, "employment.loginId", "login id is already registered")
	}
	return nil
}

// UpdateStaff applies the mutable subset of person, employment and sales role
// fields. Immutable fields are accepted only when unchanged.
func (s *StaffService) UpdateStaff(ctx context.Context, id int, cmd domain.UpdateStaffCommand) (*domain.StaffMember, error) {
	now := s.clock.now()
	current, err := repository.LoadStaffMember(ctx, s.store.Repositories(), id)
	if err != nil {
		return nil, loadError(err, "staff member", id)
	}

	var c validation.Collector
	checkImmutable(&c, current.Employee, cmd.Employment)

	person := current.Person
	changed := applyPersonPatch(&person, cmd.Person)
	emp := current.Employee
	changed = append(changed, applyEmploymentPatch(&emp, cmd.Employment)...)

	var sales *domain.SalesPerson
	if cmd.SalesRole != nil {
		if current.SalesPerson == nil {
			c.Add(validation.RuleSalesRoleMissing, "salesRole", "staff member has no sales role to update")
		} else {
			updated := *current.SalesPerson
			changed = append(changed, applySalesPatch(&updated, *cmd.SalesRole)...)
			sales = &updated
		}
	}

	validation.ValidatePerson(&c, person)
	validation.ValidateEmployee(&c, s.policy, emp)
	if sales != nil {
		validation.ValidateSalesPerson(&c, *sales)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		person.ModifiedDate = now
		if err := repos.Persons.Update(ctx, &person); err != nil {
			return err
		}
		emp.ModifiedDate = now
		if err := repos.Employees.Update(ctx, &emp); err != nil {
			return err
		}
		if sales != nil {
			sales.ModifiedDate = now
			if err := repos.SalesPeople.Update(ctx, sales); err != nil {
				return err
			}
		}
		return repos.Identities.Touch(ctx, id, now)
	})
	if err != nil {
		return nil, storeError(err)
	}

	s.logger.Info("staff updated", zap.Int("employee_id", id), zap.Strings("fields", changed))
	s.publish(ctx, events.NewEvent(events.EventStaffUpdated, id, now, events.StaffUpdatedPayload{Fields: changed}))
	return s.GetStaff(ctx, id)
}

// UpdateAddress edits the primary linked address of a staff member.
func (s *StaffService) UpdateAddress(ctx context.Context, id int, patch domain.AddressPatch) (*domain.Address, error) {
	now := s.clock.now()
	repos := s.store.Repositories()
	if _, err := repos.Identities.GetByID(ctx, id); err != nil {
		return nil, loadError(err, "staff member", id)
	}
	linked, err := repos.Contacts.ListAddresses(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	if len(linked) == 0 {
		return nil, apperrors.NewNotFound("address", map[string]any{"id": id})
	}

	addr := linked[0].Address
	applyAddressPatch(&addr, patch)

	var c validation.Collector
	validation.ValidateAddress(&c, addr)
	violations, err := validation.CheckLookups(ctx, s.store.Lookups(), []validation.LookupCheck{
		{Kind: domain.LookupStateProvince, ID: addr.StateProvinceID, Field: "address.stateProvinceId"},
	})
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	c.Extend(violations)
	if err := c.Err(); err != nil {
		return nil, err
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		addr.ModifiedDate = now
		if err := repos.Contacts.UpdateAddress(ctx, &addr); err != nil {
			return err
		}
		return repos.Identities.Touch(ctx, id, now)
	})
	if err != nil {
		return nil, storeError(err)
	}
	s.logger.Info("staff address updated", zap.Int("employee_id", id), zap.Int("address_id", addr.AddressID))
	return &addr, nil
}

// GetStaff reads the full aggregate.
func (s *StaffService) GetStaff(ctx context.Context, id int) (*domain.StaffMember, error) {
	staff, err := repository.LoadStaffMember(ctx, s.store.Repositories(), id)
	if err != nil {
		return nil, loadError(err, "staff member", id)
	}
	return staff, nil
}

func (s *StaffService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed",
			zap.String("event_type", string(event.Type)),
			zap.Int("employee_id", event.EmployeeID),
			zap.Error(err))
	}
}

func checkImmutable(c *validation.Collector, emp domain.Employee, patch domain.EmploymentPatch) {
	reject := func(field string) {
		c.Addf(validation.RuleImmutableField, field, "%s cannot be changed", field)
	}
	if patch.NationalIDNumber != nil && strings.TrimSpace(*patch.NationalIDNumber) != emp.NationalIDNumber {
		reject("employment.nationalIdNumber")
	}
	if patch.LoginID != nil && strings.TrimSpace(*patch.LoginID) != emp.LoginID {
		reject("employment.loginId")
	}
	if patch.BirthDate != nil && !domain.DateOf(*patch.BirthDate).Equal(domain.DateOf(emp.BirthDate)) {
		reject("employment.birthDate")
	}
	if patch.HireDate != nil && !domain.DateOf(*patch.HireDate).Equal(domain.DateOf(emp.HireDate)) {
		reject("employment.hireDate")
	}
}

func applyPersonPatch(p *domain.Person, patch domain.PersonPatch) []string {
	var changed []string
	setString := func(dst *string, src *string, field string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
			changed = append(changed, field)
		}
	}
	setString(&p.Title, patch.Title, "person.title")
	setString(&p.FirstName, patch.FirstName, "person.firstName")
	setString(&p.MiddleName, patch.MiddleName, "person.middleName")
	setString(&p.LastName, patch.LastName, "person.lastName")
	setString(&p.Suffix, patch.Suffix, "person.suffix")
	if patch.NameStyle != nil {
		p.NameStyle = *patch.NameStyle
		changed = append(changed, "person.nameStyle")
	}
	if patch.EmailPromotion != nil {
		p.EmailPromotion = *patch.EmailPromotion
		changed = append(changed, "person.emailPromotion")
	}
	return changed
}

func applyEmploymentPatch(emp *domain.Employee, patch domain.EmploymentPatch) []string {
	var changed []string
	if patch.JobTitle != nil {
		emp.JobTitle = strings.TrimSpace(*patch.JobTitle)
		changed = append(changed, "employment.jobTitle")
	}
	if patch.MaritalStatus != nil {
		emp.MaritalStatus = *patch.MaritalStatus
		changed = append(changed, "employment.maritalStatus")
	}
	if patch.Gender != nil {
		emp.Gender = *patch.Gender
		changed = append(changed, "employment.gender")
	}
	if patch.SalariedFlag != nil {
		emp.SalariedFlag = *patch.SalariedFlag
		changed = append(changed, "employment.salariedFlag")
	}
	if patch.OrganizationLevel != nil {
		level := *patch.OrganizationLevel
		emp.OrganizationLevel = &level
		changed = append(changed, "employment.organizationLevel")
	}
	if patch.VacationHours != nil {
		emp.VacationHours = *patch.VacationHours
		changed = append(changed, "employment.vacationHours")
	}
	if patch.SickLeaveHours != nil {
		emp.SickLeaveHours = *patch.SickLeaveHours
		changed = append(changed, "employment.sickLeaveHours")
	}
	return changed
}

func applySalesPatch(sp *domain.SalesPerson, patch domain.SalesRolePatch) []string {
	var changed []string
	if patch.TerritoryID != nil {
		territory := *patch.TerritoryID
		sp.TerritoryID = &territory
		changed = append(changed, "salesRole.territoryId")
	}
	if patch.SalesQuota != nil {
		quota := *patch.SalesQuota
		sp.SalesQuota = &quota
		changed = append(changed, "salesRole.salesQuota")
	}
	if patch.Bonus != nil {
		sp.Bonus = *patch.Bonus
		changed = append(changed, "salesRole.bonus")
	}
	if patch.CommissionPct != nil {
		sp.CommissionPct = *patch.CommissionPct
		changed = append(changed, "salesRole.commissionPct")
	}
	return changed
}

func applyAddressPatch(addr *domain.Address, patch domain.AddressPatch) {
	if patch.AddressLine1 != nil {
		addr.AddressLine1 = strings.TrimSpace(*patch.AddressLine1)
	}
	if patch.AddressLine2 != nil {
		addr.AddressLine2 = strings.TrimSpace(*patch.AddressLine2)
	}
	if patch.City != nil {
		addr.City = strings.TrimSpace(*patch.City)
	}
	if patch.StateProvinceID != nil {
		addr.StateProvinceID = *patch.StateProvinceID
	}
	if patch.PostalCode != nil {
		addr.PostalCode = strings.TrimSpace(*patch.PostalCode)
	}
}
