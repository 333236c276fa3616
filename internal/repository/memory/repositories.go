package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/repository"
)

type identityRepository struct{ v *view }

func (r *identityRepository) Create(_ context.Context, identity *domain.Identity) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	identity.ID = st.nextEntityID
	st.nextEntityID++
	st.identities[identity.ID] = *identity
	return nil
}

func (r *identityRepository) Touch(_ context.Context, id int, at time.Time) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	identity, ok := st.identities[id]
	if !ok {
		return repository.ErrNotFound
	}
	identity.ModifiedDate = at
	st.identities[id] = identity
	return nil
}

func (r *identityRepository) GetByID(_ context.Context, id int) (*domain.Identity, error) {
	r.v.mu.RLock()
	defer r.v.mu.RUnlock()

	identity, ok := r.v.state().identities[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &identity, nil
}

type personRepository struct{ v *view }

func (r *personRepository) Create(_ context.Context, p *domain.Person) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	if _, ok := st.identities[p.BusinessEntityID]; !ok {
		return fmt.Errorf("person %d: identity missing", p.BusinessEntityID)
	}
	if _, ok := st.persons[p.BusinessEntityID]; ok {
		return fmt.Errorf("%w: person %d", repository.ErrDuplicate, p.BusinessEntityID)
	}
	st.persons[p.BusinessEntityID] = *p
	return nil
}

func (r *personRepository) Update(_ context.Context, p *domain.Person) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	if _, ok := st.persons[p.BusinessEntityID]; !ok {
		return repository.ErrNotFound
	}
	st.persons[p.BusinessEntityID] = *p
	return nil
}

func (r *personRepository) GetByID(_ context.Context, id int) (*domain.Person, error) {
	r.v.mu.RLock()
	defer r.v.mu.RUnlock()

	p, ok := r.v.state().persons[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

type employeeRepository struct{ v *view }

func (r *employeeRepository) Create(_ context.Context, emp *domain.Employee) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	if _, ok := st.persons[emp.BusinessEntityID]; !ok {
		return fmt.Errorf("employee %d: person missing", emp.BusinessEntityID)
	}
	if _, ok := st.employees[emp.BusinessEntityID]; ok {
		return fmt.Errorf("%w: employee %d", repository.ErrDuplicate, emp.BusinessEntityID)
	}
	for _, other := range st.employees {
		if other.NationalIDNumber == emp.NationalIDNumber {
			return fmt.Errorf("%w: ux_employee_national_id_number", repository.ErrDuplicate)
		}
		if other.LoginID == emp.LoginID {
			return fmt.Errorf("%w: ux_employee_login_id", repository.ErrDuplicate)
		}
	}
	emp.Version = 1
	st.employees[emp.BusinessEntityID] = *emp
	return nil
}

func (r *employeeRepository) Update(_ context.Context, emp *domain.Employee) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	stored, ok := st.employees[emp.BusinessEntityID]
	if !ok {
		return repository.ErrNotFound
	}
	if stored.Version != emp.Version {
		return repository.ErrVersionConflict
	}
	next := *emp
	next.NationalIDNumber = stored.NationalIDNumber
	next.LoginID = stored.LoginID
	next.BirthDate = stored.BirthDate
	next.RowGUID = stored.RowGUID
	next.Version = stored.Version + 1
	st.employees[emp.BusinessEntityID] = next
	emp.Version = next.Version
	return nil
}

func (r *employeeRepository) GetByID(_ context.Context, id int) (*domain.Employee, error) {
	r.v.mu.RLock()
	defer r.v.mu.RUnlock()

	emp, ok := r.v.state().employees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &emp, nil
}

func (r *employeeRepository) ExistsByNationalID(_ context.Context, nationalID string) (bool, error) {
	r.v.mu.RLock()
	defer r.v.mu.RUnlock()

	for _, emp := range r.v.state().employees {
		if emp.NationalIDNumber == nationalID {
			return true, nil
		}
	}
	return false, nil
}

func (r *employeeRepository) ExistsByLoginID(_ context.Context, loginID string) (bool, error) {
	r.v.mu.RLock()
	defer r.v.mu.RUnlock()

	for _, emp := range r.v.state().employees {
		if emp.LoginID == loginID {
			return true, nil
		}
	}
	return false, nil
}

type salesPersonRepository struct{ v *view }

func (r *salesPersonRepository) Create(_ context.Context, sp *domain.SalesPerson) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	if _, ok := st.employees[sp.BusinessEntityID]; !ok {
		return fmt.Errorf("sales person %d: employee missing", sp.BusinessEntityID)
	}
	if _, ok := st.salesPeople[sp.BusinessEntityID]; ok {
		return fmt.Errorf("%w: sales person %d", repository.ErrDuplicate, sp.BusinessEntityID)
	}
	st.salesPeople[sp.BusinessEntityID] = *sp
	return nil
}

func (r *salesPersonRepository) Update(_ context.Context, sp *domain.SalesPerson) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	stored, ok := st.salesPeople[sp.BusinessEntityID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.TerritoryID = sp.TerritoryID
	stored.SalesQuota = sp.SalesQuota
	stored.Bonus = sp.Bonus
	stored.CommissionPct = sp.CommissionPct
	stored.ModifiedDate = sp.ModifiedDate
	st.salesPeople[sp.BusinessEntityID] = stored
	return nil
}

func (r *salesPersonRepository) GetByID(_ context.Context, id int) (*domain.SalesPerson, error) {
	r.v.mu.RLock()
	defer r.v.mu.RUnlock()

	sp, ok := r.v.state().salesPeople[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &sp, nil
}

type contactRepository struct{ v *view }

func (r *contactRepository) CreatePhone(_ context.Context, phone *domain.Phone) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	for _, existing := range st.phones[phone.BusinessEntityID] {
		if existing.PhoneNumber == phone.PhoneNumber && existing.PhoneNumberTypeID == phone.PhoneNumberTypeID {
			return fmt.Errorf("%w: person_phone", repository.ErrDuplicate)
		}
	}
	st.phones[phone.BusinessEntityID] = append(st.phones[phone.BusinessEntityID], *phone)
	return nil
}

func (r *contactRepository) CreateEmail(_ context.Context, email *domain.EmailAddress) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	email.EmailAddressID = st.nextEmailID
	st.nextEmailID++
	st.emails[email.BusinessEntityID] = append(st.emails[email.BusinessEntityID], *email)
	return nil
}

func (r *contactRepository) CreateAddress(_ context.Context, addr *domain.Address) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	addr.AddressID = st.nextAddressID
	st.nextAddressID++
	st.addresses[addr.AddressID] = *addr
	return nil
}

func (r *contactRepository) LinkAddress(_ context.Context, link *domain.AddressLink) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	if _, ok := st.addresses[link.AddressID]; !ok {
		return fmt.Errorf("address %d missing", link.AddressID)
	}
	for _, existing := range st.links[link.BusinessEntityID] {
		if existing.AddressID == link.AddressID && existing.AddressTypeID == link.AddressTypeID {
			return fmt.Errorf("%w: business_entity_address", repository.ErrDuplicate)
		}
	}
	st.links[link.BusinessEntityID] = append(st.links[link.BusinessEntityID], *link)
	return nil
}

func (r *contactRepository) UpdateAddress(_ context.Context, addr *domain.Address) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	stored, ok := st.addresses[addr.AddressID]
	if !ok {
		return repository.ErrNotFound
	}
	next := *addr
	next.RowGUID = stored.RowGUID
	st.addresses[addr.AddressID] = next
	return nil
}

func (r *contactRepository) ListPhones(_ context.Context, entityID int) ([]domain.Phone, error) {
	r.v.mu.RLock()
	defer r.v.mu.RUnlock()
	return append([]domain.Phone(nil), r.v.state().phones[entityID]...), nil
}

func (r *contactRepository) ListEmails(_ context.Context, entityID int) ([]domain.EmailAddress, error) {
	r.v.mu.RLock()
	defer r.v.mu.RUnlock()
	return append([]domain.EmailAddress(nil), r.v.state().emails[entityID]...), nil
}

func (r *contactRepository) ListAddresses(_ context.Context, entityID int) ([]domain.LinkedAddress, error) {
	r.v.mu.RLock()
	defer r.v.mu.RUnlock()
	st := r.v.state()

	var result []domain.LinkedAddress
	for _, link := range st.links[entityID] {
		result = append(result, domain.LinkedAddress{Link: link, Address: st.addresses[link.AddressID]})
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Link.AddressID < result[j].Link.AddressID })
	return result, nil
}

type assignmentRepository struct{ v *view }

func (r *assignmentRepository) Open(_ context.Context, a *domain.DepartmentAssignment) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	for _, existing := range st.assignments[a.BusinessEntityID] {
		if a.IsOpen() && existing.IsOpen() {
			return fmt.Errorf("%w: ux_employee_department_history_open", repository.ErrDuplicate)
		}
		if existing.StartDate.Equal(a.StartDate) && existing.DepartmentID == a.DepartmentID && existing.ShiftID == a.ShiftID {
			return fmt.Errorf("%w: employee_department_history_pkey", repository.ErrDuplicate)
		}
	}
	st.assignments[a.BusinessEntityID] = append(st.assignments[a.BusinessEntityID], *a)
	return nil
}

func (r *assignmentRepository) CloseOpen(_ context.Context, entityID int, endDate, at time.Time) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	list := st.assignments[entityID]
	closed := 0
	for i := range list {
		if list[i].IsOpen() {
			end := endDate
			list[i].EndDate = &end
			list[i].ModifiedDate = at
			closed++
		}
	}
	if closed == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *assignmentRepository) CountOpen(_ context.Context, entityID int) (int, error) {
	r.v.mu.RLock()
	defer r.v.mu.RUnlock()
	return len(domain.OpenAssignments(r.v.state().assignments[entityID])), nil
}

func (r *assignmentRepository) ListByEmployee(_ context.Context, entityID int) ([]domain.DepartmentAssignment, error) {
	r.v.mu.RLock()
	defer r.v.mu.RUnlock()

	list := append([]domain.DepartmentAssignment(nil), r.v.state().assignments[entityID]...)
	domain.SortAssignments(list)
	return list, nil
}

type payHistoryRepository struct{ v *view }

func (r *payHistoryRepository) Append(_ context.Context, entry *domain.PayHistoryEntry) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	for _, existing := range st.pay[entry.BusinessEntityID] {
		if existing.RateChangeDate.Equal(entry.RateChangeDate) {
			return fmt.Errorf("%w: employee_pay_history_pkey", repository.ErrDuplicate)
		}
	}
	st.pay[entry.BusinessEntityID] = append(st.pay[entry.BusinessEntityID], *entry)
	return nil
}

func (r *payHistoryRepository) ListByEmployee(_ context.Context, entityID int) ([]domain.PayHistoryEntry, error) {
	r.v.mu.RLock()
	defer r.v.mu.RUnlock()

	list := append([]domain.PayHistoryEntry(nil), r.v.state().pay[entityID]...)
	sort.SliceStable(list, func(i, j int) bool { return list[i].RateChangeDate.Before(list[j].RateChangeDate) })
	return list, nil
}

type historyRepository struct{ v *view }

func (r *historyRepository) Create(_ context.Context, history *domain.LifecycleHistory) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	st := r.v.state()

	history.ID = st.nextHistoryID
	st.nextHistoryID++
	history.CreatedAt = r.v.now()
	st.history[history.BusinessEntityID] = append(st.history[history.BusinessEntityID], *history)
	return nil
}

func (r *historyRepository) ListByEmployee(_ context.Context, entityID int) ([]domain.LifecycleHistory, error) {
	r.v.mu.RLock()
	defer r.v.mu.RUnlock()
	return append([]domain.LifecycleHistory(nil), r.v.state().history[entityID]...), nil
}

type lookupRepository struct {
	ref ReferenceData
}

func (r *lookupRepository) Exists(_ context.Context, kind domain.LookupKind, id int) (bool, error) {
	switch kind {
	case domain.LookupAddressType:
		_, ok := r.ref.AddressTypes[id]
		return ok, nil
	case domain.LookupPhoneNumberType:
		_, ok := r.ref.PhoneNumberTypes[id]
		return ok, nil
	case domain.LookupStateProvince:
		_, ok := r.ref.StateProvinces[id]
		return ok, nil
	case domain.LookupDepartment:
		_, err := r.GetDepartment(context.Background(), id)
		return err == nil, nil
	case domain.LookupShift:
		_, err := r.GetShift(context.Background(), id)
		return err == nil, nil
	}
	return false, fmt.Errorf("unknown lookup kind %q", kind)
}

func (r *lookupRepository) GetDepartment(_ context.Context, id int) (*domain.Department, error) {
	for _, dept := range r.ref.Departments {
		if dept.ID == id {
			d := dept
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *lookupRepository) GetShift(_ context.Context, id int) (*domain.Shift, error) {
	for _, shift := range r.ref.Shifts {
		if shift.ID == id {
			s := shift
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}
