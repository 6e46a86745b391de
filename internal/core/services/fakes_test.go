package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/apperrors"
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// passThroughTx runs the unit of work directly and counts invocations.
type passThroughTx struct {
	calls int
}

func (t *passThroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

// memStore is an in-memory implementation of every repository port.
type memStore struct {
	mu        sync.Mutex
	rates     map[string]domain.FxRate
	periods   map[string]domain.Period
	journals  map[string]domain.Journal
	lines     map[string]domain.JournalLine
	movements map[string]domain.CapitalMovement
	accounts  map[string]domain.Account
	partners  map[string]domain.Partner
	employees map[string]domain.Employee
	users     map[string]domain.User
}

func newMemStore() *memStore {
	return &memStore{
		rates:     map[string]domain.FxRate{},
		periods:   map[string]domain.Period{},
		journals:  map[string]domain.Journal{},
		lines:     map[string]domain.JournalLine{},
		movements: map[string]domain.CapitalMovement{},
		accounts:  map[string]domain.Account{},
		partners:  map[string]domain.Partner{},
		employees: map[string]domain.Employee{},
		users:     map[string]domain.User{},
	}
}

var (
	_ portsrepo.FxRateRepositoryFacade          = (*memStore)(nil)
	_ portsrepo.PeriodRepositoryFacade          = (*memStore)(nil)
	_ portsrepo.JournalRepositoryFacade         = (*memStore)(nil)
	_ portsrepo.CapitalMovementRepositoryFacade = (*memStore)(nil)
	_ portsrepo.AccountRepositoryFacade         = (*memStore)(nil)
	_ portsrepo.PartnerRepositoryFacade         = (*memStore)(nil)
	_ portsrepo.EmployeeRepositoryFacade        = (*memStore)(nil)
	_ portsrepo.UserRepositoryFacade            = (*memStore)(nil)
)

// --- FX rates ---

func (m *memStore) FindFxRateByID(_ context.Context, rateID string) (*domain.FxRate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rates[rateID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &r, nil
}

func (m *memStore) FindFxRateByDate(_ context.Context, date time.Time) (*domain.FxRate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rates {
		if r.RateDate.Equal(date) {
			return &r, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) FindLatestFxRateOnOrBefore(_ context.Context, date time.Time) (*domain.FxRate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var best *domain.FxRate
	for _, r := range m.rates {
		if r.RateDate.After(date) {
			continue
		}
		if best == nil || r.RateDate.After(best.RateDate) {
			r := r
			best = &r
		}
	}
	if best == nil {
		return nil, apperrors.ErrNotFound
	}
	return best, nil
}

func (m *memStore) ListFxRatesInRange(_ context.Context, from, to time.Time) ([]domain.FxRate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.FxRate{}
	for _, r := range m.rates {
		if !r.RateDate.Before(from) && !r.RateDate.After(to) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RateDate.After(out[j].RateDate) })
	return out, nil
}

func (m *memStore) FindFxRateByIDForUpdate(ctx context.Context, rateID string) (*domain.FxRate, error) {
	return m.FindFxRateByID(ctx, rateID)
}

func (m *memStore) FindFxRateByDateForUpdate(ctx context.Context, date time.Time) (*domain.FxRate, error) {
	return m.FindFxRateByDate(ctx, date)
}

func (m *memStore) UpsertFxRate(_ context.Context, rate domain.FxRate) (*domain.FxRate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.rates {
		if r.RateDate.Equal(rate.RateDate) {
			if r.IsLocked {
				return nil, apperrors.ErrInvalidState
			}
			r.USDToPKR = rate.USDToPKR
			r.LastUpdatedAt = rate.LastUpdatedAt
			r.LastUpdatedBy = rate.LastUpdatedBy
			m.rates[id] = r
			return &r, nil
		}
	}
	m.rates[rate.FxRateID] = rate
	return &rate, nil
}

func (m *memStore) LockFxRate(_ context.Context, rateID string, newRate *decimal.Decimal, userID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rates[rateID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if newRate != nil {
		r.USDToPKR = *newRate
	}
	r.IsLocked = true
	r.LockedAt = &now
	r.LockedBy = &userID
	r.LastUpdatedAt = now
	r.LastUpdatedBy = userID
	m.rates[rateID] = r
	return nil
}

// --- Periods ---

func (m *memStore) FindPeriodByID(_ context.Context, periodID string) (*domain.Period, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.periods[periodID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (m *memStore) FindPeriodByIDForShare(ctx context.Context, periodID string) (*domain.Period, error) {
	return m.FindPeriodByID(ctx, periodID)
}

func (m *memStore) FindPeriodByIDForUpdate(ctx context.Context, periodID string) (*domain.Period, error) {
	return m.FindPeriodByID(ctx, periodID)
}

func (m *memStore) FindPeriodByYearMonth(_ context.Context, year, month int) (*domain.Period, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.periods {
		if p.Year == year && p.Month == month {
			return &p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) FindLatestOpenPeriod(ctx context.Context) (*domain.Period, error) {
	periods, _ := m.ListPeriods(ctx)
	for _, p := range periods {
		if !p.IsLocked() {
			return &p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) ListPeriods(_ context.Context) ([]domain.Period, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Period, 0, len(m.periods))
	for _, p := range m.periods {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out, nil
}

func (m *memStore) SavePeriod(_ context.Context, period domain.Period) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.periods {
		if p.Year == period.Year && p.Month == period.Month {
			return apperrors.ErrDuplicate
		}
	}
	m.periods[period.PeriodID] = period
	return nil
}

func (m *memStore) LockPeriod(_ context.Context, periodID string, userID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.periods[periodID]
	if !ok {
		return apperrors.ErrNotFound
	}
	p.Status = domain.PeriodLocked
	p.LockedAt = &now
	p.LockedBy = &userID
	m.periods[periodID] = p
	return nil
}

// --- Journals ---

func (m *memStore) FindJournalByID(_ context.Context, journalID string) (*domain.Journal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.journals[journalID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &j, nil
}

func (m *memStore) FindJournalByIDForUpdate(ctx context.Context, journalID string) (*domain.Journal, error) {
	return m.FindJournalByID(ctx, journalID)
}

func (m *memStore) ListJournals(_ context.Context, filter portsrepo.JournalFilter) ([]domain.Journal, *string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Journal{}
	for _, j := range m.journals {
		if filter.PeriodID != nil && j.PeriodID != *filter.PeriodID {
			continue
		}
		if filter.Status != nil && j.Status != *filter.Status {
			continue
		}
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].TransactionDate.After(out[k].TransactionDate) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil, nil
}

func (m *memStore) CountJournalsByPeriodAndStatus(_ context.Context, periodID string, status domain.JournalStatus) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, j := range m.journals {
		if j.PeriodID == periodID && j.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *memStore) SaveJournal(_ context.Context, journal domain.Journal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.journals[journal.JournalID] = journal
	return nil
}

func (m *memStore) MarkJournalPosted(_ context.Context, journalID string, userID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.journals[journalID]
	if !ok {
		return apperrors.ErrNotFound
	}
	j.Status = domain.Posted
	j.PostedAt = &now
	j.PostedBy = &userID
	m.journals[journalID] = j
	return nil
}

func (m *memStore) FindJournalLineByID(_ context.Context, lineID string) (*domain.JournalLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lines[lineID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &l, nil
}

func (m *memStore) FindJournalLinesByJournalID(_ context.Context, journalID string) ([]domain.JournalLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.JournalLine{}
	for _, l := range m.lines {
		if l.JournalID == journalID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LineNumber < out[j].LineNumber })
	return out, nil
}

func (m *memStore) NextLineNumber(ctx context.Context, journalID string) (int, error) {
	lines, _ := m.FindJournalLinesByJournalID(ctx, journalID)
	if len(lines) == 0 {
		return 1, nil
	}
	return lines[len(lines)-1].LineNumber + 1, nil
}

func (m *memStore) SaveJournalLine(_ context.Context, line domain.JournalLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines[line.LineID] = line
	return nil
}

func (m *memStore) DeleteJournalLine(_ context.Context, lineID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lines[lineID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.lines, lineID)
	return nil
}

// --- Capital movements ---

func (m *memStore) FindCapitalMovementByID(_ context.Context, movementID string) (*domain.CapitalMovement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mv, ok := m.movements[movementID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &mv, nil
}

func (m *memStore) FindCapitalMovementByIDForUpdate(ctx context.Context, movementID string) (*domain.CapitalMovement, error) {
	return m.FindCapitalMovementByID(ctx, movementID)
}

func (m *memStore) ListCapitalMovements(_ context.Context, filter portsrepo.CapitalMovementFilter) ([]domain.CapitalMovement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.CapitalMovement{}
	for _, mv := range m.movements {
		if filter.PartnerID != nil && mv.PartnerID != *filter.PartnerID {
			continue
		}
		if filter.MovementType != nil && mv.MovementType != *filter.MovementType {
			continue
		}
		if filter.FromDate != nil && mv.TransactionDate.Before(*filter.FromDate) {
			continue
		}
		if filter.ToDate != nil && mv.TransactionDate.After(*filter.ToDate) {
			continue
		}
		out = append(out, mv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TransactionDate.After(out[j].TransactionDate) })
	return out, nil
}

func (m *memStore) SaveCapitalMovement(_ context.Context, movement domain.CapitalMovement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.movements[movement.MovementID] = movement
	return nil
}

func (m *memStore) LinkCapitalMovementJournal(_ context.Context, movementID, journalID, userID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mv, ok := m.movements[movementID]
	if !ok {
		return apperrors.ErrNotFound
	}
	mv.JournalID = &journalID
	mv.LastUpdatedAt = now
	mv.LastUpdatedBy = userID
	m.movements[movementID] = mv
	return nil
}

// --- Reference data ---

func (m *memStore) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (m *memStore) ListAccounts(_ context.Context, limit int, offset int) ([]domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Account{}
	for _, a := range m.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return page(out, limit, offset), nil
}

func (m *memStore) SaveAccount(_ context.Context, account domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Code == account.Code {
			return apperrors.ErrDuplicate
		}
	}
	m.accounts[account.AccountID] = account
	return nil
}

func (m *memStore) SavePartner(_ context.Context, partner domain.Partner) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.partners[partner.PartnerID] = partner
	return nil
}

func (m *memStore) FindPartnerByID(_ context.Context, partnerID string) (*domain.Partner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.partners[partnerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (m *memStore) ListPartners(_ context.Context, limit int, offset int) ([]domain.Partner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Partner{}
	for _, p := range m.partners {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (m *memStore) SaveEmployee(_ context.Context, employee domain.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.employees[employee.EmployeeID] = employee
	return nil
}

func (m *memStore) FindEmployeeByID(_ context.Context, employeeID string) (*domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.employees[employeeID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (m *memStore) ListEmployees(_ context.Context, limit int, offset int) ([]domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Employee{}
	for _, e := range m.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (m *memStore) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (m *memStore) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) FindUsers(_ context.Context, limit int, offset int) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.User{}
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return page(out, limit, offset), nil
}

func (m *memStore) SaveUser(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username {
			return apperrors.ErrDuplicate
		}
	}
	m.users[user.UserID] = user
	return nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// --- Seed helpers ---

func (m *memStore) seedUser(id string) {
	m.users[id] = domain.User{UserID: id, Username: "user-" + id[:8], Name: "Test User"}
}

func (m *memStore) seedPeriod(id string, year, month int, status domain.PeriodStatus) {
	m.periods[id] = domain.Period{PeriodID: id, Year: year, Month: month, Status: status}
}

func (m *memStore) seedAccount(id, code string, currency domain.Currency) {
	m.accounts[id] = domain.Account{AccountID: id, Code: code, Name: "Account " + code, AccountType: domain.Asset, Currency: currency, IsActive: true}
}

func (m *memStore) seedPartner(id, name string) {
	m.partners[id] = domain.Partner{PartnerID: id, Name: name, IsActive: true}
}

func (m *memStore) seedRate(id string, date time.Time, rate string, locked bool) {
	m.rates[id] = domain.FxRate{FxRateID: id, RateDate: date, USDToPKR: decimal.RequireFromString(rate), IsLocked: locked}
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
