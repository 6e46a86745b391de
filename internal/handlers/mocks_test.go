package handlers_test

import (
	"context"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	portssvc "github.com/appdotbuilder/finops-audit-app/internal/core/ports/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// result unpacks a (value, error) mock return where value may be nil.
func result[T any](args mock.Arguments) (T, error) {
	var zero T
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

// --- Mock FxRateService ---
type MockFxRateService struct {
	mock.Mock
}

func (m *MockFxRateService) GetRate(ctx context.Context, date time.Time) (*domain.FxRate, error) {
	return result[*domain.FxRate](m.Called(ctx, date))
}
func (m *MockFxRateService) GetRateByID(ctx context.Context, rateID string) (*domain.FxRate, error) {
	return result[*domain.FxRate](m.Called(ctx, rateID))
}
func (m *MockFxRateService) GetRatesInRange(ctx context.Context, from, to time.Time) ([]domain.FxRate, error) {
	return result[[]domain.FxRate](m.Called(ctx, from, to))
}
func (m *MockFxRateService) GetCurrentRate(ctx context.Context) (*domain.FxRate, error) {
	return result[*domain.FxRate](m.Called(ctx))
}
func (m *MockFxRateService) SetRate(ctx context.Context, date time.Time, rate decimal.Decimal, userID string) (*domain.FxRate, error) {
	return result[*domain.FxRate](m.Called(ctx, date, rate, userID))
}
func (m *MockFxRateService) LockRate(ctx context.Context, rateID string, newRate *decimal.Decimal, userID string) (*domain.FxRate, error) {
	return result[*domain.FxRate](m.Called(ctx, rateID, newRate, userID))
}

var _ portssvc.FxRateSvcFacade = (*MockFxRateService)(nil)

// --- Mock PeriodService ---
type MockPeriodService struct {
	mock.Mock
}

func (m *MockPeriodService) GetPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	return result[*domain.Period](m.Called(ctx, periodID))
}
func (m *MockPeriodService) GetPeriodByYearMonth(ctx context.Context, year, month int) (*domain.Period, error) {
	return result[*domain.Period](m.Called(ctx, year, month))
}
func (m *MockPeriodService) GetCurrentPeriod(ctx context.Context) (*domain.Period, error) {
	return result[*domain.Period](m.Called(ctx))
}
func (m *MockPeriodService) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	return result[[]domain.Period](m.Called(ctx))
}
func (m *MockPeriodService) ValidateClose(ctx context.Context, periodID string) (*domain.CloseValidation, error) {
	return result[*domain.CloseValidation](m.Called(ctx, periodID))
}
func (m *MockPeriodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, userID string) (*domain.Period, error) {
	return result[*domain.Period](m.Called(ctx, req, userID))
}
func (m *MockPeriodService) LockPeriod(ctx context.Context, periodID string, userID string) (*domain.Period, error) {
	return result[*domain.Period](m.Called(ctx, periodID, userID))
}

var _ portssvc.PeriodSvcFacade = (*MockPeriodService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	return result[*domain.Journal](m.Called(ctx, journalID))
}
func (m *MockJournalService) ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	return result[*dto.ListJournalsResponse](m.Called(ctx, params))
}
func (m *MockJournalService) ValidateJournal(ctx context.Context, journalID string) (*domain.ValidationResult, error) {
	return result[*domain.ValidationResult](m.Called(ctx, journalID))
}
func (m *MockJournalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error) {
	return result[*domain.Journal](m.Called(ctx, req, creatorUserID))
}
func (m *MockJournalService) AddLine(ctx context.Context, journalID string, req dto.AddJournalLineRequest, userID string) (*domain.JournalLine, error) {
	return result[*domain.JournalLine](m.Called(ctx, journalID, req, userID))
}
func (m *MockJournalService) DeleteLine(ctx context.Context, lineID string, userID string) error {
	return m.Called(ctx, lineID, userID).Error(0)
}
func (m *MockJournalService) PostJournal(ctx context.Context, journalID string, userID string) (*domain.Journal, error) {
	return result[*domain.Journal](m.Called(ctx, journalID, userID))
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock CapitalMovementService ---
type MockCapitalMovementService struct {
	mock.Mock
}

func (m *MockCapitalMovementService) GetMovement(ctx context.Context, movementID string) (*domain.CapitalMovement, error) {
	return result[*domain.CapitalMovement](m.Called(ctx, movementID))
}
func (m *MockCapitalMovementService) ListMovements(ctx context.Context, params dto.ListCapitalMovementsParams) ([]domain.CapitalMovement, error) {
	return result[[]domain.CapitalMovement](m.Called(ctx, params))
}
func (m *MockCapitalMovementService) ListByPartner(ctx context.Context, partnerID string) ([]domain.CapitalMovement, error) {
	return result[[]domain.CapitalMovement](m.Called(ctx, partnerID))
}
func (m *MockCapitalMovementService) GetPartnerBalance(ctx context.Context, partnerID string, asOf *time.Time) (*domain.PartnerBalance, error) {
	return result[*domain.PartnerBalance](m.Called(ctx, partnerID, asOf))
}
func (m *MockCapitalMovementService) CreateMovement(ctx context.Context, req dto.CreateCapitalMovementRequest, userID string) (*domain.CapitalMovement, error) {
	return result[*domain.CapitalMovement](m.Called(ctx, req, userID))
}
func (m *MockCapitalMovementService) LinkJournal(ctx context.Context, movementID, journalID, userID string) (*domain.CapitalMovement, error) {
	return result[*domain.CapitalMovement](m.Called(ctx, movementID, journalID, userID))
}

var _ portssvc.CapitalMovementSvcFacade = (*MockCapitalMovementService)(nil)

// --- Mock reference data services ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	return result[*domain.Account](m.Called(ctx, req, userID))
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return result[*domain.Account](m.Called(ctx, accountID))
}
func (m *MockAccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	return result[[]domain.Account](m.Called(ctx, limit, offset))
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

type MockPartnerService struct {
	mock.Mock
}

func (m *MockPartnerService) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest, userID string) (*domain.Partner, error) {
	return result[*domain.Partner](m.Called(ctx, req, userID))
}
func (m *MockPartnerService) GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	return result[*domain.Partner](m.Called(ctx, partnerID))
}
func (m *MockPartnerService) ListPartners(ctx context.Context, limit int, offset int) ([]domain.Partner, error) {
	return result[[]domain.Partner](m.Called(ctx, limit, offset))
}

var _ portssvc.PartnerSvcFacade = (*MockPartnerService)(nil)

type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error) {
	return result[*domain.Employee](m.Called(ctx, req, userID))
}
func (m *MockEmployeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return result[*domain.Employee](m.Called(ctx, employeeID))
}
func (m *MockEmployeeService) ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	return result[[]domain.Employee](m.Called(ctx, limit, offset))
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock UserService / AuthService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return result[*domain.User](m.Called(ctx, userID))
}
func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return result[*domain.User](m.Called(ctx, username))
}
func (m *MockUserService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	return result[[]domain.User](m.Called(ctx, limit, offset))
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	return result[*domain.User](m.Called(ctx, req, creatorUserID))
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	return result[*dto.LoginResponse](m.Called(ctx, req))
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)
