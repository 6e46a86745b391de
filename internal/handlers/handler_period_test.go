package handlers_test

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/apperrors"
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/appdotbuilder/finops-audit-app/internal/core/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) samplePeriod(year, month int, status domain.PeriodStatus) *domain.Period {
	return &domain.Period{
		PeriodID:    uuid.NewString(),
		Year:        year,
		Month:       month,
		Status:      status,
		AuditFields: domain.NewAuditFields(suite.userID, time.Now()),
	}
}

func (suite *HandlerTestSuite) TestCreatePeriod_Success() {
	req := dto.CreatePeriodRequest{Year: 2024, Month: 3}
	suite.periods.On("CreatePeriod", mock.Anything, req, suite.userID).
		Return(suite.samplePeriod(2024, 3, domain.PeriodOpen), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/periods", req)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.PeriodResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-03", resp.Label)
	suite.Equal(domain.PeriodOpen, resp.Status)
}

func (suite *HandlerTestSuite) TestCreatePeriod_MonthOutOfRange() {
	w := suite.do(http.MethodPost, "/api/v1/periods", `{"year": 2024, "month": 13}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w).Details, "month failed max=12")
}

func (suite *HandlerTestSuite) TestCreatePeriod_Duplicate() {
	req := dto.CreatePeriodRequest{Year: 2024, Month: 3}
	suite.periods.On("CreatePeriod", mock.Anything, req, suite.userID).
		Return(nil, services.ErrDuplicatePeriod).Once()

	w := suite.do(http.MethodPost, "/api/v1/periods", req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestGetCurrentPeriod_NoneOpen() {
	suite.periods.On("GetCurrentPeriod", mock.Anything).Return(nil, services.ErrNoOpenPeriod).Once()

	w := suite.do(http.MethodGet, "/api/v1/periods/current", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal(services.ErrNoOpenPeriod.Error(), suite.decodeError(w).Error)
}

func (suite *HandlerTestSuite) TestGetPeriodByYearMonth() {
	suite.periods.On("GetPeriodByYearMonth", mock.Anything, 2024, 2).
		Return(suite.samplePeriod(2024, 2, domain.PeriodLocked), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/periods/by-month/2024/2", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do(http.MethodGet, "/api/v1/periods/by-month/2024/0", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestValidateClose_ReportsReasons() {
	periodID := uuid.NewString()
	suite.periods.On("ValidateClose", mock.Anything, periodID).
		Return(&domain.CloseValidation{CanClose: false, Errors: []string{"period contains 2 draft journal(s)"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/periods/"+periodID+"/close-validation", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.CloseValidation
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.CanClose)
	suite.Len(resp.Errors, 1)
}

func (suite *HandlerTestSuite) TestLockPeriod_WithDraftsIsUnprocessable() {
	periodID := uuid.NewString()
	suite.periods.On("LockPeriod", mock.Anything, periodID, suite.userID).
		Return(nil, apperrors.WithDetails(services.ErrCannotClosePeriod, "period contains 1 draft journal(s)")).Once()

	w := suite.do(http.MethodPost, "/api/v1/periods/"+periodID+"/lock", nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	resp := suite.decodeError(w)
	suite.Equal([]string{"period contains 1 draft journal(s)"}, resp.Details)
}

func (suite *HandlerTestSuite) TestLockPeriod_AlreadyLocked() {
	periodID := uuid.NewString()
	suite.periods.On("LockPeriod", mock.Anything, periodID, suite.userID).
		Return(nil, services.ErrPeriodAlreadyLocked).Once()

	w := suite.do(http.MethodPost, "/api/v1/periods/"+periodID+"/lock", nil)

	suite.Equal(http.StatusConflict, w.Code)
}
