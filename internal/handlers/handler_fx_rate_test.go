package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/apperrors"
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/appdotbuilder/finops-audit-app/internal/core/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func decimalEq(want string) any {
	expected := decimal.RequireFromString(want)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(expected) })
}

func (suite *HandlerTestSuite) sampleRate(date time.Time, rate string) *domain.FxRate {
	return &domain.FxRate{
		FxRateID:    uuid.NewString(),
		RateDate:    date,
		USDToPKR:    decimal.RequireFromString(rate),
		AuditFields: domain.NewAuditFields(suite.userID, time.Now()),
	}
}

func (suite *HandlerTestSuite) TestSetRate_Success() {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	suite.fxRates.On("SetRate", mock.Anything, date, decimalEq("280.50"), suite.userID).
		Return(suite.sampleRate(date, "280.50"), nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/fx-rates/2024-01-15", `{"rate": "280.50"}`)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.FxRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-01-15", resp.RateDate)
	suite.True(resp.Rate.Equal(decimal.RequireFromString("280.5")))
	suite.False(resp.IsLocked)
}

func (suite *HandlerTestSuite) TestSetRate_InvalidDate() {
	w := suite.do(http.MethodPut, "/api/v1/fx-rates/15-01-2024", `{"rate": 280}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w).Error, "invalid date")
	suite.fxRates.AssertNotCalled(suite.T(), "SetRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestSetRate_NegativeRateRejectedAtBinding() {
	w := suite.do(http.MethodPut, "/api/v1/fx-rates/2024-01-15", `{"rate": -5}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := suite.decodeError(w)
	suite.Equal("Invalid request", resp.Error)
	suite.NotEmpty(resp.Details)
}

func (suite *HandlerTestSuite) TestSetRate_LockedRateIsConflict() {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	suite.fxRates.On("SetRate", mock.Anything, date, mock.Anything, suite.userID).
		Return(nil, services.ErrFxRateLocked).Once()

	w := suite.do(http.MethodPut, "/api/v1/fx-rates/2024-01-15", `{"rate": 281}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal(services.ErrFxRateLocked.Error(), suite.decodeError(w).Error)
}

func (suite *HandlerTestSuite) TestLockRate_EmptyBodyKeepsValue() {
	rateID := uuid.NewString()
	locked := suite.sampleRate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "280")
	locked.IsLocked = true
	suite.fxRates.On("LockRate", mock.Anything, rateID, (*decimal.Decimal)(nil), suite.userID).
		Return(locked, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/fx-rates/"+rateID+"/lock", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.FxRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IsLocked)
}

func (suite *HandlerTestSuite) TestLockRate_WithReplacementRate() {
	rateID := uuid.NewString()
	matchRate := mock.MatchedBy(func(d *decimal.Decimal) bool {
		return d != nil && d.Equal(decimal.RequireFromString("279.25"))
	})
	suite.fxRates.On("LockRate", mock.Anything, rateID, matchRate, suite.userID).
		Return(suite.sampleRate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "279.25"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/fx-rates/"+rateID+"/lock", `{"rate": "279.25"}`)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetRatesInRange_RequiresBothDates() {
	w := suite.do(http.MethodGet, "/api/v1/fx-rates?from=2024-01-01", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w).Details, "to is required")
}

func (suite *HandlerTestSuite) TestGetCurrentRate_HidesInternalErrors() {
	suite.fxRates.On("GetCurrentRate", mock.Anything).
		Return(nil, apperrors.NewAppError(http.StatusInternalServerError, "database error", errors.New("connection refused"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/fx-rates/current", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	resp := suite.decodeError(w)
	suite.Equal("Failed to retrieve current fx rate", resp.Error)
	suite.NotContains(w.Body.String(), "connection refused")
}

func (suite *HandlerTestSuite) TestGetRate_NotFound() {
	date := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.fxRates.On("GetRate", mock.Anything, date).Return(nil, services.ErrFxRateNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/fx-rates/date/2020-01-01", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}
