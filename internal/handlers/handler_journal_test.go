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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) sampleJournal(status domain.JournalStatus) *domain.Journal {
	return &domain.Journal{
		JournalID:       uuid.NewString(),
		Reference:       "JV-001",
		TransactionDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		PeriodID:        uuid.NewString(),
		Status:          status,
		AuditFields:     domain.NewAuditFields(suite.userID, time.Now()),
	}
}

func (suite *HandlerTestSuite) TestCreateJournal_Success() {
	req := dto.CreateJournalRequest{
		Reference:       "JV-001",
		TransactionDate: "2024-03-10",
		PeriodID:        uuid.NewString(),
	}
	suite.journals.On("CreateJournal", mock.Anything, req, suite.userID).
		Return(suite.sampleJournal(domain.Draft), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals", req)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.JournalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.Draft, resp.Status)
	suite.Equal("2024-03-10", resp.TransactionDate)
}

func (suite *HandlerTestSuite) TestCreateJournal_BindingDetails() {
	w := suite.do(http.MethodPost, "/api/v1/journals", `{"reference": "JV-1", "transactionDate": "10/03/2024", "periodID": "not-a-uuid"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := suite.decodeError(w)
	suite.ElementsMatch([]string{
		"transactionDate must be a date formatted YYYY-MM-DD",
		"periodID must be a UUID",
	}, resp.Details)
}

func (suite *HandlerTestSuite) TestCreateJournal_MalformedJSON() {
	w := suite.do(http.MethodPost, "/api/v1/journals", `{"reference":`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w).Error, "Invalid request format")
}

func (suite *HandlerTestSuite) TestCreateJournal_LockedPeriod() {
	req := dto.CreateJournalRequest{Reference: "JV-2", TransactionDate: "2024-03-10", PeriodID: uuid.NewString()}
	suite.journals.On("CreateJournal", mock.Anything, req, suite.userID).
		Return(nil, services.ErrPeriodLocked).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals", req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestAddLine_Success() {
	journalID := uuid.NewString()
	accountID := uuid.NewString()
	matchReq := mock.MatchedBy(func(r dto.AddJournalLineRequest) bool {
		return r.AccountID == accountID && r.DebitAmount.Equal(decimal.NewFromInt(100)) && r.CreditAmount.IsZero()
	})
	suite.journals.On("AddLine", mock.Anything, journalID, matchReq, suite.userID).
		Return(&domain.JournalLine{
			LineID:           uuid.NewString(),
			JournalID:        journalID,
			LineNumber:       1,
			AccountID:        accountID,
			DebitAmount:      decimal.NewFromInt(100),
			DebitAmountBase:  decimal.NewFromInt(28000),
			CreditAmount:     decimal.Zero,
			CreditAmountBase: decimal.Zero,
		}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals/"+journalID+"/lines", map[string]any{
		"accountID":   accountID,
		"debitAmount": "100",
	})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.JournalLineResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.LineNumber)
	suite.True(resp.DebitAmountBase.Equal(decimal.NewFromInt(28000)))
}

func (suite *HandlerTestSuite) TestAddLine_NegativeAmount() {
	w := suite.do(http.MethodPost, "/api/v1/journals/"+uuid.NewString()+"/lines", map[string]any{
		"accountID":    uuid.NewString(),
		"creditAmount": "-1",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w).Details, "creditAmount failed gte=0")
}

func (suite *HandlerTestSuite) TestAddLine_PostedJournal() {
	journalID := uuid.NewString()
	suite.journals.On("AddLine", mock.Anything, journalID, mock.Anything, suite.userID).
		Return(nil, services.ErrJournalPosted).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals/"+journalID+"/lines", map[string]any{
		"accountID":   uuid.NewString(),
		"debitAmount": "10",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteLine() {
	lineID := uuid.NewString()
	suite.journals.On("DeleteLine", mock.Anything, lineID, suite.userID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/journal-lines/"+lineID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *HandlerTestSuite) TestDeleteLine_NotFound() {
	lineID := uuid.NewString()
	suite.journals.On("DeleteLine", mock.Anything, lineID, suite.userID).Return(services.ErrLineNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/journal-lines/"+lineID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestPostJournal_UnbalancedReturnsDetails() {
	journalID := uuid.NewString()
	reasons := []string{"debits 100.00 do not equal credits 90.00 in base currency"}
	suite.journals.On("PostJournal", mock.Anything, journalID, suite.userID).
		Return(nil, apperrors.WithDetails(services.ErrJournalValidationFailed, reasons...)).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals/"+journalID+"/post", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := suite.decodeError(w)
	suite.Contains(resp.Error, services.ErrJournalValidationFailed.Error())
	suite.Equal(reasons, resp.Details)
}

func (suite *HandlerTestSuite) TestPostJournal_Success() {
	journal := suite.sampleJournal(domain.Posted)
	suite.journals.On("PostJournal", mock.Anything, journal.JournalID, suite.userID).Return(journal, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals/"+journal.JournalID+"/post", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.JournalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.Posted, resp.Status)
}

func (suite *HandlerTestSuite) TestValidateJournal() {
	journalID := uuid.NewString()
	suite.journals.On("ValidateJournal", mock.Anything, journalID).
		Return(&domain.ValidationResult{IsValid: false, Errors: []string{"journal must have at least two lines"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journals/"+journalID+"/validation", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.ValidationResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.IsValid)
}

func (suite *HandlerTestSuite) TestListJournals_PassesFiltersAndToken() {
	next := "b3BhcXVl"
	params := dto.ListJournalsParams{Status: "DRAFT", Limit: 5, NextToken: "Y3Vyc29y"}
	suite.journals.On("ListJournals", mock.Anything, params).
		Return(&dto.ListJournalsResponse{
			Journals:  []dto.JournalResponse{dto.ToJournalResponse(suite.sampleJournal(domain.Draft))},
			NextToken: &next,
		}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journals?status=DRAFT&limit=5&nextToken=Y3Vyc29y", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ListJournalsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Journals, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func (suite *HandlerTestSuite) TestListJournals_UnknownStatus() {
	w := suite.do(http.MethodGet, "/api/v1/journals?status=VOID", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w).Details, "status must be one of DRAFT POSTED")
}

func (suite *HandlerTestSuite) TestJournals_RequireAuthentication() {
	w := suite.serve(suite.newRequest(http.MethodGet, "/api/v1/journals", nil))
	suite.Equal(http.StatusUnauthorized, w.Code)

	req := suite.newRequest(http.MethodGet, "/api/v1/journals", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w = suite.serve(req)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestGetJournal_MalformedID() {
	w := suite.do(http.MethodGet, "/api/v1/journals/not-a-uuid", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := suite.decodeError(w)
	suite.Contains(resp.Error, "journalID must be a UUID")
	suite.journals.AssertNotCalled(suite.T(), "GetJournalByID", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestDeleteLine_MalformedID() {
	w := suite.do(http.MethodDelete, "/api/v1/journal-lines/42", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.journals.AssertNotCalled(suite.T(), "DeleteLine", mock.Anything, mock.Anything, mock.Anything)
}
