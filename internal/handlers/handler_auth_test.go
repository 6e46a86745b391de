package handlers_test

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/appdotbuilder/finops-audit-app/internal/core/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestLogin_Success() {
	req := dto.LoginRequest{Username: "ayesha", Password: "correct-horse"}
	suite.auth.On("Login", mock.Anything, req).
		Return(&dto.LoginResponse{Token: "signed.jwt.token", ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()

	w := suite.serve(suite.newRequest(http.MethodPost, "/api/v1/auth/login", req))

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed.jwt.token", resp.Token)
}

func (suite *HandlerTestSuite) TestLogin_InvalidCredentials() {
	req := dto.LoginRequest{Username: "ayesha", Password: "wrong"}
	suite.auth.On("Login", mock.Anything, req).Return(nil, services.ErrInvalidCredentials).Once()

	w := suite.serve(suite.newRequest(http.MethodPost, "/api/v1/auth/login", req))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal(services.ErrInvalidCredentials.Error(), suite.decodeError(w).Error)
}

func (suite *HandlerTestSuite) TestLogin_RateLimited() {
	cfg := suite.testConfig()
	cfg.LoginRateLimit = "1-M"
	suite.router = suite.newRouter(cfg)

	req := dto.LoginRequest{Username: "ayesha", Password: "wrong"}
	suite.auth.On("Login", mock.Anything, req).Return(nil, services.ErrInvalidCredentials).Once()

	first := suite.serve(suite.newRequest(http.MethodPost, "/api/v1/auth/login", req))
	suite.Equal(http.StatusUnauthorized, first.Code)

	second := suite.serve(suite.newRequest(http.MethodPost, "/api/v1/auth/login", req))
	suite.Equal(http.StatusTooManyRequests, second.Code)
}

func (suite *HandlerTestSuite) TestRegister_Success() {
	req := dto.CreateUserRequest{Username: "bilal", Name: "Bilal", Password: "long-enough-pw"}
	suite.users.On("CreateUser", mock.Anything, req, "").
		Return(&domain.User{UserID: uuid.NewString(), Username: "bilal", Name: "Bilal"}, nil).Once()

	w := suite.serve(suite.newRequest(http.MethodPost, "/api/v1/auth/register", req))

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.NotContains(w.Body.String(), "password")
}

func (suite *HandlerTestSuite) TestRegister_DuplicateUsername() {
	req := dto.CreateUserRequest{Username: "bilal", Name: "Bilal", Password: "long-enough-pw"}
	suite.users.On("CreateUser", mock.Anything, req, "").Return(nil, services.ErrDuplicateUsername).Once()

	w := suite.serve(suite.newRequest(http.MethodPost, "/api/v1/auth/register", req))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestRegister_ShortPassword() {
	w := suite.serve(suite.newRequest(http.MethodPost, "/api/v1/auth/register", `{"username": "bilal", "name": "Bilal", "password": "short"}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w).Details, "password failed min=8")
}

func (suite *HandlerTestSuite) TestGetMe() {
	suite.users.On("GetUserByID", mock.Anything, suite.userID).
		Return(&domain.User{UserID: suite.userID, Username: "ayesha", Name: "Ayesha"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/users/me", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(suite.userID, resp.UserID)
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.serve(suite.newRequest(http.MethodGet, "/health", nil))

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}
