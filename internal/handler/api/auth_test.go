//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/api"
	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/tests/common/httptest"
	commandsmock "marketplace-api/tests/mock/commands"
	queriesmock "marketplace-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", asUser(authedClientID), s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := reqdto.LoginRequest{Email: "client@example.com", Password: "motdepasse"}
	returnUser := &queries.AuthorizedUserView{
		ID:       authedClientID,
		Email:    reqBody.Email,
		Role:     user.RoleClient.String(),
		IsActive: true,
	}

	s.Run("success: 200 with tokens and user", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{
				UserID:    returnUser.ID,
				Role:      user.RoleClient,
				TokenPair: &commands.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"},
			}, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).Return(returnUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("access-token", resp.AccessToken)
		s.Require().NotNil(resp.User)
		s.Equal(returnUser.Email, resp.User.Email)
	})

	s.Run("success: user lookup failure still returns the tokens", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{
				UserID:    returnUser.ID,
				Role:      user.RoleClient,
				TokenPair: &commands.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"},
			}, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).
			Return(nil, commands.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Nil(resp.User)
	})

	s.Run("error: 400 on malformed body", func() {
		cases := []map[string]any{
			{"email": "invalid-email", "password": "motdepasse"},
			{"email": "client@example.com", "password": "court"},
			{"password": "motdepasse"},
			{"email": "client@example.com"},
		}
		for _, body := range cases {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			s.Equal(http.StatusBadRequest, rec.Code)
		}
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(nil, commands.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 403 on inactive account", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(nil, commands.ErrUserInactive)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("success: 200 with a fresh pair", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "old-refresh").
			Return(&commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.RefreshRequest{RefreshToken: "old-refresh"}, "")

		var resp resdto.RefreshResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("new-access", resp.AccessToken)
		s.Equal("new-refresh", resp.RefreshToken)
	})

	s.Run("error: 401 on an invalid refresh token", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "expired").
			Return(nil, commands.ErrTokenValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.RefreshRequest{RefreshToken: "expired"}, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: current user returned", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), authedClientID).
			Return(&queries.AuthorizedUserView{ID: authedClientID, Email: "client@example.com", Role: "client", IsActive: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		var resp queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(authedClientID, resp.ID)
	})

	s.Run("error: 404 when the user no longer exists", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), authedClientID).
			Return(nil, commands.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)
}
