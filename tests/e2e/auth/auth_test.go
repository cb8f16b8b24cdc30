//go:build e2e

package auth

import (
	"net/http"
	"testing"

	"staybooking/internal/handler/dto/request"
	"staybooking/tests/common/httptest"
	"staybooking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthFlowTestSuite struct {
	e2e.SharedSuite
}

func TestAuthFlowSuite(t *testing.T) {
	suite.Run(t, new(AuthFlowTestSuite))
}

func (s *AuthFlowTestSuite) TestAuthLifecycle() {
	s.Run("register login and fetch current user", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register",
			request.RegisterRequest{Email: "tourist@example.com", Password: "touristpass1", Role: "tourist"}, "")
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		var registered struct {
			UserID uuid.UUID `json:"user_id"`
		}
		httptest.DecodeJSON(s.T(), w.Body.Bytes(), &registered)
		require.NotEqual(s.T(), uuid.Nil, registered.UserID)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			request.LoginRequest{Email: "tourist@example.com", Password: "touristpass1"}, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var login struct {
			AccessToken string `json:"access_token"`
			User        struct {
				ID    uuid.UUID `json:"id"`
				Email string    `json:"email"`
				Role  string    `json:"role"`
			} `json:"user"`
		}
		httptest.DecodeJSON(s.T(), w.Body.Bytes(), &login)
		require.NotEmpty(s.T(), login.AccessToken)
		require.Equal(s.T(), registered.UserID, login.User.ID)
		require.Equal(s.T(), "tourist", login.User.Role)

		accessCookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(s.T(), accessCookie)
		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(s.T(), refreshCookie)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, login.AccessToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var me struct {
			Email string `json:"email"`
		}
		httptest.DecodeJSON(s.T(), w.Body.Bytes(), &me)
		require.Equal(s.T(), "tourist@example.com", me.Email)
	})

	s.Run("duplicate registration is rejected", func() {
		req := request.RegisterRequest{Email: "dup@example.com", Password: "duppassword1", Role: "tourist"}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register", req, "")
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register", req, "")
		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("login with wrong password fails", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register",
			request.RegisterRequest{Email: "tourist@example.com", Password: "touristpass1", Role: "tourist"}, "")
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			request.LoginRequest{Email: "tourist@example.com", Password: "wrongpassword"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("refresh rotates tokens via cookie", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register",
			request.RegisterRequest{Email: "tourist@example.com", Password: "touristpass1", Role: "tourist"}, "")
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			request.LoginRequest{Email: "tourist@example.com", Password: "touristpass1"}, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		cookies := httptest.ExtractCookies(w)

		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, "/api/auth/refresh", nil, cookies, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var refreshed struct {
			AccessToken string `json:"access_token"`
		}
		httptest.DecodeJSON(s.T(), w.Body.Bytes(), &refreshed)
		require.NotEmpty(s.T(), refreshed.AccessToken)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, refreshed.AccessToken)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		// Without the cookie the refresh is refused.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/refresh", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Refresh token required")
	})
}
