//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"staybooking/internal/handler/dto/request"
	"staybooking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// RegisterAndLogin creates a fresh account through the public API and
// returns its access token.
func RegisterAndLogin(t *testing.T, router *gin.Engine, email, password, role string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register",
		request.RegisterRequest{Email: email, Password: password, Role: role}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return LoginUser(t, router, email, password)
}
