//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"campus-canteen/internal/handler/middleware"
	"campus-canteen/internal/pkg/cookie"
	"campus-canteen/internal/pkg/jwt"
	"campus-canteen/internal/usecase"
	"campus-canteen/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(svc *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))
	router.GET("/staff", mw.RequireStaff(), func(c *gin.Context) {
		id, ok := middleware.GetCanteenID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"canteenId": id})
	})
	return router
}

func TestRequireStaff(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	router := newAuthRouter(svc)

	token, err := svc.GenerateToken("MAIN001", "Main Canteen")
	require.NoError(t, err)

	t.Run("session cookie", func(t *testing.T) {
		rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/staff", nil,
			[]*http.Cookie{{Name: cookie.SessionCookieName, Value: token}}, "")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "MAIN001", body["canteenId"])
	})

	t.Run("bearer header", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/staff", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "MAIN001", body["canteenId"])
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/staff", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Staff session required")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		forged, err := jwt.NewService("other-secret", time.Hour).GenerateToken("MAIN001", "Main Canteen")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/staff", nil, forged)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired session")
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := jwt.NewService("test-secret", -time.Minute).GenerateToken("MAIN001", "Main Canteen")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/staff", nil, expired)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired session")
	})
}
