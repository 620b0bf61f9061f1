//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-canteen/internal/handler/middleware"
	"campus-canteen/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(cfg config.CORSConfig, origin string) *httptest.ResponseRecorder {
		router := gin.New()
		router.Use(middleware.NewCORSMiddleware(cfg))
		router.GET("/api/staff/orders", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/api/staff/orders", nil)
		req.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	credentialed := config.NewTestConfig().CORS

	t.Run("listed origin gets credentials", func(t *testing.T) {
		rec := serve(credentialed, "http://localhost:3000")
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("other origin is refused", func(t *testing.T) {
		rec := serve(credentialed, "https://evil.example")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard is dropped when credentials are on", func(t *testing.T) {
		cfg := credentialed
		cfg.AllowOrigins = []string{"*", "http://localhost:3000"}

		rec := serve(cfg, "https://evil.example")
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard without credentials", func(t *testing.T) {
		cfg := credentialed
		cfg.AllowOrigins = []string{"*"}
		cfg.AllowCredentials = false

		rec := serve(cfg, "https://any.example")
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})
}
