package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"campus-canteen/internal/handler/httperr"
	"campus-canteen/internal/pkg/cookie"
	"campus-canteen/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxCanteenIDKey   = "canteen_id"
	ctxCanteenNameKey = "canteen_name"
	ctxClaimsKey      = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireStaff admits requests carrying a valid staff session, from the cookie or a bearer header.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Staff session required", nil)
			return
		}

		session, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session", nil)
			return
		}

		SetStaffSession(c, session)
		c.Next()
	}
}

// SetStaffSession stores the session for handlers and request logging.
func SetStaffSession(c *gin.Context, session *usecase.StaffSession) {
	c.Set(ctxCanteenIDKey, session.CanteenID)
	c.Set(ctxCanteenNameKey, session.CanteenName)
	c.Set(ctxClaimsKey, map[string]any{
		"canteen_id": session.CanteenID,
	})
}

func GetCanteenID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxCanteenIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
