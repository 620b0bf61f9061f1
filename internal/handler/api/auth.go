package api

import (
	"net/http"

	reqdto "campus-canteen/internal/handler/dto/request"
	resdto "campus-canteen/internal/handler/dto/response"
	"campus-canteen/internal/handler/httperr"
	"campus-canteen/internal/handler/middleware"
	"campus-canteen/internal/pkg/config"
	"campus-canteen/internal/pkg/cookie"
	"campus-canteen/internal/usecase/commands"
	"campus-canteen/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands   commands.AuthCommands
	catalogQueries queries.CatalogQueries
	cfg            config.Config
}

func NewAuthHandler(authCommands commands.AuthCommands, catalogQueries queries.CatalogQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands:   authCommands,
		catalogQueries: catalogQueries,
		cfg:            cfg,
	}
}

// @Summary Staff login
// @Description Login with the canteen staff ID and password. Sets the session cookie and returns the token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	cookie.SetSessionCookie(c, h.cfg.Cookie, result.Token, h.cfg.JWT.Duration)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		CanteenID:   result.CanteenID,
		CanteenName: result.CanteenName,
	})
}

// @Summary Staff logout
// @Description Clears the staff session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current staff session
// @Description Returns the canteen the session is signed in to
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	canteenID, ok := middleware.GetCanteenID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoStaffSession, "Staff session required", nil)
		return
	}

	view, err := h.catalogQueries.GetCanteen(c.Request.Context(), canteenID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.SessionResponse{
		CanteenID:   view.ID,
		CanteenName: view.Name,
		Category:    view.Category,
		CrowdLevel:  view.CrowdLevel,
	})
}
