package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"campus-canteen/internal/handler/api"
	"campus-canteen/internal/handler/middleware"
	"campus-canteen/internal/infra/metrics"
	"campus-canteen/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Catalog *api.CatalogHandler
	Student *api.StudentHandler
	Staff   *api.StaffHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(metrics.HTTPMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireStaff := authMiddleware.RequireStaff()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/canteens"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListCanteens},
			{Method: http.MethodGet, Path: "/:canteenId/menu", Handler: h.Catalog.Menu},
			{Method: http.MethodGet, Path: "/:canteenId/slots", Handler: h.Catalog.Slots},
		})

		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireStaff}},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireStaff}},
		})

		addRoutes(apiGroup.Group("/students/:studentId"), []route{
			{Method: http.MethodPost, Path: "/orders", Handler: h.Student.PlaceOrder},
			{Method: http.MethodGet, Path: "/orders", Handler: h.Student.ListOrders},
			{Method: http.MethodGet, Path: "/orders/:orderId", Handler: h.Student.GetOrder},
			{Method: http.MethodGet, Path: "/wallet", Handler: h.Student.GetWallet},
			{Method: http.MethodPost, Path: "/wallet/top-up", Handler: h.Student.TopUp},
		})

		staff := apiGroup.Group("/staff")
		staff.Use(requireStaff)
		{
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "/orders", Handler: h.Staff.ListOrders},
				{Method: http.MethodGet, Path: "/orders/:orderId/impact", Handler: h.Staff.OrderImpact},
				{Method: http.MethodPatch, Path: "/orders/:orderId/status", Handler: h.Staff.UpdateOrderStatus},
				{Method: http.MethodGet, Path: "/inventory", Handler: h.Staff.Inventory},
				{Method: http.MethodPut, Path: "/inventory/:itemId", Handler: h.Staff.SetStock},
				{Method: http.MethodPost, Path: "/inventory/:itemId/adjust", Handler: h.Staff.AdjustStock},
				{Method: http.MethodGet, Path: "/slots", Handler: h.Staff.Slots},
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Staff.Dashboard},
				{Method: http.MethodGet, Path: "/analytics/delayed", Handler: h.Staff.DelayedOrders},
				{Method: http.MethodGet, Path: "/analytics/waiting", Handler: h.Staff.WaitingStudents},
				{Method: http.MethodGet, Path: "/analytics/suggestions", Handler: h.Staff.Suggestions},
				{Method: http.MethodGet, Path: "/analytics/sellout/:itemId", Handler: h.Staff.Sellout},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
