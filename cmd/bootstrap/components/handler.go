package components

import (
	"campus-canteen/internal/handler"
	"campus-canteen/internal/handler/api"
	"campus-canteen/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewStudentHandler,
		api.NewStaffHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, catalog *api.CatalogHandler, student *api.StudentHandler, staff *api.StaffHandler) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Catalog: catalog,
		Student: student,
		Staff:   staff,
	}
}
