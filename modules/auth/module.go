package auth

import (
	"wedding-api/core/cache"
	"wedding-api/core/config"
	"wedding-api/core/middleware"
	"wedding-api/modules/auth/controller"
	"wedding-api/modules/auth/router"
	"wedding-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module. The passcode table comes from configuration
// and is handed to the service explicitly; nothing else holds it.
func Init(g *echo.Group, families []config.FamilyAccount, c cache.Cache, mw *middleware.Middleware) {
	svc := service.NewAuthService(families, c)
	ctrl := controller.NewAuthController(svc)
	router.NewAuthRouter(ctrl).Register(g, mw)
}
