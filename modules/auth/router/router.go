package router

import (
	"wedding-api/core/middleware"
	"wedding-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

func (r *AuthRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	g.POST("/authenticate", r.controller.Authenticate)
	g.GET("/check-auth", r.controller.CheckAuth, mw.AuthMiddleware())
	g.POST("/logout", r.controller.Logout, mw.AuthMiddleware())
}
