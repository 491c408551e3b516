package router

import (
	"wedding-api/core/middleware"
	"wedding-api/modules/rsvp/controller"

	"github.com/labstack/echo/v4"
)

type RSVPRouter struct {
	controller *controller.RSVPController
}

func NewRSVPRouter(controller *controller.RSVPController) *RSVPRouter {
	return &RSVPRouter{controller: controller}
}

func (r *RSVPRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	auth := mw.AuthMiddleware()

	g.GET("/rsvp", r.controller.GetRSVP, auth)
	g.PUT("/rsvp", r.controller.SubmitRSVP, auth)
	g.DELETE("/rsvp", r.controller.DeleteFamilyMember, auth)
	// Kept for clients that still submit through the original route; the
	// semantics are identical to PUT /rsvp.
	g.POST("/submit-rsvp", r.controller.SubmitRSVP, auth)
	g.GET("/check-rsvp", r.controller.CheckHasSubmitted, auth)
}
