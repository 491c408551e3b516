package router

import (
	"wedding-api/modules/media/controller"

	"github.com/labstack/echo/v4"
)

type MediaRouter struct {
	controller *controller.MediaController
}

func NewMediaRouter(controller *controller.MediaController) *MediaRouter {
	return &MediaRouter{controller: controller}
}

// Register mounts the media routes. Uploads and listing are unauthenticated:
// assets are not attributed to a family.
func (r *MediaRouter) Register(g *echo.Group) {
	g.POST("/upload", r.controller.Upload)
	g.GET("/get-cloud-images", r.controller.ListImages)
}
