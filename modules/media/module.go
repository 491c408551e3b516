package media

import (
	"wedding-api/modules/media/controller"
	"wedding-api/modules/media/router"
	"wedding-api/modules/media/service"
	"wedding-api/modules/media/storage"

	"github.com/labstack/echo/v4"
)

// Init wires the media module against whichever storage backend the server
// constructed from config.
func Init(g *echo.Group, backend storage.Backend) {
	svc := service.NewMediaService(backend)
	ctrl := controller.NewMediaController(svc)
	router.NewMediaRouter(ctrl).Register(g)
}
