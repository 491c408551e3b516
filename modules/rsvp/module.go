package rsvp

import (
	"wedding-api/core/constants"
	"wedding-api/core/database"
	"wedding-api/core/middleware"
	"wedding-api/core/queue"
	"wedding-api/modules/rsvp/controller"
	"wedding-api/modules/rsvp/mirror"
	"wedding-api/modules/rsvp/repository"
	"wedding-api/modules/rsvp/router"
	"wedding-api/modules/rsvp/service"

	"github.com/labstack/echo/v4"
)

// Init wires the RSVP module: document-store repository, mirror task handler
// on the queue worker, service, controller and routes.
func Init(g *echo.Group, db *database.Database, q *queue.Queue, m mirror.Mirror, mw *middleware.Middleware) {
	repo := repository.NewRSVPRepository(db)

	taskHandler := mirror.NewTaskHandler(repo, m)
	q.HandleFunc(constants.TaskMirrorSyncFamily, taskHandler.HandleSyncFamily)

	svc := service.NewRSVPService(repo, mirror.NewTaskEnqueuer(q.Client))
	ctrl := controller.NewRSVPController(svc)
	router.NewRSVPRouter(ctrl).Register(g, mw)
}
