package health

import (
	"context"
	"net/http"
	"time"

	"wedding-api/core/cache"
	"wedding-api/core/database"

	"github.com/labstack/echo/v4"
)

type status struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Handler reports liveness of the document store and redis. A failing
// dependency degrades the response to 503 so orchestrators can act on it.
func Handler(db *database.Database, c cache.Cache) echo.HandlerFunc {
	return func(ec echo.Context) error {
		ctx, cancel := context.WithTimeout(ec.Request().Context(), 3*time.Second)
		defer cancel()

		st := status{Status: "ok", Checks: map[string]string{}}
		httpStatus := http.StatusOK

		if err := db.Ping(ctx); err != nil {
			st.Status = "degraded"
			st.Checks["mongo"] = err.Error()
			httpStatus = http.StatusServiceUnavailable
		} else {
			st.Checks["mongo"] = "ok"
		}

		if err := c.Ping(ctx); err != nil {
			st.Status = "degraded"
			st.Checks["redis"] = err.Error()
			httpStatus = http.StatusServiceUnavailable
		} else {
			st.Checks["redis"] = "ok"
		}

		return ec.JSON(httpStatus, st)
	}
}
