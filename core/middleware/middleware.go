package middleware

import (
	"wedding-api/core/cache"
	"wedding-api/core/constants"
	"wedding-api/core/controller"
	"wedding-api/core/errors"
	"wedding-api/core/logger"
	"wedding-api/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(c cache.Cache) *Middleware {
	return &Middleware{cache: c}
}

// AuthMiddleware validates the bearer token and stores its claims in the
// request context under constants.ContextTokenKey. The family name resolved
// here is authoritative for every downstream operation.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, appErr := utils.GetTokenFromHeader(c)
			if appErr != nil {
				return controller.NewBaseController().ErrorResponse(c, appErr)
			}

			blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
			if err != nil {
				logger.Error("Middleware:Auth:IsTokenBlacklisted:Error:", err)
				return controller.NewBaseController().ErrorResponse(c,
					errors.NewAppError(errors.ErrInternalServer, "failed to check token blacklist", err))
			}
			if blacklisted {
				return controller.NewBaseController().ErrorResponse(c,
					errors.NewAppError(errors.ErrUnauthorized, "token is blacklisted", nil))
			}

			claims, appErr := utils.ValidateAndParseToken(token)
			if appErr != nil {
				return controller.NewBaseController().ErrorResponse(c, appErr)
			}

			c.Set(constants.ContextTokenKey, claims)
			return next(c)
		}
	}
}
