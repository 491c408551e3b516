package controller

import (
	"wedding-api/core/constants"
	"wedding-api/core/controller"
	"wedding-api/core/errors"
	"wedding-api/core/utils"
	"wedding-api/modules/auth/dto"
	"wedding-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    authService,
	}
}

func (c *AuthController) Authenticate(ctx echo.Context) error {
	requestData := new(dto.AuthenticateRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if requestData.Password == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Password is required", nil)
	}

	response, appErr := c.AuthService.Authenticate(ctx.Request().Context(), requestData.Password)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, response, "Authenticated")
}

// CheckAuth runs behind the auth middleware, so reaching it at all means the
// token is valid; it just echoes the resolved family back.
func (c *AuthController) CheckAuth(ctx echo.Context) error {
	tokenData := ctx.Get(constants.ContextTokenKey)
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Token data not found in context", nil)
	}

	return c.SuccessResponse(ctx, dto.CheckAuthResponse{
		IsAuthenticated: true,
		FamilyName:      claims.FamilyName,
	}, "Authenticated")
}

func (c *AuthController) Logout(ctx echo.Context) error {
	token, appErr := utils.GetTokenFromHeader(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	if appErr := c.AuthService.Logout(ctx.Request().Context(), token); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Logout success")
}
