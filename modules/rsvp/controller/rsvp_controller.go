package controller

import (
	"strings"

	"wedding-api/core/constants"
	"wedding-api/core/controller"
	"wedding-api/core/errors"
	"wedding-api/core/utils"
	"wedding-api/modules/rsvp/dto"
	"wedding-api/modules/rsvp/service"

	"github.com/labstack/echo/v4"
)

type RSVPController struct {
	controller.BaseController
	service *service.RSVPService
}

func NewRSVPController(service *service.RSVPService) *RSVPController {
	return &RSVPController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// familyNameFromContext resolves the family identity placed there by the
// auth middleware. The claim is authoritative; there is no secondary
// ownership check.
func (c *RSVPController) familyNameFromContext(ctx echo.Context) (string, *errors.AppError) {
	tokenData := ctx.Get(constants.ContextTokenKey)
	if tokenData == nil {
		return "", errors.NewAppError(errors.ErrUnauthorized, "token data not found in context", nil)
	}
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return "", errors.NewAppError(errors.ErrUnauthorized, "invalid token data format", nil)
	}
	return claims.FamilyName, nil
}

func (c *RSVPController) GetRSVP(ctx echo.Context) error {
	familyName, appErr := c.familyNameFromContext(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	record, appErr := c.service.GetRSVP(ctx.Request().Context(), familyName)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, dto.RSVPResponse{Record: record}, "RSVP retrieved")
}

// SubmitRSVP serves both POST /submit-rsvp and PUT /rsvp; the two routes
// share create-or-replace semantics.
func (c *RSVPController) SubmitRSVP(ctx echo.Context) error {
	familyName, appErr := c.familyNameFromContext(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	requestData := new(dto.SubmitRSVPRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	for _, member := range requestData.FamilyMembers {
		if strings.TrimSpace(member.FirstName) == "" && strings.TrimSpace(member.LastName) == "" {
			return c.BadRequest(errors.ErrInvalidInput, "Family member requires a name", nil)
		}
	}

	if appErr := c.service.SubmitRSVP(ctx.Request().Context(), familyName, dto.ToMembers(requestData.FamilyMembers)); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "RSVP saved")
}

func (c *RSVPController) DeleteFamilyMember(ctx echo.Context) error {
	familyName, appErr := c.familyNameFromContext(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	requestData := new(dto.DeleteFamilyMemberRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	if appErr := c.service.DeleteFamilyMember(ctx.Request().Context(), familyName, requestData.FamilyMember.ToEntity()); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Family member removed")
}

func (c *RSVPController) CheckHasSubmitted(ctx echo.Context) error {
	familyName, appErr := c.familyNameFromContext(ctx)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	hasSubmitted, appErr := c.service.CheckHasSubmitted(ctx.Request().Context(), familyName)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, dto.CheckRSVPResponse{HasSubmittedRSVP: hasSubmitted}, "RSVP status retrieved")
}
