package controller

import (
	"mime/multipart"

	"wedding-api/core/controller"
	"wedding-api/core/errors"
	"wedding-api/core/logger"
	"wedding-api/modules/media/dto"
	"wedding-api/modules/media/service"

	"github.com/labstack/echo/v4"
)

type MediaController struct {
	controller.BaseController
	service *service.MediaService
}

func NewMediaController(service *service.MediaService) *MediaController {
	return &MediaController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *MediaController) Upload(ctx echo.Context) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid multipart form", nil)
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return c.BadRequest(errors.ErrInvalidInput, "No files provided", nil)
	}
	category := ctx.FormValue("category")

	files := make([]dto.UploadFile, 0, len(headers))
	var opened []multipart.File
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			logger.Error("MediaController:Upload:Open:Error:", err, "file", header.Filename)
			return c.InternalServerError(errors.ErrInternalServer, "Failed to read uploaded file", nil)
		}
		opened = append(opened, f)

		contentType := header.Header.Get(echo.HeaderContentType)
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		files = append(files, dto.UploadFile{
			Name:        header.Filename,
			ContentType: contentType,
			Reader:      f,
		})
	}

	response, appErr := c.service.UploadFiles(ctx.Request().Context(), files, category)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	message := "Files uploaded"
	if len(response.Failures) > 0 {
		message = "Some files failed to upload"
	}
	return c.SuccessResponse(ctx, response, message)
}

func (c *MediaController) ListImages(ctx echo.Context) error {
	response, appErr := c.service.ListAllAssets(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, response, "Images retrieved")
}
