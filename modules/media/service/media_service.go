package service

import (
	"context"

	"wedding-api/core/errors"
	"wedding-api/core/logger"
	"wedding-api/core/utils"
	"wedding-api/modules/media/dto"
	"wedding-api/modules/media/storage"
)

// MediaService ingests uploaded media into the object store and enumerates
// what is there. Uploads are not attributed to a family.
type MediaService struct {
	backend storage.Backend
}

func NewMediaService(backend storage.Backend) *MediaService {
	return &MediaService{backend: backend}
}

// UploadFiles processes each file independently: write under a generated
// unique key, flip public, record the URL. One file's failure does not stop
// the rest; failures are reported beside the successes. Only a batch with
// zero successes surfaces as an error.
func (s *MediaService) UploadFiles(ctx context.Context, files []dto.UploadFile, category string) (*dto.UploadResponse, *errors.AppError) {
	response := &dto.UploadResponse{
		FileLinks: []string{},
		Category:  category,
	}

	for _, file := range files {
		key := utils.ObjectKey(file.Name)

		if err := s.backend.Upload(ctx, key, file.ContentType, file.Name, file.Reader); err != nil {
			logger.Error("MediaService:UploadFiles:Upload:Error:", err, "file", file.Name)
			response.Failures = append(response.Failures, dto.UploadFailure{
				FileName: file.Name,
				Error:    err.Error(),
			})
			continue
		}

		if err := s.backend.MakePublic(ctx, key); err != nil {
			logger.Error("MediaService:UploadFiles:MakePublic:Error:", err, "file", file.Name)
			response.Failures = append(response.Failures, dto.UploadFailure{
				FileName: file.Name,
				Error:    err.Error(),
			})
			continue
		}

		response.FileLinks = append(response.FileLinks, s.backend.PublicURL(key))
	}

	if len(response.FileLinks) == 0 && len(response.Failures) > 0 {
		return response, errors.NewAppError(errors.ErrUpstreamFailure, "all uploads failed", nil).
			WithDetails(response.Failures)
	}

	return response, nil
}

// ListAllAssets maps every object in the bucket to its public URL. The full
// listing is returned on every call; there is no pagination or filtering.
func (s *MediaService) ListAllAssets(ctx context.Context) (*dto.ListImagesResponse, *errors.AppError) {
	keys, err := s.backend.List(ctx)
	if err != nil {
		logger.Error("MediaService:ListAllAssets:List:Error:", err)
		return nil, errors.NewAppError(errors.ErrUpstreamFailure, "failed to list stored media", err)
	}

	images := make([]string, 0, len(keys))
	for _, key := range keys {
		images = append(images, s.backend.PublicURL(key))
	}

	return &dto.ListImagesResponse{Images: images}, nil
}
