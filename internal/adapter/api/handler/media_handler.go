package handler

import (
	"github.com/labstack/echo/v4"

	"apartio/internal/domain/service"
	"apartio/pkg/errors"
	"apartio/pkg/response"
)

const maxImageSize = 5 * 1024 * 1024

type MediaHandler struct {
	mediaStorage service.MediaStorage
}

func NewMediaHandler(mediaStorage service.MediaStorage) *MediaHandler {
	return &MediaHandler{
		mediaStorage: mediaStorage,
	}
}

var mediaHandler *MediaHandler

func SetupMediaHandler(mediaStorage service.MediaStorage) {
	mediaHandler = NewMediaHandler(mediaStorage)
}

func GetMediaHandler() *MediaHandler {
	return mediaHandler
}

type uploadResponse struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
}

// UploadImage stores a listing image and hands back the URL plus the storage
// identifier the admin panel keeps alongside it for later deletion.
func (h *MediaHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid image", err))
	}

	if file.Size > maxImageSize {
		return response.Error(c, errors.BadRequest("Image exceeds the maximum allowed size", nil))
	}

	contentType := file.Header.Get("Content-Type")
	if !isAllowedImageType(contentType) {
		return response.Error(c, errors.BadRequest("Image type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read image", err))
	}
	defer src.Close()

	result, err := h.mediaStorage.Upload(c.Request().Context(), src, contentType, "apartments")
	if err != nil {
		return response.Error(c, errors.Internal("Failed to upload image", err))
	}

	return response.Success(c, uploadResponse{
		URL:       result.URL,
		StorageID: result.StorageID,
	})
}

func isAllowedImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	}
	return false
}
