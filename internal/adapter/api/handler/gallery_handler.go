package handler

import (
	"github.com/labstack/echo/v4"

	"apartio/internal/usecase"
	"apartio/pkg/errors"
	"apartio/pkg/response"
)

type GalleryHandler struct {
	galleryUseCase *usecase.GalleryUseCase
}

func NewGalleryHandler(galleryUseCase *usecase.GalleryUseCase) *GalleryHandler {
	return &GalleryHandler{
		galleryUseCase: galleryUseCase,
	}
}

func (h *GalleryHandler) ListPhotos(c echo.Context) error {
	photos, err := h.galleryUseCase.ListPhotos(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, photos)
}

func (h *GalleryHandler) UploadPhoto(c echo.Context) error {
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

	photo, err := h.galleryUseCase.UploadPhoto(c.Request().Context(), src, contentType, c.FormValue("caption"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, photo)
}

type updateCaptionRequest struct {
	Caption string `json:"caption"`
}

func (h *GalleryHandler) UpdateCaption(c echo.Context) error {
	var req updateCaptionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	photo, err := h.galleryUseCase.UpdateCaption(c.Request().Context(), c.Param("id"), req.Caption)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, photo)
}

func (h *GalleryHandler) DeletePhoto(c echo.Context) error {
	if err := h.galleryUseCase.DeletePhoto(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"success": true})
}
