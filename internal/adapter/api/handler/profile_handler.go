package handler

import (
	"github.com/labstack/echo/v4"

	"apartio/internal/usecase"
	"apartio/pkg/errors"
	"apartio/pkg/response"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileUseCase.GetProfile(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Bio   string `json:"bio"`
	BioEn string `json:"bioEn"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profile, err := h.profileUseCase.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		Name:  req.Name,
		Bio:   req.Bio,
		BioEn: req.BioEn,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) ReplacePhoto(c echo.Context) error {
	file, err := c.FormFile("photo")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid photo", err))
	}

	if file.Size > maxImageSize {
		return response.Error(c, errors.BadRequest("Photo exceeds the maximum allowed size", nil))
	}

	contentType := file.Header.Get("Content-Type")
	if !isAllowedImageType(contentType) {
		return response.Error(c, errors.BadRequest("Photo type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read photo", err))
	}
	defer src.Close()

	profile, err := h.profileUseCase.ReplacePhoto(c.Request().Context(), src, contentType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}
