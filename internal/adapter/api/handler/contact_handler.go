package handler

import (
	"github.com/labstack/echo/v4"

	"apartio/internal/usecase"
	"apartio/pkg/response"
)

type ContactHandler struct {
	contactUseCase *usecase.ContactUseCase
}

func NewContactHandler(contactUseCase *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
	}
}

type submitMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

type updateMessageStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read"`
}

func (h *ContactHandler) ListMessages(c echo.Context) error {
	messages, err := h.contactUseCase.ListMessages(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *ContactHandler) SubmitMessage(c echo.Context) error {
	var req submitMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.contactUseCase.SubmitMessage(c.Request().Context(), usecase.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ContactHandler) UpdateMessageStatus(c echo.Context) error {
	var req updateMessageStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.contactUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, message)
}

func (h *ContactHandler) DeleteMessage(c echo.Context) error {
	if err := h.contactUseCase.DeleteMessage(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"success": true})
}
