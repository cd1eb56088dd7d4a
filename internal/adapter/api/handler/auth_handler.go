package handler

import (
	"github.com/labstack/echo/v4"

	"apartio/internal/infrastructure/auth"
	"apartio/internal/usecase"
	"apartio/pkg/errors"
	"apartio/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type loginRequest struct {
	Secret string `json:"secret"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	token, err := h.authUseCase.Login(c.Request().Context(), req.Secret)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, loginResponse{
		Success: true,
		Token:   token,
		Message: "Authentication successful",
	})
}

type verifyResponse struct {
	Valid bool              `json:"valid"`
	Admin *auth.AdminClaims `json:"admin"`
}

// Verify echoes the decoded claims. The token itself was checked by the
// bearer middleware, which stored the claims in the request context.
func (h *AuthHandler) Verify(c echo.Context) error {
	claims, ok := c.Get("admin").(*auth.AdminClaims)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	return response.Success(c, verifyResponse{
		Valid: true,
		Admin: claims,
	})
}
