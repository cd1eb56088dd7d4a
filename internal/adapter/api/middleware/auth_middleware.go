package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"apartio/internal/usecase"
	"apartio/pkg/response"
)

type AuthMiddleware struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthMiddleware(authUseCase *usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

// RequireAdmin checks the bearer token issued at login. A missing header is
// a 401; a present but undecodable token is a 400, so clients can tell the
// two apart.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, response.ErrorBody{Error: "Access denied. No token provided."})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.JSON(http.StatusUnauthorized, response.ErrorBody{Error: "Invalid authorization format"})
		}

		claims, err := m.authUseCase.Verify(c.Request().Context(), parts[1])
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrorBody{Error: "Invalid token"})
		}

		c.Set("admin", claims)

		return next(c)
	}
}
