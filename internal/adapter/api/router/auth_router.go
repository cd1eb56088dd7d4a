package router

import (
	"github.com/labstack/echo/v4"

	"apartio/internal/adapter/api/handler"
	"apartio/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/verify", authHandler.Verify, authMiddleware.RequireAdmin)
}
