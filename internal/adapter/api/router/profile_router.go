package router

import (
	"github.com/labstack/echo/v4"

	"apartio/internal/adapter/api/handler"
)

func SetupProfileRouter(e *echo.Echo) {
	profileHandler := handler.GetProfileHandler()

	e.GET("/profile", profileHandler.GetProfile)
	e.PUT("/profile", profileHandler.UpdateProfile)
	e.POST("/profile/photo", profileHandler.ReplacePhoto)
}
