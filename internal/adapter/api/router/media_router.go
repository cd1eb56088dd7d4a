package router

import (
	"github.com/labstack/echo/v4"

	"apartio/internal/adapter/api/handler"
)

func SetupMediaRouter(e *echo.Echo) {
	mediaHandler := handler.GetMediaHandler()

	e.POST("/media", mediaHandler.UploadImage)
}
