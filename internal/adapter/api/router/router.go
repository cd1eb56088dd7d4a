package router

import (
	"github.com/labstack/echo/v4"

	"apartio/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupApartmentRouter(e)
	SetupMediaRouter(e)
	SetupGalleryRouter(e)
	SetupProfileRouter(e)
	SetupContactRouter(e)
	SetupHealthRouter(e)
}
