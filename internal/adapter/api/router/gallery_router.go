package router

import (
	"github.com/labstack/echo/v4"

	"apartio/internal/adapter/api/handler"
)

func SetupGalleryRouter(e *echo.Echo) {
	galleryHandler := handler.GetGalleryHandler()

	e.GET("/gallery", galleryHandler.ListPhotos)
	e.POST("/gallery", galleryHandler.UploadPhoto)
	e.PUT("/gallery/:id", galleryHandler.UpdateCaption)
	e.DELETE("/gallery/:id", galleryHandler.DeletePhoto)
}
