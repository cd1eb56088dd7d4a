package router

import (
	"github.com/labstack/echo/v4"

	"apartio/internal/adapter/api/handler"
)

// SetupApartmentRouter initializes listing routes.
//
// NOTE: the mutating routes are currently open; the bearer check is applied
// only to /auth/verify. See DESIGN.md before changing this.
func SetupApartmentRouter(e *echo.Echo) {
	apartmentHandler := handler.GetApartmentHandler()

	e.GET("/listings", apartmentHandler.ListApartments)
	e.GET("/listings/:id", apartmentHandler.GetApartment)
	e.POST("/listings", apartmentHandler.CreateApartment)
	e.PUT("/listings/:id", apartmentHandler.UpdateApartment)
	e.DELETE("/listings/:id", apartmentHandler.DeleteApartment)
}
