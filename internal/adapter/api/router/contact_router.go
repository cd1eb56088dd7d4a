package router

import (
	"github.com/labstack/echo/v4"

	"apartio/internal/adapter/api/handler"
)

func SetupContactRouter(e *echo.Echo) {
	contactHandler := handler.GetContactHandler()

	e.GET("/messages", contactHandler.ListMessages)
	e.POST("/messages", contactHandler.SubmitMessage)
	e.PUT("/messages/:id", contactHandler.UpdateMessageStatus)
	e.DELETE("/messages/:id", contactHandler.DeleteMessage)
}
