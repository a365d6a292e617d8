package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-console/internal/controllers"
	"maintenance-console/pkg/constants"
)

func runItemRouter(e *echo.Echo, ctrl *controllers.ItemController, export *controllers.ExportController) {
	g := e.Group("/" + constants.ResourceItems)
	g.GET("", ctrl.GetItems)
	g.GET("/export", export.Export(constants.ResourceItems))
	g.GET("/detail/:id", ctrl.FindItem)
	g.POST("/detail/:id", ctrl.SaveItem)
	g.DELETE("/:id", ctrl.DeleteItem)
	g.POST("/:id/delete", ctrl.DeleteItem)
}
