package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-console/internal/controllers"
	"maintenance-console/pkg/constants"
)

func runEquipmentRouter(e *echo.Echo, ctrl *controllers.EquipmentController, export *controllers.ExportController) {
	g := e.Group("/" + constants.ResourceEquipments)
	g.GET("", ctrl.GetEquipments)
	g.GET("/export", export.Export(constants.ResourceEquipments))
	g.GET("/detail/:id", ctrl.FindEquipment)
	g.POST("/detail/:id", ctrl.SaveEquipment)
	g.DELETE("/:id", ctrl.DeleteEquipment)
	g.POST("/:id/delete", ctrl.DeleteEquipment)
}
