package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-console/internal/controllers"
	"maintenance-console/pkg/constants"
)

func runTechnicianRouter(e *echo.Echo, ctrl *controllers.TechnicianController, export *controllers.ExportController) {
	g := e.Group("/" + constants.ResourceTechnicians)
	g.GET("", ctrl.GetTechnicians)
	g.GET("/export", export.Export(constants.ResourceTechnicians))
	g.GET("/detail/:id", ctrl.FindTechnician)
	g.POST("/detail/:id", ctrl.SaveTechnician)
	g.DELETE("/:id", ctrl.DeleteTechnician)
	g.POST("/:id/delete", ctrl.DeleteTechnician)
}
