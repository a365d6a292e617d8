package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-console/internal/controllers"
)

func runDashboardRouter(e *echo.Echo, ctrl *controllers.DashboardController) {
	e.GET("/", ctrl.GetDashboard)
	e.GET("/pagina-inicial", ctrl.GetDashboard)
}

func runLookupRouter(e *echo.Echo, ctrl *controllers.LookupController) {
	e.GET("/lookups/:widget", ctrl.GetOptions)
}
