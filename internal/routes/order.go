package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-console/internal/controllers"
	"maintenance-console/pkg/constants"
)

func runOrderRouter(e *echo.Echo, ctrl *controllers.OrderController, export *controllers.ExportController) {
	g := e.Group("/" + constants.ResourceOrders)
	g.GET("", ctrl.GetOrders)
	g.GET("/export", export.Export(constants.ResourceOrders))
	g.GET("/detail/:id", ctrl.FindOrder)
	g.POST("/detail/:id", ctrl.SaveOrder)
	g.DELETE("/:id", ctrl.DeleteOrder)
	g.POST("/:id/delete", ctrl.DeleteOrder)

	// Lines sub-form
	g.GET("/:orderID/lines", ctrl.GetOrderLines)
	g.POST("/:orderID/lines", ctrl.AddOrderLine)
	g.PUT("/:orderID/lines/:id", ctrl.UpdateOrderLine)
	g.DELETE("/:orderID/lines/:id", ctrl.DeleteOrderLine)
}
