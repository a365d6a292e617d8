package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-console/internal/services"
	"maintenance-console/pkg/i18n"
	"maintenance-console/pkg/utils"
)

type ExportController struct {
	*BaseController
	exportService services.ExportServiceInterface
}

func NewExportController(base *BaseController, exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{BaseController: base, exportService: exportService}
}

// Export returns the handler of GET /<resource>/export: the current search,
// every page, as an XLSX download.
func (c *ExportController) Export(resource string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		search := ctx.QueryParam("search")
		c.log(ctx).Debug("export requested", zap.String("resource", resource), zap.String("search", search))

		f, err := c.exportService.Build(ctx.Request().Context(), resource, search, utils.Translator(ctx))
		if err != nil {
			return c.fail(ctx, err, i18n.ErrList, "/"+resource)
		}
		defer f.Close()

		fileName := fmt.Sprintf("%s_%s.xlsx", resource, time.Now().Format("2006-01-02"))
		ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
		ctx.Response().WriteHeader(http.StatusOK)
		return f.Write(ctx.Response().Writer)
	}
}
