package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"maintenance-console/internal/services"
	apperrors "maintenance-console/pkg/errors"
	"maintenance-console/pkg/i18n"
)

// selectFields maps each autocomplete widget to the form field its select
// posts; htmx includes that select, so the current choice arrives under it.
var selectFields = map[string]string{
	services.LookupTechnicians: "technicianID",
	services.LookupEquipments:  "equipmentID",
	services.LookupItems:       "itemID",
}

type LookupController struct {
	*BaseController
	lookupService services.LookupServiceInterface
}

func NewLookupController(base *BaseController, lookupService services.LookupServiceInterface) *LookupController {
	return &LookupController{BaseController: base, lookupService: lookupService}
}

// GetOptions answers GET /lookups/:widget?q= with the <option> list of the
// widget's select. A request overtaken by a newer keystroke gets 204 and
// htmx leaves the select alone.
func (c *LookupController) GetOptions(ctx echo.Context) error {
	widget := ctx.Param("widget")
	field, ok := selectFields[widget]
	if !ok {
		return c.fail(ctx, apperrors.NewHttpError(http.StatusNotFound, "", apperrors.ErrNotFound, map[string]interface{}{"widget": widget}), i18n.ErrList, "")
	}

	selected := parseSelected(ctx.QueryParam(field))
	if selected == 0 {
		selected = parseSelected(ctx.QueryParam("selected"))
	}

	options, err := c.lookupService.Options(ctx.Request().Context(), widget, ctx.QueryParam("q"), selected)
	if err != nil {
		return c.fail(ctx, err, i18n.ErrList, "")
	}

	return ctx.Render(http.StatusOK, orderDetailView+"#options", options)
}

func parseSelected(s string) uint64 {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
