package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-console/internal/dto"
	"maintenance-console/internal/services"
	"maintenance-console/pkg/constants"
	apperrors "maintenance-console/pkg/errors"
	"maintenance-console/pkg/i18n"
	"maintenance-console/pkg/utils"
)

// The lines sub-form lives inside the order page and talks htmx only.

func (c *OrderController) GetOrderLines(ctx echo.Context) error {
	orderID, err := utils.ParseStoredID(ctx.Param("orderID"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrList, "")
	}

	block, err := c.lines(ctx.Request().Context(), orderID)
	if err != nil {
		return c.fail(ctx, err, i18n.ErrList, "")
	}
	return ctx.Render(http.StatusOK, orderDetailView+"#lines", block)
}

// AddOrderLine creates a line and answers with its row, which htmx appends
// to the table.
func (c *OrderController) AddOrderLine(ctx echo.Context) error {
	orderID, err := utils.ParseStoredID(ctx.Param("orderID"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrCreate, "")
	}

	form, err := c.bindLine(ctx, orderID)
	if err != nil {
		return c.fail(ctx, err, i18n.ErrCreate, "")
	}

	reqCtx := ctx.Request().Context()
	line, err := c.orderLineService.AddOrderLine(reqCtx, *form)
	if err != nil {
		return c.fail(ctx, err, i18n.ErrCreate, "")
	}

	labels := map[uint64]string{}
	if opts, err := c.lookupService.Preload(reqCtx, services.LookupItems, line.ItemID); err == nil {
		for _, o := range opts {
			labels[o.ID] = o.Label
		}
	} else {
		c.log(ctx).Warn("AddOrderLine: item label lookup failed", zap.Uint64("item_id", line.ItemID), zap.Error(err))
	}

	return ctx.Render(http.StatusOK, orderDetailView+"#line_row", lineRow(*line, labels))
}

// UpdateOrderLine saves an inline edit. The table is left as typed; only
// the alert reports the outcome.
func (c *OrderController) UpdateOrderLine(ctx echo.Context) error {
	orderID, err := utils.ParseStoredID(ctx.Param("orderID"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrUpdate, "")
	}
	id, err := utils.ParseStoredID(ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrUpdate, "")
	}

	form, err := c.bindLine(ctx, orderID)
	if err != nil {
		return c.fail(ctx, err, i18n.ErrUpdate, "")
	}

	_, changed, err := c.orderLineService.UpdateOrderLine(ctx.Request().Context(), id, *form)
	if err != nil {
		return c.fail(ctx, err, i18n.ErrUpdate, "")
	}
	if changed {
		utils.TriggerMessage(ctx, utils.Translator(ctx).T(i18n.MsgSaved))
	}
	return ctx.NoContent(http.StatusOK)
}

func (c *OrderController) DeleteOrderLine(ctx echo.Context) error {
	orderID, err := utils.ParseStoredID(ctx.Param("orderID"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrDelete, "")
	}
	id, err := utils.ParseStoredID(ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrDelete, "")
	}

	if err := c.orderLineService.DeleteOrderLine(ctx.Request().Context(), orderID, id); err != nil {
		return c.fail(ctx, err, i18n.ErrDelete, "")
	}
	return c.deleted(ctx, utils.DetailPath(constants.ResourceOrders, orderID))
}

// bindLine reads and validates a line form. The order id always comes from
// the path. A validation failure becomes a 422 carrying the first field
// message.
func (c *OrderController) bindLine(ctx echo.Context, orderID uint64) (*dto.OrderLineFormDTO, error) {
	var form dto.OrderLineFormDTO
	if err := ctx.Bind(&form); err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "", err, nil)
	}
	form.OrderID = orderID

	if err := ctx.Validate(&form); err != nil {
		fields := c.invalid(ctx, err)
		for _, name := range []string{"itemID", "amount", "total", "orderID"} {
			if msg, ok := fields[name]; ok {
				tr := utils.Translator(ctx)
				return nil, apperrors.NewHttpError(http.StatusUnprocessableEntity, tr.T("field."+name)+": "+msg, err, nil)
			}
		}
		return nil, apperrors.NewHttpError(http.StatusUnprocessableEntity, "", err, nil)
	}
	return &form, nil
}
