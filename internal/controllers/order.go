package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"maintenance-console/internal/dto"
	"maintenance-console/internal/entities"
	"maintenance-console/internal/services"
	"maintenance-console/internal/view"
	"maintenance-console/pkg/constants"
	apperrors "maintenance-console/pkg/errors"
	"maintenance-console/pkg/i18n"
	"maintenance-console/pkg/types"
	"maintenance-console/pkg/utils"
)

const (
	orderListView   = "orders.html"
	orderDetailView = "order_detail.html"
)

type OrderController struct {
	*BaseController
	orderService     services.OrderServiceInterface
	orderLineService services.OrderLineServiceInterface
	lookupService    services.LookupServiceInterface
}

func NewOrderController(
	base *BaseController,
	orderService services.OrderServiceInterface,
	orderLineService services.OrderLineServiceInterface,
	lookupService services.LookupServiceInterface,
) *OrderController {
	return &OrderController{
		BaseController:   base,
		orderService:     orderService,
		orderLineService: orderLineService,
		lookupService:    lookupService,
	}
}

func (c *OrderController) GetOrders(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams(), c.pageSize)

	tr := utils.Translator(ctx)
	page := view.ListPage{
		Layout:   c.layout(ctx, tr.T("nav.orders"), constants.ResourceOrders),
		Resource: constants.ResourceOrders,
		Search:   filter.Search,
	}

	res, err := c.orderService.GetOrders(ctx.Request().Context(), filter)
	if err != nil {
		return c.listFailed(ctx, err, orderListView, page)
	}

	page.Rows = res.Rows
	page.Pagination = res.Pagination
	return c.list(ctx, orderListView, page)
}

func (c *OrderController) FindOrder(ctx echo.Context) error {
	id, isNew, err := utils.ParseID(ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrGet, "/"+constants.ResourceOrders)
	}

	reqCtx := ctx.Request().Context()
	form := dto.NewOrderForm()
	if !isNew {
		res, err := c.orderService.FindOrder(reqCtx, id)
		if err != nil {
			return c.fail(ctx, err, i18n.ErrGet, "/"+constants.ResourceOrders)
		}
		form = dto.OrderFormFromEntity(*res)
	}

	page, err := c.page(ctx, id, isNew, form, nil)
	if err != nil {
		return c.fail(ctx, err, i18n.ErrGet, "/"+constants.ResourceOrders)
	}
	return ctx.Render(http.StatusOK, orderDetailView, page)
}

func (c *OrderController) SaveOrder(ctx echo.Context) error {
	id, isNew, err := utils.ParseID(ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrUpdate, "/"+constants.ResourceOrders)
	}

	var form dto.OrderFormDTO
	if err := ctx.Bind(&form); err != nil {
		return c.fail(ctx, apperrors.NewHttpError(http.StatusBadRequest, "", err, nil), saveFallback(isNew), "/"+constants.ResourceOrders)
	}

	if err := ctx.Validate(&form); err != nil {
		fields := c.invalid(ctx, err)
		if fields == nil {
			return c.fail(ctx, err, saveFallback(isNew), "/"+constants.ResourceOrders)
		}
		c.log(ctx).Debug("SaveOrder: validation failed", zap.Any("fields", fields))
		page, err := c.page(ctx, id, isNew, form, fields)
		if err != nil {
			return c.fail(ctx, err, i18n.ErrGet, "/"+constants.ResourceOrders)
		}
		return ctx.Render(http.StatusUnprocessableEntity, orderDetailView, page)
	}

	reqCtx := ctx.Request().Context()
	if isNew {
		id, err = c.orderService.CreateOrder(reqCtx, form)
	} else {
		err = c.orderService.UpdateOrder(reqCtx, id, form)
	}
	if err != nil {
		page, perr := c.page(ctx, id, isNew, form, nil)
		if perr != nil {
			return c.fail(ctx, err, saveFallback(isNew), "/"+constants.ResourceOrders)
		}
		return c.rejected(ctx, err, saveFallback(isNew), orderDetailView, page)
	}

	return c.saved(ctx, constants.ResourceOrders, id)
}

func (c *OrderController) DeleteOrder(ctx echo.Context) error {
	id, err := utils.ParseStoredID(ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrDelete, "/"+constants.ResourceOrders)
	}

	if err := c.orderService.DeleteOrder(ctx.Request().Context(), id); err != nil {
		return c.fail(ctx, err, i18n.ErrDelete, "/"+constants.ResourceOrders)
	}

	return c.deleted(ctx, "/"+constants.ResourceOrders)
}

// page assembles the order form: the technician and equipment choices and,
// for a stored order, its lines. The backend calls run concurrently.
func (c *OrderController) page(ctx echo.Context, id uint64, isNew bool, form dto.OrderFormDTO, fields map[string]string) (view.FormPage, error) {
	tr := utils.Translator(ctx)
	title := tr.T("title.order")
	if isNew {
		title = tr.T("title.new")
	}

	var technicians, equipments []types.Option
	var lines *view.LinesBlock

	g, gctx := errgroup.WithContext(ctx.Request().Context())
	g.Go(func() (err error) {
		technicians, err = c.lookupService.Preload(gctx, services.LookupTechnicians, form.TechnicianID)
		return err
	})
	g.Go(func() (err error) {
		equipments, err = c.lookupService.Preload(gctx, services.LookupEquipments, form.EquipmentID)
		return err
	})
	if !isNew {
		g.Go(func() (err error) {
			lines, err = c.lines(gctx, id)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return view.FormPage{}, err
	}

	return view.FormPage{
		Layout:   c.layout(ctx, title, constants.ResourceOrders),
		Resource: constants.ResourceOrders,
		ID:       id,
		IsNew:    isNew,
		Form:     form,
		Errors:   fields,
		Choices:  constants.OrderTypes,
		Options: map[string][]types.Option{
			services.LookupTechnicians: technicians,
			services.LookupEquipments:  equipments,
		},
		Lines: lines,
	}, nil
}

// lines loads the order lines with the item options used to label them and
// to add new ones.
func (c *OrderController) lines(ctx context.Context, orderID uint64) (*view.LinesBlock, error) {
	rows, err := c.orderLineService.GetOrderLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := c.lookupService.Preload(ctx, services.LookupItems, 0)
	if err != nil {
		return nil, err
	}

	labels := make(map[uint64]string, len(items))
	for _, it := range items {
		labels[it.ID] = it.Label
	}

	block := &view.LinesBlock{OrderID: orderID, Items: items, Rows: make([]view.LineRow, 0, len(rows))}
	for _, line := range rows {
		block.Rows = append(block.Rows, lineRow(line, labels))
	}
	return block, nil
}

func lineRow(line entities.OrderLine, labels map[uint64]string) view.LineRow {
	label, ok := labels[line.ItemID]
	if !ok {
		label = fmt.Sprintf("#%d", line.ItemID)
	}
	return view.LineRow{Line: line, ItemLabel: label}
}
