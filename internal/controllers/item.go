package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-console/internal/dto"
	"maintenance-console/internal/services"
	"maintenance-console/internal/view"
	"maintenance-console/pkg/constants"
	apperrors "maintenance-console/pkg/errors"
	"maintenance-console/pkg/i18n"
	"maintenance-console/pkg/utils"
)

const (
	itemListView   = "items.html"
	itemDetailView = "item_detail.html"
)

type ItemController struct {
	*BaseController
	itemService services.ItemServiceInterface
}

func NewItemController(
	base *BaseController,
	service services.ItemServiceInterface,
) *ItemController {
	return &ItemController{
		BaseController: base,
		itemService:    service,
	}
}

func (c *ItemController) GetItems(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams(), c.pageSize)

	tr := utils.Translator(ctx)
	page := view.ListPage{
		Layout:   c.layout(ctx, tr.T("nav.items"), constants.ResourceItems),
		Resource: constants.ResourceItems,
		Search:   filter.Search,
	}

	res, err := c.itemService.GetItems(ctx.Request().Context(), filter)
	if err != nil {
		return c.listFailed(ctx, err, itemListView, page)
	}

	page.Rows = res.Rows
	page.Pagination = res.Pagination
	return c.list(ctx, itemListView, page)
}

func (c *ItemController) FindItem(ctx echo.Context) error {
	id, isNew, err := utils.ParseID(ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrGet, "/"+constants.ResourceItems)
	}

	form := dto.ItemFormDTO{}
	if !isNew {
		res, err := c.itemService.FindItem(ctx.Request().Context(), id)
		if err != nil {
			return c.fail(ctx, err, i18n.ErrGet, "/"+constants.ResourceItems)
		}
		form = dto.ItemFormFromEntity(*res)
	}

	return ctx.Render(http.StatusOK, itemDetailView, c.page(ctx, id, isNew, form, nil))
}

func (c *ItemController) SaveItem(ctx echo.Context) error {
	id, isNew, err := utils.ParseID(ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrUpdate, "/"+constants.ResourceItems)
	}

	var form dto.ItemFormDTO
	if err := ctx.Bind(&form); err != nil {
		return c.fail(ctx, apperrors.NewHttpError(http.StatusBadRequest, "", err, nil), saveFallback(isNew), "/"+constants.ResourceItems)
	}

	if err := ctx.Validate(&form); err != nil {
		fields := c.invalid(ctx, err)
		if fields == nil {
			return c.fail(ctx, err, saveFallback(isNew), "/"+constants.ResourceItems)
		}
		c.log(ctx).Debug("SaveItem: validation failed", zap.Any("fields", fields))
		return ctx.Render(http.StatusUnprocessableEntity, itemDetailView, c.page(ctx, id, isNew, form, fields))
	}

	reqCtx := ctx.Request().Context()
	if isNew {
		id, err = c.itemService.CreateItem(reqCtx, form)
	} else {
		err = c.itemService.UpdateItem(reqCtx, id, form)
	}
	if err != nil {
		return c.rejected(ctx, err, saveFallback(isNew), itemDetailView, c.page(ctx, id, isNew, form, nil))
	}

	return c.saved(ctx, constants.ResourceItems, id)
}

func (c *ItemController) DeleteItem(ctx echo.Context) error {
	id, err := utils.ParseStoredID(ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrDelete, "/"+constants.ResourceItems)
	}

	if err := c.itemService.DeleteItem(ctx.Request().Context(), id); err != nil {
		return c.fail(ctx, err, i18n.ErrDelete, "/"+constants.ResourceItems)
	}

	return c.deleted(ctx, "/"+constants.ResourceItems)
}

func (c *ItemController) page(ctx echo.Context, id uint64, isNew bool, form dto.ItemFormDTO, fields map[string]string) view.FormPage {
	tr := utils.Translator(ctx)
	title := tr.T("title.item")
	if isNew {
		title = tr.T("title.new")
	}
	return view.FormPage{
		Layout:   c.layout(ctx, title, constants.ResourceItems),
		Resource: constants.ResourceItems,
		ID:       id,
		IsNew:    isNew,
		Form:     form,
		Errors:   fields,
	}
}
