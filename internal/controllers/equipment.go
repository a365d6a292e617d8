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
	equipmentListView   = "equipments.html"
	equipmentDetailView = "equipment_detail.html"
)

type EquipmentController struct {
	*BaseController
	equipmentService services.EquipmentServiceInterface
}

func NewEquipmentController(
	base *BaseController,
	service services.EquipmentServiceInterface,
) *EquipmentController {
	return &EquipmentController{
		BaseController:   base,
		equipmentService: service,
	}
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams(), c.pageSize)

	tr := utils.Translator(ctx)
	page := view.ListPage{
		Layout:   c.layout(ctx, tr.T("nav.equipments"), constants.ResourceEquipments),
		Resource: constants.ResourceEquipments,
		Search:   filter.Search,
	}

	res, err := c.equipmentService.GetEquipments(ctx.Request().Context(), filter)
	if err != nil {
		return c.listFailed(ctx, err, equipmentListView, page)
	}

	page.Rows = res.Rows
	page.Pagination = res.Pagination
	return c.list(ctx, equipmentListView, page)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	id, isNew, err := utils.ParseID(ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrGet, "/"+constants.ResourceEquipments)
	}

	form := dto.EquipmentFormDTO{}
	if !isNew {
		res, err := c.equipmentService.FindEquipment(ctx.Request().Context(), id)
		if err != nil {
			return c.fail(ctx, err, i18n.ErrGet, "/"+constants.ResourceEquipments)
		}
		form = dto.EquipmentFormFromEntity(*res)
	}

	return ctx.Render(http.StatusOK, equipmentDetailView, c.page(ctx, id, isNew, form, nil))
}

func (c *EquipmentController) SaveEquipment(ctx echo.Context) error {
	id, isNew, err := utils.ParseID(ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrUpdate, "/"+constants.ResourceEquipments)
	}

	var form dto.EquipmentFormDTO
	if err := ctx.Bind(&form); err != nil {
		return c.fail(ctx, apperrors.NewHttpError(http.StatusBadRequest, "", err, nil), saveFallback(isNew), "/"+constants.ResourceEquipments)
	}

	if err := ctx.Validate(&form); err != nil {
		fields := c.invalid(ctx, err)
		if fields == nil {
			return c.fail(ctx, err, saveFallback(isNew), "/"+constants.ResourceEquipments)
		}
		c.log(ctx).Debug("SaveEquipment: validation failed", zap.Any("fields", fields))
		return ctx.Render(http.StatusUnprocessableEntity, equipmentDetailView, c.page(ctx, id, isNew, form, fields))
	}

	reqCtx := ctx.Request().Context()
	if isNew {
		id, err = c.equipmentService.CreateEquipment(reqCtx, form)
	} else {
		err = c.equipmentService.UpdateEquipment(reqCtx, id, form)
	}
	if err != nil {
		return c.rejected(ctx, err, saveFallback(isNew), equipmentDetailView, c.page(ctx, id, isNew, form, nil))
	}

	return c.saved(ctx, constants.ResourceEquipments, id)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	id, err := utils.ParseStoredID(ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrDelete, "/"+constants.ResourceEquipments)
	}

	if err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), id); err != nil {
		return c.fail(ctx, err, i18n.ErrDelete, "/"+constants.ResourceEquipments)
	}

	return c.deleted(ctx, "/"+constants.ResourceEquipments)
}

func (c *EquipmentController) page(ctx echo.Context, id uint64, isNew bool, form dto.EquipmentFormDTO, fields map[string]string) view.FormPage {
	tr := utils.Translator(ctx)
	title := tr.T("title.equipment")
	if isNew {
		title = tr.T("title.new")
	}
	return view.FormPage{
		Layout:   c.layout(ctx, title, constants.ResourceEquipments),
		Resource: constants.ResourceEquipments,
		ID:       id,
		IsNew:    isNew,
		Form:     form,
		Errors:   fields,
		Choices:  constants.EquipmentTypes,
	}
}
