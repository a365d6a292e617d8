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
	technicianListView   = "technicians.html"
	technicianDetailView = "technician_detail.html"
)

type TechnicianController struct {
	*BaseController
	technicianService services.TechnicianServiceInterface
}

func NewTechnicianController(
	base *BaseController,
	service services.TechnicianServiceInterface,
) *TechnicianController {
	return &TechnicianController{
		BaseController:    base,
		technicianService: service,
	}
}

func (c *TechnicianController) GetTechnicians(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.QueryParams(), c.pageSize)

	tr := utils.Translator(ctx)
	page := view.ListPage{
		Layout:   c.layout(ctx, tr.T("nav.technicians"), constants.ResourceTechnicians),
		Resource: constants.ResourceTechnicians,
		Search:   filter.Search,
	}

	res, err := c.technicianService.GetTechnicians(ctx.Request().Context(), filter)
	if err != nil {
		return c.listFailed(ctx, err, technicianListView, page)
	}

	page.Rows = res.Rows
	page.Pagination = res.Pagination
	return c.list(ctx, technicianListView, page)
}

func (c *TechnicianController) FindTechnician(ctx echo.Context) error {
	id, isNew, err := utils.ParseID(ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrGet, "/"+constants.ResourceTechnicians)
	}

	form := dto.TechnicianFormDTO{}
	if !isNew {
		res, err := c.technicianService.FindTechnician(ctx.Request().Context(), id)
		if err != nil {
			return c.fail(ctx, err, i18n.ErrGet, "/"+constants.ResourceTechnicians)
		}
		form = dto.TechnicianFormFromEntity(*res)
	}

	return ctx.Render(http.StatusOK, technicianDetailView, c.page(ctx, id, isNew, form, nil))
}

func (c *TechnicianController) SaveTechnician(ctx echo.Context) error {
	id, isNew, err := utils.ParseID(ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrUpdate, "/"+constants.ResourceTechnicians)
	}

	var form dto.TechnicianFormDTO
	if err := ctx.Bind(&form); err != nil {
		return c.fail(ctx, apperrors.NewHttpError(http.StatusBadRequest, "", err, nil), saveFallback(isNew), "/"+constants.ResourceTechnicians)
	}

	if err := ctx.Validate(&form); err != nil {
		fields := c.invalid(ctx, err)
		if fields == nil {
			return c.fail(ctx, err, saveFallback(isNew), "/"+constants.ResourceTechnicians)
		}
		c.log(ctx).Debug("SaveTechnician: validation failed", zap.Any("fields", fields))
		return ctx.Render(http.StatusUnprocessableEntity, technicianDetailView, c.page(ctx, id, isNew, form, fields))
	}

	reqCtx := ctx.Request().Context()
	if isNew {
		id, err = c.technicianService.CreateTechnician(reqCtx, form)
	} else {
		err = c.technicianService.UpdateTechnician(reqCtx, id, form)
	}
	if err != nil {
		return c.rejected(ctx, err, saveFallback(isNew), technicianDetailView, c.page(ctx, id, isNew, form, nil))
	}

	return c.saved(ctx, constants.ResourceTechnicians, id)
}

func (c *TechnicianController) DeleteTechnician(ctx echo.Context) error {
	id, err := utils.ParseStoredID(ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, err, i18n.ErrDelete, "/"+constants.ResourceTechnicians)
	}

	if err := c.technicianService.DeleteTechnician(ctx.Request().Context(), id); err != nil {
		return c.fail(ctx, err, i18n.ErrDelete, "/"+constants.ResourceTechnicians)
	}

	return c.deleted(ctx, "/"+constants.ResourceTechnicians)
}

func (c *TechnicianController) page(ctx echo.Context, id uint64, isNew bool, form dto.TechnicianFormDTO, fields map[string]string) view.FormPage {
	tr := utils.Translator(ctx)
	title := tr.T("title.technician")
	if isNew {
		title = tr.T("title.new")
	}
	return view.FormPage{
		Layout:   c.layout(ctx, title, constants.ResourceTechnicians),
		Resource: constants.ResourceTechnicians,
		ID:       id,
		IsNew:    isNew,
		Form:     form,
		Errors:   fields,
	}
}
