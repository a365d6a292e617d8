package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"maintenance-console/internal/entities"
	"maintenance-console/internal/services"
	"maintenance-console/internal/view"
	"maintenance-console/pkg/constants"
	apperrors "maintenance-console/pkg/errors"
	"maintenance-console/pkg/i18n"
	"maintenance-console/pkg/types"
	"maintenance-console/pkg/utils"
)

const dashboardView = "dashboard.html"

// DashboardController serves the home page: the counter cards and the
// orders list.
type DashboardController struct {
	*BaseController
	dashboardService services.DashboardServiceInterface
	orderService     services.OrderServiceInterface
}

func NewDashboardController(
	base *BaseController,
	ds services.DashboardServiceInterface,
	orderService services.OrderServiceInterface,
) *DashboardController {
	return &DashboardController{
		BaseController:   base,
		dashboardService: ds,
		orderService:     orderService,
	}
}

func (ctrl *DashboardController) GetDashboard(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams(), ctrl.pageSize)
	reqCtx := c.Request().Context()
	orders := view.ListPage{
		Resource: constants.ResourceOrders,
		Search:   filter.Search,
		BasePath: c.Path(),
	}

	// Searching and paging only refresh the orders table.
	if utils.IsHTMX(c) {
		res, err := ctrl.orderService.GetOrders(reqCtx, filter)
		if err != nil {
			return ctrl.fail(c, err, i18n.ErrList, "")
		}
		orders.Rows = res.Rows
		orders.Pagination = res.Pagination
		return c.Render(http.StatusOK, dashboardView+"#rows", orders)
	}

	var summary *entities.DashboardSummary
	var list *types.ListResult[entities.Order]
	g, gctx := errgroup.WithContext(reqCtx)
	g.Go(func() (err error) {
		summary, err = ctrl.dashboardService.Summary(gctx)
		return err
	})
	g.Go(func() (err error) {
		list, err = ctrl.orderService.GetOrders(gctx, filter)
		return err
	})

	tr := utils.Translator(c)
	page := view.DashboardPage{
		Layout: ctrl.layout(c, tr.T("nav.home"), "home"),
	}
	if err := g.Wait(); err != nil {
		code := apperrors.StatusCode(err)
		ctrl.log(c).Warn("dashboard failed", zap.Int("code", code), zap.Error(err))
		page.Flash = append(page.Flash, apperrors.UserMessage(err, tr.T(i18n.ErrList)))
		orders.Pagination = types.NewPagination(0, 1, ctrl.pageSize)
		page.Orders = orders
		return c.Render(code, dashboardView, page)
	}

	page.Summary = *summary
	orders.Rows = list.Rows
	orders.Pagination = list.Pagination
	page.Orders = orders
	return c.Render(http.StatusOK, dashboardView, page)
}
