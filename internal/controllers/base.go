package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-console/internal/services"
	"maintenance-console/internal/view"
	"maintenance-console/pkg/constants"
	"maintenance-console/pkg/contextkeys"
	apperrors "maintenance-console/pkg/errors"
	"maintenance-console/pkg/i18n"
	"maintenance-console/pkg/types"
	"maintenance-console/pkg/utils"
	"maintenance-console/pkg/validation"
)

// BaseController holds what every page controller needs: the flash store
// for messages that survive a redirect and the list page size.
type BaseController struct {
	flash    services.FlashServiceInterface
	pageSize int
	logger   *zap.Logger
}

func NewBaseController(flash services.FlashServiceInterface, pageSize int, logger *zap.Logger) *BaseController {
	return &BaseController{flash: flash, pageSize: pageSize, logger: logger}
}

// layout builds the page frame and pops the pending flash messages of the
// session.
func (b *BaseController) layout(c echo.Context, title, nav string) view.Layout {
	l := view.Layout{Title: title, Nav: nav}
	if b.flash == nil {
		return l
	}
	ctx := c.Request().Context()
	msgs, err := b.flash.Pop(ctx, contextkeys.SessionID(ctx))
	if err != nil {
		b.log(c).Warn("flash pop failed", zap.Error(err))
		return l
	}
	l.Flash = msgs
	return l
}

func (b *BaseController) log(c echo.Context) *zap.Logger {
	return utils.Logger(c, b.logger)
}

// notify queues msg for the next full page of the session.
func (b *BaseController) notify(c echo.Context, msg string) {
	if b.flash == nil {
		return
	}
	ctx := c.Request().Context()
	if err := b.flash.Push(ctx, contextkeys.SessionID(ctx), msg); err != nil {
		b.log(c).Warn("flash push failed", zap.Error(err))
	}
}

// fail reports err to the operator. htmx requests get the message in
// HX-Trigger; full page requests get it as a flash on the page at
// redirectTo.
func (b *BaseController) fail(c echo.Context, err error, fallbackKey, redirectTo string) error {
	if errors.Is(err, apperrors.ErrSuperseded) {
		return c.NoContent(http.StatusNoContent)
	}
	if utils.IsHTMX(c) || redirectTo == "" {
		return utils.ErrorResponse(c, err, fallbackKey, b.log(c))
	}

	tr := utils.Translator(c)
	b.log(c).Warn("page request failed",
		zap.Int("code", apperrors.StatusCode(err)),
		zap.String("path", c.Request().URL.Path),
		zap.Error(err),
	)
	b.notify(c, apperrors.UserMessage(err, tr.T(fallbackKey)))
	return c.Redirect(http.StatusSeeOther, redirectTo)
}

// deleted answers a successful delete. The htmx row swap gets an empty body,
// so the row disappears; the plain form fallback goes back to the list.
func (b *BaseController) deleted(c echo.Context, listPath string) error {
	msg := utils.Translator(c).T(i18n.MsgDeleted)
	if utils.IsHTMX(c) {
		utils.TriggerMessage(c, msg)
		return c.NoContent(http.StatusOK)
	}
	b.notify(c, msg)
	return c.Redirect(http.StatusSeeOther, listPath)
}

// saved redirects after a create or update: save_close goes to the list,
// anything else to the record's detail.
func (b *BaseController) saved(c echo.Context, resource string, id uint64) error {
	b.notify(c, utils.Translator(c).T(i18n.MsgSaved))
	if c.FormValue("action") == constants.ActionSaveClose {
		return utils.Redirect(c, "/"+resource)
	}
	return utils.Redirect(c, utils.DetailPath(resource, id))
}

// invalid returns the field messages of a validation failure, or nil when
// err is not one.
func (b *BaseController) invalid(c echo.Context, err error) map[string]string {
	fields := validation.FieldErrors(err, utils.Translator(c))
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// list renders either the whole list page or, for htmx, only its rows.
func (b *BaseController) list(c echo.Context, template string, page view.ListPage) error {
	if utils.IsHTMX(c) {
		return c.Render(http.StatusOK, template+"#rows", page)
	}
	return c.Render(http.StatusOK, template, page)
}

// rejected re-renders a submitted form the backend refused, keeping the
// operator's input and showing the reason as an alert.
func (b *BaseController) rejected(c echo.Context, err error, fallbackKey, template string, page view.FormPage) error {
	code := apperrors.StatusCode(err)
	b.log(c).Warn("save rejected",
		zap.Int("code", code),
		zap.String("path", c.Request().URL.Path),
		zap.Error(err),
	)
	page.Flash = append(page.Flash, apperrors.UserMessage(err, utils.Translator(c).T(fallbackKey)))
	return c.Render(code, template, page)
}

// saveFallback is the alert text of a failed save.
func saveFallback(isNew bool) string {
	if isNew {
		return i18n.ErrCreate
	}
	return i18n.ErrUpdate
}

// listFailed shows an empty list with the failure as an alert. htmx rows
// requests keep the rows already on screen.
func (b *BaseController) listFailed(c echo.Context, err error, template string, page view.ListPage) error {
	if utils.IsHTMX(c) || errors.Is(err, apperrors.ErrSuperseded) {
		return b.fail(c, err, i18n.ErrList, "")
	}
	code := apperrors.StatusCode(err)
	b.log(c).Warn("list failed", zap.Int("code", code), zap.String("path", c.Request().URL.Path), zap.Error(err))
	page.Flash = append(page.Flash, apperrors.UserMessage(err, utils.Translator(c).T(i18n.ErrList)))
	page.Pagination = types.NewPagination(0, 1, b.pageSize)
	return c.Render(code, template, page)
}
