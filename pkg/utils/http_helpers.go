package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-console/pkg/constants"
	"maintenance-console/pkg/contextkeys"
	apperrors "maintenance-console/pkg/errors"
	"maintenance-console/pkg/i18n"
	"maintenance-console/pkg/types"
)

// ParseFilterFromQuery reads ?search=&page= of a list page. The page size is
// fixed by configuration, not by the caller.
func ParseFilterFromQuery(values url.Values, limit int) types.Filter {
	filter := types.Filter{
		Search: strings.TrimSpace(values.Get("search")),
		Page:   1,
		Limit:  limit,
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			filter.Page = p
		}
	}
	if idStr := values.Get("id"); idStr != "" {
		if id, err := strconv.ParseUint(idStr, 10, 64); err == nil {
			filter.ID = id
		}
	}
	return filter
}

// ParseID reads a record id path param. "nova" stands for a record that does
// not exist yet and yields isNew.
func ParseID(param string) (id uint64, isNew bool, err error) {
	if param == constants.NewRecordID {
		return 0, true, nil
	}
	id, err = strconv.ParseUint(param, 10, 64)
	if err != nil || id == 0 {
		return 0, false, apperrors.NewHttpError(
			http.StatusBadRequest,
			"",
			apperrors.ErrInvalidID,
			map[string]interface{}{"param": param},
		)
	}
	return id, false, nil
}

// ParseStoredID is ParseID for routes that act on a record that must already
// exist, where "nova" is as invalid as any other non-number.
func ParseStoredID(param string) (uint64, error) {
	id, isNew, err := ParseID(param)
	if err != nil {
		return 0, err
	}
	if isNew {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"",
			apperrors.ErrInvalidID,
			map[string]interface{}{"param": param},
		)
	}
	return id, nil
}

func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get(constants.HeaderHXRequest) == "true"
}

// TriggerMessage asks the page script to show msg in an alert once the htmx
// response is processed.
func TriggerMessage(c echo.Context, msg string) {
	payload, err := json.Marshal(map[string]string{"showMessage": msg})
	if err != nil {
		return
	}
	c.Response().Header().Set(constants.HeaderHXTrigger, string(payload))
}

// Translator returns the request's translator set by the locale middleware,
// or a Brazilian Portuguese one.
func Translator(c echo.Context) *i18n.Translator {
	if tr, ok := c.Get(contextkeys.EchoTranslatorKey).(*i18n.Translator); ok {
		return tr
	}
	return i18n.New(i18n.PortugueseBR)
}

// Logger returns the request scoped logger, or fallback when none is set.
func Logger(c echo.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := c.Get(contextkeys.EchoLoggerKey).(*zap.Logger); ok {
		return l
	}
	return fallback
}

// ErrorResponse answers an htmx request that failed: the message travels in
// HX-Trigger and the body stays empty so nothing on the page is swapped.
func ErrorResponse(c echo.Context, err error, fallbackKey string, logger *zap.Logger) error {
	tr := Translator(c)
	code := apperrors.StatusCode(err)
	msg := apperrors.UserMessage(err, tr.T(fallbackKey))

	fields := []zap.Field{
		zap.Int("code", code),
		zap.String("path", c.Request().URL.Path),
		zap.Error(err),
	}
	if code >= http.StatusInternalServerError {
		logger.Error("request failed", fields...)
	} else {
		logger.Warn("request failed", fields...)
	}

	TriggerMessage(c, msg)
	return c.NoContent(code)
}

// Redirect sends the browser to path. htmx requests get HX-Redirect, which
// htmx follows with a full page load.
func Redirect(c echo.Context, path string) error {
	if IsHTMX(c) {
		c.Response().Header().Set("HX-Redirect", path)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, path)
}

func DetailPath(resource string, id uint64) string {
	return fmt.Sprintf("/%s/detail/%d", resource, id)
}
