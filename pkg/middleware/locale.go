package middleware

import (
	"github.com/labstack/echo/v4"

	"maintenance-console/pkg/contextkeys"
	"maintenance-console/pkg/i18n"
)

// Locale picks the translator from Accept-Language, defaulting to the
// configured language.
func Locale(defaultLang string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tag := i18n.Match(c.Request().Header.Get("Accept-Language"), defaultLang)
			c.Set(contextkeys.EchoTranslatorKey, i18n.New(tag))
			return next(c)
		}
	}
}
