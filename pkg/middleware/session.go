package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"maintenance-console/pkg/constants"
	"maintenance-console/pkg/contextkeys"
)

const sessionMaxAge = 30 * 24 * time.Hour

// Session gives every browser an anonymous id cookie. It keys the flash
// messages and the autocomplete debouncing, nothing else.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sessionID string
			if cookie, err := c.Cookie(constants.SessionCookie); err == nil {
				if id, err := uuid.Parse(cookie.Value); err == nil {
					sessionID = id.String()
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     constants.SessionCookie,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(sessionMaxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			req := c.Request()
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), contextkeys.SessionIDKey, sessionID)))
			return next(c)
		}
	}
}
