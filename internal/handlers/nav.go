package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ydalvarez/techstore/internal/logging"
	"github.com/ydalvarez/techstore/internal/session"
	"github.com/ydalvarez/techstore/internal/view"
)

type NavHandler struct {
	Sessions *session.Store
	Notices  *view.Notices
}

// Navigate resolves a navigation token against the current session and
// returns the screen the client should render.
func (h *NavHandler) Navigate(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "nav")

	var sess view.Session
	if user, ok := h.Sessions.Current(); ok {
		sess = view.Session{Authenticated: true, Role: user.Role}
	}

	token := c.QueryParam("token")
	res := view.Resolve(token, sess)

	if res.AlreadyLoggedIn {
		h.Notices.Set("already logged in")
	}
	if res.AccessDenied {
		l.Warn("access_denied", "token", token)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"screen":            res.Screen,
		"access_denied":     res.AccessDenied,
		"already_logged_in": res.AlreadyLoggedIn,
		"notice":            h.Notices.Current(),
	})
}

// Notice returns the transient notice, empty once it expires.
func (h *NavHandler) Notice(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"notice": h.Notices.Current()})
}
