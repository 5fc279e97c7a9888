package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ydalvarez/techstore/internal/models"
	"github.com/ydalvarez/techstore/internal/session"
	"github.com/ydalvarez/techstore/internal/token"
)

// Guard gates routes on the session store, with the access cookie carrying
// the same identity between requests.
type Guard struct {
	Sessions  *session.Store
	JWTSecret []byte
}

func (g *Guard) resolve(c echo.Context) (models.User, error) {
	cookie, err := c.Cookie(token.AccessCookie)
	if err != nil || cookie.Value == "" {
		return models.User{}, echo.NewHTTPError(http.StatusUnauthorized, "missing auth cookie")
	}
	claims, err := token.Parse(cookie.Value, g.JWTSecret)
	if err != nil {
		return models.User{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return models.User{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid subject claim")
	}

	user, active := g.Sessions.Current()
	if !active || user.ID != uint(sub) {
		return models.User{}, echo.NewHTTPError(http.StatusUnauthorized, "session expired")
	}
	return user, nil
}

func (g *Guard) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := g.resolve(c)
		if err != nil {
			return err
		}
		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		return next(c)
	}
}

func (g *Guard) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := g.resolve(c)
		if err != nil {
			return err
		}
		if user.Role != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
		}
		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		return next(c)
	}
}
