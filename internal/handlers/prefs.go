package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ydalvarez/techstore/internal/i18n"
	"github.com/ydalvarez/techstore/internal/logging"
	"github.com/ydalvarez/techstore/internal/prefs"
)

type PrefsHandler struct {
	Prefs *prefs.Service
}

func (h *PrefsHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "prefs.get")

	dark, err := h.Prefs.DarkMode(ctx)
	if err != nil {
		l.Error("read_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	lang, err := h.Prefs.Language(ctx)
	if err != nil {
		l.Error("read_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"dark_mode": dark,
		"lang":      lang,
	})
}

func (h *PrefsHandler) SetDarkMode(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		DarkMode bool `json:"dark_mode"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Prefs.SetDarkMode(ctx, req.DarkMode); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"dark_mode": req.DarkMode})
}

func (h *PrefsHandler) SetLanguage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "prefs.set_language")

	var req struct {
		Lang string `json:"lang"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Prefs.SetLanguage(ctx, req.Lang); err != nil {
		if errors.Is(err, prefs.ErrUnsupportedLang) {
			l.Warn("set_language_rejected", "status", 400, "lang", req.Lang)
			return echo.NewHTTPError(http.StatusBadRequest, "unsupported language")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"lang": req.Lang})
}

// Translations returns the full table for one language so clients can
// render without shipping their own copies.
func (h *PrefsHandler) Translations(c echo.Context) error {
	lang := c.Param("lang")
	if !i18n.Supported(lang) {
		return echo.NewHTTPError(http.StatusNotFound, "unsupported language")
	}
	return c.JSON(http.StatusOK, i18n.Table(lang))
}
