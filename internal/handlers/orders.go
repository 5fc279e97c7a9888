package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ydalvarez/techstore/internal/logging"
	"github.com/ydalvarez/techstore/internal/orders"
	"github.com/ydalvarez/techstore/internal/session"
	"github.com/ydalvarez/techstore/internal/util"
)

type OrderHandler struct {
	Orders   *orders.Service
	Sessions *session.Store
}

// ListMine returns the orders of the logged-in user, newest first.
func (h *OrderHandler) ListMine(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.list_mine")

	user, ok := h.Sessions.Current()
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	list, err := h.Orders.ListForUser(ctx, user.ID, offset, limit)
	if err != nil {
		l.Error("list_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"items": list})
}

// ListAll is the admin view over every order.
func (h *OrderHandler) ListAll(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.list_all")

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	list, err := h.Orders.ListAll(ctx, offset, limit)
	if err != nil {
		l.Error("list_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"items": list})
}

func (h *OrderHandler) SetStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.set_status")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Orders.SetStatus(ctx, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		case errors.Is(err, orders.ErrInvalidStatus):
			l.Warn("set_status_rejected", "status", 400, "order_status", req.Status)
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
		default:
			l.Error("set_status_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}
	return c.JSON(http.StatusOK, order)
}
