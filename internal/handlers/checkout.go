package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ydalvarez/techstore/internal/checkout"
	"github.com/ydalvarez/techstore/internal/logging"
	"github.com/ydalvarez/techstore/internal/session"
)

type CheckoutHandler struct {
	Flow     *checkout.Flow
	Sessions *session.Store
}

func (h *CheckoutHandler) state(c echo.Context, status int) error {
	return c.JSON(status, echo.Map{
		"state":  h.Flow.State(),
		"method": h.Flow.Method(),
		"items":  h.Flow.Cart.Items(),
		"total":  h.Flow.Cart.Total(),
	})
}

func (h *CheckoutHandler) GetState(c echo.Context) error {
	return h.state(c, http.StatusOK)
}

func (h *CheckoutHandler) Proceed(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "checkout.proceed")

	if err := h.Flow.Proceed(); err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			l.Warn("proceed_rejected", "status", 400, "reason", "empty cart")
			return echo.NewHTTPError(http.StatusBadRequest, "cart is empty")
		case errors.Is(err, checkout.ErrInvalidTransition):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}
	return h.state(c, http.StatusOK)
}

func (h *CheckoutHandler) SelectPayment(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "checkout.select_payment")

	var req struct {
		Method string `json:"method"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Flow.SelectPayment(req.Method); err != nil {
		switch {
		case errors.Is(err, checkout.ErrInvalidPaymentMethod):
			l.Warn("select_payment_rejected", "status", 400, "method", req.Method)
			return echo.NewHTTPError(http.StatusBadRequest, "unknown payment method")
		case errors.Is(err, checkout.ErrInvalidTransition):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}
	return h.state(c, http.StatusOK)
}

func (h *CheckoutHandler) Confirm(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.confirm")

	buyer, ok := h.Sessions.Current()
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}

	var req struct {
		Reference string `json:"reference"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Flow.Confirm(ctx, buyer, req.Reference)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrIncompletePaymentInfo):
			l.Warn("confirm_rejected", "status", 400, "reason", "incomplete payment info")
			return echo.NewHTTPError(http.StatusBadRequest, "payment method and reference required")
		case errors.Is(err, checkout.ErrEmptyCart):
			return echo.NewHTTPError(http.StatusBadRequest, "cart is empty")
		case errors.Is(err, checkout.ErrInvalidTransition):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			l.Error("confirm_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	return c.JSON(http.StatusCreated, order)
}

func (h *CheckoutHandler) Reset(c echo.Context) error {
	h.Flow.Reset()
	return h.state(c, http.StatusOK)
}
