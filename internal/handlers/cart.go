package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ydalvarez/techstore/internal/cart"
	"github.com/ydalvarez/techstore/internal/catalog"
	"github.com/ydalvarez/techstore/internal/events"
	"github.com/ydalvarez/techstore/internal/logging"
)

type CartHandler struct {
	Cart     *cart.Store
	Catalog  *catalog.Service
	Producer *events.Producer
}

func (h *CartHandler) publish(c echo.Context, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicCartEvents, fmt.Sprint(event["userID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_error", "error", err)
	}
}

func (h *CartHandler) contents(c echo.Context, status int) error {
	return c.JSON(status, echo.Map{
		"items": h.Cart.Items(),
		"total": h.Cart.Total(),
	})
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return h.contents(c, http.StatusOK)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req struct {
		ProductID uint `json:"product_id"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Catalog.Get(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			l.Warn("add_to_cart_error", "status", 404, "product_id", req.ProductID)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	h.Cart.AddItem(*product)

	h.publish(c, map[string]interface{}{
		"type":      "cart_item_added",
		"userID":    c.Get("userID"),
		"productID": product.ID,
	})

	l.Info("add_to_cart_success", "product_id", product.ID)
	return h.contents(c, http.StatusOK)
}

func (h *CartHandler) SetQuantity(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "cart.set_quantity")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req struct {
		Quantity uint `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Cart.SetQuantity(uint(id), req.Quantity); err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			l.Warn("set_quantity_rejected", "status", 400, "quantity", req.Quantity)
			return echo.NewHTTPError(http.StatusBadRequest, "quantity must be at least 1")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	h.publish(c, map[string]interface{}{
		"type":      "cart_quantity_updated",
		"userID":    c.Get("userID"),
		"productID": id,
		"quantity":  req.Quantity,
	})

	return h.contents(c, http.StatusOK)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	h.Cart.RemoveItem(uint(id))

	h.publish(c, map[string]interface{}{
		"type":      "cart_item_removed",
		"userID":    c.Get("userID"),
		"productID": id,
	})

	return h.contents(c, http.StatusOK)
}

func (h *CartHandler) Clear(c echo.Context) error {
	h.Cart.Clear()

	h.publish(c, map[string]interface{}{
		"type":   "cart_cleared",
		"userID": c.Get("userID"),
	})

	return h.contents(c, http.StatusOK)
}
