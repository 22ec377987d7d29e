package httpserver

import (
	"net/http"

	"github.com/Skotchmaster/storefront/pkg/logging"
	middleware "github.com/Skotchmaster/storefront/pkg/middleware/auth"
	"github.com/Skotchmaster/storefront/services/cart/internal/service"
	"github.com/Skotchmaster/storefront/services/cart/internal/transport"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CartHTTP struct {
	Svc *service.CartService
}

func itemID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	view, err := h.Svc.GetCart(ctx, middleware.UserID(c))
	if err != nil {
		return fail(c, l, "get_cart", err)
	}

	l.Info("get_cart_success", "items", len(view.Items))
	return c.JSON(http.StatusOK, view)
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")

	var req transport.AddItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, l, "add_item", "invalid body", err)
	}

	view, err := h.Svc.AddItem(ctx, middleware.UserID(c), req.ProductVariantID, req.Quantity)
	if err != nil {
		return fail(c, l, "add_item", err)
	}

	l.Info("add_item_success", "product_variant_id", req.ProductVariantID, "quantity", req.Quantity)
	return c.JSON(http.StatusOK, view)
}

func (h *CartHTTP) IncreaseItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.increase_item")

	id, err := itemID(c)
	if err != nil {
		return badRequest(c, l, "increase_item", "invalid item id", err)
	}

	view, err := h.Svc.IncreaseItem(ctx, middleware.UserID(c), id)
	if err != nil {
		return fail(c, l, "increase_item", err)
	}

	l.Info("increase_item_success", "cart_item_id", id)
	return c.JSON(http.StatusOK, view)
}

func (h *CartHTTP) DecreaseItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.decrease_item")

	id, err := itemID(c)
	if err != nil {
		return badRequest(c, l, "decrease_item", "invalid item id", err)
	}

	view, err := h.Svc.DecreaseItem(ctx, middleware.UserID(c), id)
	if err != nil {
		return fail(c, l, "decrease_item", err)
	}

	l.Info("decrease_item_success", "cart_item_id", id)
	return c.JSON(http.StatusOK, view)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_item")

	id, err := itemID(c)
	if err != nil {
		return badRequest(c, l, "remove_item", "invalid item id", err)
	}

	if err := h.Svc.RemoveItem(ctx, middleware.UserID(c), id); err != nil {
		return fail(c, l, "remove_item", err)
	}

	l.Info("remove_item_success", "cart_item_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHTTP) LinkShippingAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.link_shipping_address")

	var req transport.LinkShippingAddressRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, l, "link_shipping_address", "invalid body", err)
	}

	if err := h.Svc.LinkShippingAddress(ctx, middleware.UserID(c), req.ShippingAddressID); err != nil {
		return fail(c, l, "link_shipping_address", err)
	}

	l.Info("link_shipping_address_success", "shipping_address_id", req.ShippingAddressID)
	return c.JSON(http.StatusOK, transport.SuccessResponse{Success: true})
}

func (h *CartHTTP) FinalizeOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.finalize_order")

	order, err := h.Svc.FinalizeOrder(ctx, middleware.UserID(c))
	if err != nil {
		return fail(c, l, "finalize_order", err)
	}

	l.Info("finalize_order_success", "order_id", order.ID, "total_price_in_cents", order.TotalPriceInCents)
	return c.JSON(http.StatusCreated, transport.FinalizeOrderResponse{OrderID: order.ID})
}
