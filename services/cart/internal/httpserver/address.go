package httpserver

import (
	"net/http"

	"github.com/Skotchmaster/storefront/pkg/logging"
	middleware "github.com/Skotchmaster/storefront/pkg/middleware/auth"
	"github.com/Skotchmaster/storefront/services/cart/internal/transport"
	"github.com/labstack/echo/v4"
)

func (h *CartHTTP) ListShippingAddresses(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "address.list")

	addrs, err := h.Svc.ListShippingAddresses(ctx, middleware.UserID(c))
	if err != nil {
		return fail(c, l, "list_shipping_addresses", err)
	}

	return c.JSON(http.StatusOK, addrs)
}

func (h *CartHTTP) CreateShippingAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "address.create")

	var req transport.CreateShippingAddressRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, l, "create_shipping_address", "invalid body", err)
	}

	addr, err := h.Svc.CreateShippingAddress(ctx, middleware.UserID(c), req)
	if err != nil {
		return fail(c, l, "create_shipping_address", err)
	}

	l.Info("create_shipping_address_success", "shipping_address_id", addr.ID)
	return c.JSON(http.StatusCreated, addr)
}
