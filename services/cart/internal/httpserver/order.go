package httpserver

import (
	"net/http"

	"github.com/Skotchmaster/storefront/pkg/logging"
	middleware "github.com/Skotchmaster/storefront/pkg/middleware/auth"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (h *CartHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, l, "get_order", "invalid order id", err)
	}

	order, err := h.Svc.GetOrder(ctx, middleware.UserID(c), id)
	if err != nil {
		return fail(c, l, "get_order", err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *CartHTTP) GetVariant(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_variant")

	v, err := h.Svc.GetVariant(ctx, c.Param("slug"))
	if err != nil {
		return fail(c, l, "get_variant", err)
	}

	return c.JSON(http.StatusOK, v)
}
