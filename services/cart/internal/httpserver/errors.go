package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Skotchmaster/storefront/services/cart/internal/service"
	"github.com/Skotchmaster/storefront/services/cart/internal/transport"
	"github.com/labstack/echo/v4"
)

// fail logs err under op and writes the matching status.
func fail(c echo.Context, l *slog.Logger, op string, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		l.Warn(op+"_error", "status", http.StatusUnprocessableEntity, "error", err)
		return c.JSON(http.StatusUnprocessableEntity, transport.ErrorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, service.ErrUnauthorized):
		l.Warn(op+"_error", "status", http.StatusUnauthorized, "error", err)
		return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, service.ErrNotFound):
		l.Warn(op+"_error", "status", http.StatusNotFound, "error", err)
		return c.JSON(http.StatusNotFound, transport.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidState):
		l.Warn(op+"_error", "status", http.StatusConflict, "error", err)
		return c.JSON(http.StatusConflict, transport.ErrorResponse{Error: err.Error()})
	default:
		l.Error(op+"_error", "status", http.StatusInternalServerError, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal error"})
	}
}

func badRequest(c echo.Context, l *slog.Logger, op, msg string, err error) error {
	l.Warn(op+"_error", "status", http.StatusBadRequest, "reason", msg, "error", err)
	return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: msg})
}
