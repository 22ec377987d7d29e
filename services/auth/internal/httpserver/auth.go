package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/pkg/logging"
	"github.com/Skotchmaster/storefront/pkg/tokens"
	"github.com/Skotchmaster/storefront/services/auth/internal/service"
	"github.com/Skotchmaster/storefront/services/auth/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) SignUp(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.sign_up")

	var req transport.SignUpRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("sign_up_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	user, err := h.Svc.SignUp(ctx, req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			l.Warn("sign_up_error", "status", 422, "error", err)
			return c.JSON(http.StatusUnprocessableEntity, transport.ErrorResponse{Error: "validation failed", Fields: verr.Fields})
		case errors.Is(err, service.ErrUserAlreadyExist):
			l.Warn("sign_up_error", "status", 409, "error", err)
			return c.JSON(http.StatusConflict, transport.ErrorResponse{Error: "user already exist"})
		default:
			l.Error("sign_up_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal error"})
		}
	}

	l.Info("sign_up_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, transport.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

func (h *AuthHTTP) SignIn(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.sign_in")

	var req transport.SignInRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("sign_in_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	res, err := h.Svc.SignIn(ctx, req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			l.Warn("sign_in_error", "status", 422, "error", err)
			return c.JSON(http.StatusUnprocessableEntity, transport.ErrorResponse{Error: "validation failed", Fields: verr.Fields})
		case errors.Is(err, service.ErrInvalidCredentials):
			l.Warn("sign_in_error", "status", 401, "error", err)
			return c.JSON(http.StatusUnauthorized, transport.ErrorResponse{Error: "invalid email or password"})
		default:
			l.Error("sign_in_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: "internal error"})
		}
	}

	c.SetCookie(tokens.CreateCookie(tokens.AccessCookieName, res.AccessToken, "/", res.AccessExp))
	l.Info("sign_in_success", "user_id", res.User.ID)

	return c.JSON(http.StatusOK, transport.SignInResponse{
		AccessToken: res.AccessToken,
		ExpiresAt:   res.AccessExp,
		User:        transport.UserResponse{ID: res.User.ID, Name: res.User.Name, Email: res.User.Email},
	})
}

func (h *AuthHTTP) SignOut(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "auth.sign_out")

	c.SetCookie(tokens.DeleteCookie(tokens.AccessCookieName, "/"))

	l.Info("sign_out_success")
	return c.NoContent(http.StatusNoContent)
}
