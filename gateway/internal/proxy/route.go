package proxy

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	AuthURL string
	CartURL string
}

// Register mounts the public API: /api/v1/auth/* goes to the auth service,
// the rest of /api/v1 to the cart service.
func Register(e *echo.Echo, d *Deps) error {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authProxy, err := New(d.AuthURL, "/api/v1")
	if err != nil {
		return err
	}
	cartProxy, err := New(d.CartURL, "/api/v1")
	if err != nil {
		return err
	}

	api := e.Group("/api/v1")
	api.Any("/auth/*", authProxy)
	api.Any("/cart", cartProxy)
	api.Any("/cart/*", cartProxy)
	api.Any("/shipping-addresses", cartProxy)
	api.Any("/orders/*", cartProxy)
	api.GET("/variants/*", cartProxy)

	return nil
}
