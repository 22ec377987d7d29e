package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/Skotchmaster/storefront/pkg/db"
	middleware "github.com/Skotchmaster/storefront/pkg/middleware/auth"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Deps struct {
	CartHandler *CartHTTP
	Sessions    *middleware.SessionResolver
	DB          *gorm.DB

	AllowOrigins []string
}

func Register(e *echo.Echo, d *Deps) {
	if len(d.AllowOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     d.AllowOrigins,
			AllowCredentials: true,
		}))
	}

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx, d.DB); err != nil {
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})

	e.GET("/variants/:slug", d.CartHandler.GetVariant)

	auth := d.Sessions.RequireAuth

	cart := e.Group("/cart", auth)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("/items", d.CartHandler.AddItem)
	cart.POST("/items/:id/increase", d.CartHandler.IncreaseItem)
	cart.POST("/items/:id/decrease", d.CartHandler.DecreaseItem)
	cart.DELETE("/items/:id", d.CartHandler.RemoveItem)
	cart.PUT("/shipping-address", d.CartHandler.LinkShippingAddress)
	cart.POST("/finalize", d.CartHandler.FinalizeOrder)

	addrs := e.Group("/shipping-addresses", auth)
	addrs.GET("", d.CartHandler.ListShippingAddresses)
	addrs.POST("", d.CartHandler.CreateShippingAddress)

	e.GET("/orders/:id", d.CartHandler.GetOrder, auth)
}
