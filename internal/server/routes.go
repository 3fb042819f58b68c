package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"composer/internal/handler"
	"composer/internal/metrics"
)

type Handlers struct {
	Cart       *handler.CartHandler
	Country    *handler.CountryHandler
	Inventory  *handler.InventoryHandler
	Membership *handler.MembershipHandler
	Order      *handler.OrderHandler
	Product    *handler.ProductHandler
	Search     *handler.SearchHandler
	WishList   *handler.WishListHandler
}

// RegisterRoutes は API と運用系のルートを登録する
func RegisterRoutes(e *echo.Echo, h Handlers, m *metrics.Metrics) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if m != nil {
		e.GET("/metrics", m.Handler())
	}

	if h.Cart != nil {
		h.Cart.RegisterRoutes(e)
	}
	if h.Country != nil {
		h.Country.RegisterRoutes(e)
	}
	if h.Inventory != nil {
		h.Inventory.RegisterRoutes(e)
	}
	if h.Membership != nil {
		h.Membership.RegisterRoutes(e)
	}
	if h.Order != nil {
		h.Order.RegisterRoutes(e)
	}
	if h.Product != nil {
		h.Product.RegisterRoutes(e)
	}
	if h.Search != nil {
		h.Search.RegisterRoutes(e)
	}
	if h.WishList != nil {
		h.WishList.RegisterRoutes(e)
	}
}
