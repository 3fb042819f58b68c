package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"composer/internal/middleware"
	"composer/internal/param"
	"composer/internal/viewmodel"
)

type OrderService interface {
	CompleteCheckout(ctx context.Context, p *param.CompleteCheckoutParam) (*viewmodel.OrderViewModel, error)
	GetOrderHistory(ctx context.Context, p *param.GetCustomerOrdersParam) (*viewmodel.OrderHistoryViewModel, error)
	GetOrder(ctx context.Context, p *param.GetOrderParam) (*viewmodel.OrderViewModel, error)
}

// チェックアウトと注文履歴のHTTP
type OrderHandler struct {
	orders   OrderService
	cartName string
}

// DI
func NewOrderHandler(orders OrderService, cartName string) *OrderHandler {
	return &OrderHandler{orders: orders, cartName: cartName}
}

// ゲストも注文できる（履歴は会員のみ）
func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/cart/checkout", h.checkout)

	g := e.Group("/api/order", middleware.RequireAuthenticated())
	g.GET("", h.history)
	g.GET("/:orderNumber", h.detail)
}

func (h *OrderHandler) checkout(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	// 二重送信防止キーはヘッダーから
	idemKey := c.Request().Header.Get("X-Idempotency-Key")

	out, err := h.orders.CompleteCheckout(c.Request().Context(), &param.CompleteCheckoutParam{
		Scope:          cc.Scope,
		CultureInfo:    cc.CultureInfo,
		CustomerID:     cc.CustomerID,
		CartName:       h.cartName,
		IdempotencyKey: idemKey,
		BaseURL:        cc.BaseURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// GET /api/order?page=&pageSize=
func (h *OrderHandler) history(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// pageSize（default 10）
	pageSize := 10
	if v := c.QueryParam("pageSize"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pageSize"})
		}
		pageSize = l
	}

	out, err := h.orders.GetOrderHistory(c.Request().Context(), &param.GetCustomerOrdersParam{
		Scope:       cc.Scope,
		CultureInfo: cc.CultureInfo,
		CustomerID:  cc.CustomerID,
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	out, err := h.orders.GetOrder(c.Request().Context(), &param.GetOrderParam{
		Scope:       cc.Scope,
		CultureInfo: cc.CultureInfo,
		CustomerID:  cc.CustomerID,
		OrderNumber: c.Param("orderNumber"),
		BaseURL:     cc.BaseURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
