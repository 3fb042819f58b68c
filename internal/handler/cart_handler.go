package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"composer/internal/param"
	"composer/internal/requestctx"
	"composer/internal/viewmodel"
)

type CartService interface {
	GetCart(ctx context.Context, p *param.GetCartParam) (*viewmodel.CartViewModel, error)
	AddLineItem(ctx context.Context, p *param.AddLineItemParam) (*viewmodel.CartViewModel, error)
	UpdateLineItem(ctx context.Context, p *param.UpdateLineItemParam) (*viewmodel.CartViewModel, error)
	RemoveLineItem(ctx context.Context, p *param.RemoveLineItemParam) (*viewmodel.CartViewModel, error)
}

type CouponService interface {
	AddCoupon(ctx context.Context, p *param.CouponParam) (*viewmodel.CartViewModel, error)
	RemoveCoupon(ctx context.Context, p *param.CouponParam) (*viewmodel.CartViewModel, error)
}

// /api/cart のHTTP
type CartHandler struct {
	carts    CartService
	coupons  CouponService
	cartName string
}

// DI
func NewCartHandler(carts CartService, coupons CouponService, cartName string) *CartHandler {
	return &CartHandler{carts: carts, coupons: coupons, cartName: cartName}
}

type CouponRequest struct {
	CouponCode string `json:"couponCode"`
}

type AddLineItemRequest struct {
	ProductID string `json:"productId" validate:"notblank"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

type UpdateLineItemRequest struct {
	LineItemID  string `json:"lineItemId" validate:"required,uuid"`
	Quantity    int    `json:"quantity" validate:"gt=0"`
	GiftWrap    bool   `json:"giftWrap"`
	GiftMessage string `json:"giftMessage"`
}

type RemoveLineItemRequest struct {
	LineItemID string `json:"lineItemId" validate:"required,uuid"`
}

// /api/cart 以下を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/cart")

	g.GET("", h.getCart)
	g.POST("/coupon", h.addCoupon)
	g.DELETE("/coupon", h.removeCoupon)
	g.POST("/lineitem", h.addLineItem)
	g.PUT("/lineitem", h.updateLineItem)
	g.DELETE("/lineitem", h.removeLineItem)
}

func (h *CartHandler) getCart(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	out, err := h.carts.GetCart(c.Request().Context(), &param.GetCartParam{
		Scope:       cc.Scope,
		CultureInfo: cc.CultureInfo,
		CustomerID:  cc.CustomerID,
		CartName:    h.cartName,
		BaseURL:     cc.BaseURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addCoupon(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	var req CouponRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.coupons.AddCoupon(c.Request().Context(), couponParam(cc, h.cartName, req.CouponCode))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// コードが空なら全クーポンを外す
func (h *CartHandler) removeCoupon(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	var req CouponRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.coupons.RemoveCoupon(c.Request().Context(), couponParam(cc, h.cartName, req.CouponCode))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addLineItem(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	var req AddLineItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	out, err := h.carts.AddLineItem(c.Request().Context(), &param.AddLineItemParam{
		Scope:       cc.Scope,
		CultureInfo: cc.CultureInfo,
		CustomerID:  cc.CustomerID,
		CartName:    h.cartName,
		ProductID:   req.ProductID,
		VariantID:   req.VariantID,
		Quantity:    req.Quantity,
		BaseURL:     cc.BaseURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) updateLineItem(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	var req UpdateLineItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}
	lineItemID, err := uuid.Parse(req.LineItemID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lineItemId"})
	}

	out, err := h.carts.UpdateLineItem(c.Request().Context(), &param.UpdateLineItemParam{
		Scope:       cc.Scope,
		CultureInfo: cc.CultureInfo,
		CustomerID:  cc.CustomerID,
		CartName:    h.cartName,
		LineItemID:  lineItemID,
		Quantity:    req.Quantity,
		GiftWrap:    req.GiftWrap,
		GiftMessage: req.GiftMessage,
		BaseURL:     cc.BaseURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeLineItem(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	var req RemoveLineItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}
	lineItemID, err := uuid.Parse(req.LineItemID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lineItemId"})
	}

	out, err := h.carts.RemoveLineItem(c.Request().Context(), &param.RemoveLineItemParam{
		Scope:       cc.Scope,
		CultureInfo: cc.CultureInfo,
		CustomerID:  cc.CustomerID,
		CartName:    h.cartName,
		LineItemID:  lineItemID,
		BaseURL:     cc.BaseURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func couponParam(cc *requestctx.ComposerContext, cartName, code string) *param.CouponParam {
	return &param.CouponParam{
		Scope:       cc.Scope,
		CultureInfo: cc.CultureInfo,
		CustomerID:  cc.CustomerID,
		CartName:    cartName,
		CouponCode:  code,
		BaseURL:     cc.BaseURL,
	}
}
