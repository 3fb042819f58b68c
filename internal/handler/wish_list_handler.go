package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"

	"composer/internal/middleware"
	"composer/internal/param"
	"composer/internal/viewmodel"
)

type WishListService interface {
	GetWishList(ctx context.Context, p *param.GetCartParam) (*viewmodel.WishListViewModel, error)
	GuestWishList(culture language.Tag) *viewmodel.WishListViewModel
	AddLineItem(ctx context.Context, p *param.AddLineItemParam) (*viewmodel.WishListViewModel, error)
	RemoveLineItem(ctx context.Context, p *param.RemoveLineItemParam) (*viewmodel.WishListViewModel, error)
}

// /api/wishlist のHTTP（追加・削除は会員のみ）
type WishListHandler struct {
	wishLists    WishListService
	wishListName string
}

// DI
func NewWishListHandler(wishLists WishListService, wishListName string) *WishListHandler {
	return &WishListHandler{wishLists: wishLists, wishListName: wishListName}
}

type AddWishListItemRequest struct {
	ProductID string `json:"productId" validate:"notblank"`
	VariantID string `json:"variantId"`
}

func (h *WishListHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/wishlist")

	g.GET("", h.getWishList)
	g.POST("/lineitem", h.addLineItem, middleware.RequireAuthenticated())
	g.DELETE("/lineitem", h.removeLineItem, middleware.RequireAuthenticated())
}

func (h *WishListHandler) getWishList(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}
	if !cc.IsAuthenticated {
		return c.JSON(http.StatusOK, h.wishLists.GuestWishList(cc.CultureInfo))
	}

	out, err := h.wishLists.GetWishList(c.Request().Context(), &param.GetCartParam{
		Scope:       cc.Scope,
		CultureInfo: cc.CultureInfo,
		CustomerID:  cc.CustomerID,
		CartName:    h.wishListName,
		BaseURL:     cc.BaseURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *WishListHandler) addLineItem(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	var req AddWishListItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	out, err := h.wishLists.AddLineItem(c.Request().Context(), &param.AddLineItemParam{
		Scope:       cc.Scope,
		CultureInfo: cc.CultureInfo,
		CustomerID:  cc.CustomerID,
		CartName:    h.wishListName,
		ProductID:   req.ProductID,
		VariantID:   req.VariantID,
		Quantity:    1,
		BaseURL:     cc.BaseURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *WishListHandler) removeLineItem(c echo.Context) error {
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

	out, err := h.wishLists.RemoveLineItem(c.Request().Context(), &param.RemoveLineItemParam{
		Scope:       cc.Scope,
		CultureInfo: cc.CultureInfo,
		CustomerID:  cc.CustomerID,
		CartName:    h.wishListName,
		LineItemID:  lineItemID,
		BaseURL:     cc.BaseURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
