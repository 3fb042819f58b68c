package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

type InventoryService interface {
	FindSkusAvailableToSell(ctx context.Context, scope string, culture language.Tag, skus []string) ([]string, error)
}

// /api/inventory のHTTP
type InventoryHandler struct {
	inventory InventoryService
}

// DI
func NewInventoryHandler(inventory InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

type FindInventoryItemsRequest struct {
	Skus []string `json:"skus"`
}

func (h *InventoryHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/inventory/findInventoryItems", h.findInventoryItems)
}

// 販売可能なSKUだけを返す
func (h *InventoryHandler) findInventoryItems(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	var req FindInventoryItemsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Skus == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no request found"})
	}

	out, err := h.inventory.FindSkusAvailableToSell(c.Request().Context(), cc.Scope, cc.CultureInfo, req.Skus)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
