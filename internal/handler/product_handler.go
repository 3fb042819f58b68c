package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"composer/internal/param"
	"composer/internal/viewmodel"
)

type ProductService interface {
	GetProduct(ctx context.Context, p *param.GetProductParam) (*viewmodel.ProductViewModel, error)
}

// 商品詳細のHTTP
type ProductHandler struct {
	service ProductService
}

// DI
func NewProductHandler(service ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/product/:id", h.detail)
}

func (h *ProductHandler) detail(c echo.Context) error {
	cc, ok := composerFrom(c)
	if !ok {
		return missingContext(c)
	}

	vm, err := h.service.GetProduct(c.Request().Context(), &param.GetProductParam{
		Scope:       cc.Scope,
		ProductID:   c.Param("id"),
		CultureInfo: cc.CultureInfo,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, vm)
}
