package repository

import (
	"context"

	"composer/internal/domain/model"
	"composer/internal/param"
)

type ProductRepository interface {
	// 無ければ ErrNotFound
	GetProduct(ctx context.Context, p *param.GetProductParam) (*model.Product, error)
	GetProductDefinition(ctx context.Context, p *param.GetProductDefinitionParam) (*model.ProductDefinition, error)
	CalculatePrices(ctx context.Context, p *param.ProductPricesParam) ([]model.ProductPrice, error)
	GetEffectivePrice(ctx context.Context, p *param.ProductPricesParam) ([]model.EffectivePriceEntryInfo, error)
	// 公開商品の検索（件数つき）
	SearchProducts(ctx context.Context, p *param.SearchProductsParam) ([]model.Product, int64, error)
}
