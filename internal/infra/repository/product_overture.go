package repository

import (
	"context"

	"composer/internal/cache"
	"composer/internal/domain/model"
	"composer/internal/overture"
	"composer/internal/param"
	repo "composer/internal/repository"
)

type ProductOvertureRepository struct {
	client overture.ProductClient
	cache  *cache.Cache
}

var _ repo.ProductRepository = (*ProductOvertureRepository)(nil)

// DI
func NewProductOvertureRepository(client overture.ProductClient, c *cache.Cache) *ProductOvertureRepository {
	return &ProductOvertureRepository{client: client, cache: c}
}

func (r *ProductOvertureRepository) GetProduct(ctx context.Context, p *param.GetProductParam) (*model.Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	product, err := r.client.GetProduct(ctx, overture.GetProductRequest{
		ScopeID:     p.Scope,
		ProductID:   p.ProductID,
		CultureName: p.CultureInfo.String(),
	})
	if overture.HasCode(err, overture.CodeProductNotFound) {
		return nil, repo.ErrNotFound
	}
	return product, err
}

// 定義はめったに変わらないのでキャッシュ
func (r *ProductOvertureRepository) GetProductDefinition(ctx context.Context, p *param.GetProductDefinitionParam) (*model.ProductDefinition, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	key := cache.NewKey(cache.CategoryProductDefinition, "").AppendKeyParts(p.Name, p.CultureInfo)
	def, err := cache.GetOrAdd(ctx, r.cache, key, func(ctx context.Context) (*model.ProductDefinition, error) {
		return r.client.GetProductDefinition(ctx, overture.GetProductDefinitionRequest{
			Name:        p.Name,
			CultureName: p.CultureInfo.String(),
		})
	})
	if overture.HasCode(err, overture.CodeDefinitionNotFound) {
		return nil, repo.ErrNotFound
	}
	return def, err
}

func (r *ProductOvertureRepository) CalculatePrices(ctx context.Context, p *param.ProductPricesParam) ([]model.ProductPrice, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return r.client.CalculatePrices(ctx, overture.CalculatePricesRequest{ScopeID: p.Scope, ProductIDs: p.ProductIDs})
}

func (r *ProductOvertureRepository) GetEffectivePrice(ctx context.Context, p *param.ProductPricesParam) ([]model.EffectivePriceEntryInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return r.client.GetEffectivePrices(ctx, overture.GetEffectivePricesRequest{ScopeID: p.Scope, ProductIDs: p.ProductIDs})
}

func (r *ProductOvertureRepository) SearchProducts(ctx context.Context, p *param.SearchProductsParam) ([]model.Product, int64, error) {
	if err := p.Validate(); err != nil {
		return nil, 0, err
	}
	res, err := r.client.SearchProducts(ctx, overture.SearchProductsRequest{
		ScopeID:       p.Scope,
		CultureName:   p.CultureInfo.String(),
		Keywords:      p.Keywords,
		SortBy:        p.SortBy,
		SortDirection: p.SortDirection,
		Page:          p.Page,
		PageSize:      p.PageSize,
		MinPrice:      p.MinPrice,
		MaxPrice:      p.MaxPrice,
	})
	if err != nil {
		return nil, 0, err
	}
	return res.Products, res.TotalCount, nil
}
