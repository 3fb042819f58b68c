package repository

import (
	"context"

	"composer/internal/cache"
	"composer/internal/domain/model"
	"composer/internal/overture"
	"composer/internal/param"
	repo "composer/internal/repository"
)

type InventoryOvertureRepository struct {
	client overture.InventoryClient
	cache  *cache.Cache
}

var _ repo.InventoryRepository = (*InventoryOvertureRepository)(nil)

// DI
func NewInventoryOvertureRepository(client overture.InventoryClient, c *cache.Cache) *InventoryOvertureRepository {
	return &InventoryOvertureRepository{client: client, cache: c}
}

func (r *InventoryOvertureRepository) FindInventoryItemStatus(ctx context.Context, p *param.FindInventoryItemStatusParam) ([]model.InventoryItemAvailability, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return r.client.FindInventoryItemStatus(ctx, overture.FindInventoryItemStatusRequest{
		ScopeID:             p.Scope,
		Skus:                p.Skus,
		Date:                p.Date,
		InventoryLocationID: p.InventoryLocationID,
	})
}

func (r *InventoryOvertureRepository) GetInventoryItemsBySku(ctx context.Context, p *param.GetInventoryItemsBySkuParam) (*model.InventoryItemStatusDetailsQueryResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	key := cache.NewKey(cache.CategoryStoreInventoryItems, p.Scope).
		AppendKeyParts("sku", p.Sku, "children", p.IncludeChildScopes)

	return cache.GetOrAdd(ctx, r.cache, key, func(ctx context.Context) (*model.InventoryItemStatusDetailsQueryResult, error) {
		return r.client.GetInventoryItemsBySku(ctx, overture.GetInventoryItemsBySkuRequest{
			ScopeID:            p.Scope,
			Sku:                p.Sku,
			Date:               p.Date,
			IncludeChildScopes: p.IncludeChildScopes,
		})
	})
}

type ProductSettingsOvertureRepository struct {
	client overture.SettingsClient
	cache  *cache.Cache
}

var _ repo.ProductSettingsRepository = (*ProductSettingsOvertureRepository)(nil)

// DI
func NewProductSettingsOvertureRepository(client overture.SettingsClient, c *cache.Cache) *ProductSettingsOvertureRepository {
	return &ProductSettingsOvertureRepository{client: client, cache: c}
}

func (r *ProductSettingsOvertureRepository) GetProductSettings(ctx context.Context, p *param.GetProductSettingsParam) (*model.ProductSettings, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	key := cache.NewKey(cache.CategoryProductSettings, p.Scope)
	return cache.GetOrAdd(ctx, r.cache, key, func(ctx context.Context) (*model.ProductSettings, error) {
		s, err := r.client.GetScope(ctx, p.Scope)
		if err != nil {
			return nil, err
		}
		return &model.ProductSettings{
			ScopeID:                    s.ID,
			IsInventoryEnabled:         s.IsInventoryEnabled,
			DefaultInventoryLocationID: s.DefaultInventoryLocationID,
		}, nil
	})
}
