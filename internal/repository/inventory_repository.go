package repository

import (
	"context"

	"composer/internal/domain/model"
	"composer/internal/param"
)

type InventoryRepository interface {
	// キャッシュしない
	FindInventoryItemStatus(ctx context.Context, p *param.FindInventoryItemStatusParam) ([]model.InventoryItemAvailability, error)
	// (scope, sku, 子スコープ有無) でキャッシュ
	GetInventoryItemsBySku(ctx context.Context, p *param.GetInventoryItemsBySkuParam) (*model.InventoryItemStatusDetailsQueryResult, error)
}

type ProductSettingsRepository interface {
	GetProductSettings(ctx context.Context, p *param.GetProductSettingsParam) (*model.ProductSettings, error)
}
