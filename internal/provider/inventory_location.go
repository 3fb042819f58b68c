package provider

import (
	"context"
	"errors"

	"composer/internal/param"
	"composer/internal/repository"
)

var ErrNoInventoryLocation = errors.New("no default inventory location")

// 既定の在庫拠点
// 設定値を優先し、無ければスコープ設定
type InventoryLocationProvider struct {
	settings   repository.ProductSettingsRepository
	configured string
}

// DI
func NewInventoryLocationProvider(settings repository.ProductSettingsRepository, configured string) *InventoryLocationProvider {
	return &InventoryLocationProvider{settings: settings, configured: configured}
}

func (p *InventoryLocationProvider) GetDefaultInventoryLocationID(ctx context.Context, scope string) (string, error) {
	if p.configured != "" {
		return p.configured, nil
	}
	s, err := p.settings.GetProductSettings(ctx, &param.GetProductSettingsParam{Scope: scope})
	if err != nil {
		return "", err
	}
	if s == nil || s.DefaultInventoryLocationID == "" {
		return "", ErrNoInventoryLocation
	}
	return s.DefaultInventoryLocationID, nil
}
