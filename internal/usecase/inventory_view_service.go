package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"composer/internal/auth"
	"composer/internal/domain/model"
	"composer/internal/param"
	repo "composer/internal/repository"
	"composer/internal/viewmodel"
)

type ProductSettingsViewService struct {
	settings repo.ProductSettingsRepository
}

// DI
func NewProductSettingsViewService(settings repo.ProductSettingsRepository) *ProductSettingsViewService {
	return &ProductSettingsViewService{settings: settings}
}

func (s *ProductSettingsViewService) GetProductSettings(ctx context.Context, scope string, _ language.Tag) (*viewmodel.ProductSettingsViewModel, error) {
	settings, err := s.settings.GetProductSettings(ctx, &param.GetProductSettingsParam{Scope: scope})
	if err != nil {
		return nil, err
	}
	return &viewmodel.ProductSettingsViewModel{IsInventoryEnabled: settings.IsInventoryEnabled}, nil
}

// 在庫の可用性
type InventoryViewService struct {
	inventoryRepo repo.InventoryRepository
	settings      *ProductSettingsViewService
	locations     InventoryLocationProvider
	clock         auth.Clock
	available     []model.InventoryStatus
	logger        *zap.Logger
}

// DI
// available は販売可能とみなすステータス
func NewInventoryViewService(
	inventoryRepo repo.InventoryRepository,
	settings *ProductSettingsViewService,
	locations InventoryLocationProvider,
	clock auth.Clock,
	available []model.InventoryStatus,
	logger *zap.Logger,
) *InventoryViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryViewService{
		inventoryRepo: inventoryRepo,
		settings:      settings,
		locations:     locations,
		clock:         clock,
		available:     available,
		logger:        logger,
	}
}

func (s *InventoryViewService) FindInventoryItemStatus(ctx context.Context, p *param.FindInventoryItemStatusParam) ([]viewmodel.InventoryItemAvailabilityViewModel, error) {
	items, err := s.inventoryRepo.FindInventoryItemStatus(ctx, p)
	if err != nil {
		return nil, err
	}

	out := make([]viewmodel.InventoryItemAvailabilityViewModel, 0, len(items))
	for _, it := range items {
		vm := viewmodel.InventoryItemAvailabilityViewModel{
			Identifier: viewmodel.InventoryItemIdentifierViewModel{
				Sku:                 it.Identifier.Sku,
				InventoryLocationID: it.Identifier.InventoryLocationID,
			},
			Date:     it.Date,
			Statuses: make([]viewmodel.InventoryItemStatusViewModel, 0, len(it.Statuses)),
		}
		for _, st := range it.Statuses {
			vm.Statuses = append(vm.Statuses, viewmodel.InventoryItemStatusViewModel{
				Status:   string(st.Status),
				Quantity: st.Quantity,
			})
		}
		out = append(out, vm)
	}
	return out, nil
}

// FindSkusAvailableToSell は販売可能なSKUを返す
// 在庫管理が無効なスコープは要求どおり全SKU
func (s *InventoryViewService) FindSkusAvailableToSell(ctx context.Context, scope string, culture language.Tag, skus []string) ([]string, error) {
	settings, err := s.settings.GetProductSettings(ctx, scope, culture)
	if err != nil {
		return nil, err
	}
	if !settings.IsInventoryEnabled {
		s.logger.Debug("inventory disabled", zap.String("scope", scope))
		return skus, nil
	}

	location, err := s.locations.GetDefaultInventoryLocationID(ctx, scope)
	if err != nil {
		return nil, err
	}

	items, err := s.FindInventoryItemStatus(ctx, &param.FindInventoryItemStatusParam{
		Scope:               scope,
		CultureInfo:         culture,
		Skus:                skus,
		Date:                s.today(),
		InventoryLocationID: location,
	})
	if err != nil {
		return nil, err
	}
	return SkusAvailableToSell(s.available, items), nil
}

// SkusAvailableToSell は先頭ステータスが許可リストにあるSKU
// 順序は結果の順、ステータスなしは除外
func SkusAvailableToSell(available []model.InventoryStatus, items []viewmodel.InventoryItemAvailabilityViewModel) []string {
	allowed := make(map[string]struct{}, len(available))
	for _, st := range available {
		allowed[string(st)] = struct{}{}
	}

	skus := []string{}
	for _, it := range items {
		if len(it.Statuses) == 0 {
			continue
		}
		if _, ok := allowed[it.Statuses[0].Status]; ok {
			skus = append(skus, it.Identifier.Sku)
		}
	}
	return skus
}

func (s *InventoryViewService) today() time.Time {
	return s.clock.Now().UTC()
}
