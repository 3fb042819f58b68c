package overture

import (
	"context"

	"composer/internal/domain/model"
	"composer/internal/overture"
)

// 拠点ごとのSKU在庫ステータス
// 在庫が無いSKUもステータス空で返す
func (b *Backend) FindInventoryItemStatus(ctx context.Context, req overture.FindInventoryItemStatusRequest) ([]model.InventoryItemAvailability, error) {
	var items []model.InventoryItem
	err := b.db.WithContext(ctx).
		Where("scope_id = ? AND inventory_location_id = ? AND sku IN ?", req.ScopeID, req.InventoryLocationID, req.Skus).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	bySku := make(map[string]model.InventoryItem, len(items))
	for _, it := range items {
		bySku[it.Sku] = it
	}

	out := make([]model.InventoryItemAvailability, 0, len(req.Skus))
	for _, sku := range req.Skus {
		a := model.InventoryItemAvailability{
			Identifier: model.InventoryItemIdentifier{Sku: sku, InventoryLocationID: req.InventoryLocationID},
			Date:       req.Date,
			Statuses:   []model.InventoryItemStatus{},
		}
		if it, ok := bySku[sku]; ok {
			a.Statuses = statusesOf(it)
		}
		out = append(out, a)
	}
	return out, nil
}

// スコープ（と子スコープ）にあるSKUの在庫
func (b *Backend) GetInventoryItemsBySku(ctx context.Context, req overture.GetInventoryItemsBySkuRequest) (*model.InventoryItemStatusDetailsQueryResult, error) {
	db := b.db.WithContext(ctx)

	scopes := []string{req.ScopeID}
	if req.IncludeChildScopes {
		// 階層を下へたどる
		for frontier := []string{req.ScopeID}; len(frontier) > 0; {
			var children []string
			if err := db.Model(&model.Scope{}).Where("parent_scope_id IN ?", frontier).Pluck("id", &children).Error; err != nil {
				return nil, err
			}
			scopes = append(scopes, children...)
			frontier = children
		}
	}

	var items []model.InventoryItem
	if err := db.Where("sku = ? AND scope_id IN ?", req.Sku, scopes).
		Order("scope_id asc, inventory_location_id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}

	res := &model.InventoryItemStatusDetailsQueryResult{
		Results:    make([]model.InventoryItemStatusDetails, 0, len(items)),
		TotalCount: len(items),
	}
	for _, it := range items {
		res.Results = append(res.Results, model.InventoryItemStatusDetails{
			ScopeID:             it.ScopeID,
			Sku:                 it.Sku,
			InventoryLocationID: it.InventoryLocationID,
			Statuses:            statusesOf(it),
		})
	}
	return res, nil
}

// 優先順: InStock → BackOrder → PreOrder、どれも無ければ OutOfStock
func statusesOf(it model.InventoryItem) []model.InventoryItemStatus {
	var statuses []model.InventoryItemStatus
	if it.Quantity > 0 {
		statuses = append(statuses, model.InventoryItemStatus{Status: model.InventoryStatusInStock, Quantity: it.Quantity})
	}
	if it.AllowBackOrder {
		statuses = append(statuses, model.InventoryItemStatus{Status: model.InventoryStatusBackOrder, Quantity: it.BackOrderLimit})
	}
	if it.AllowPreOrder {
		statuses = append(statuses, model.InventoryItemStatus{Status: model.InventoryStatusPreOrder, Quantity: it.PreOrderLimit})
	}
	if len(statuses) == 0 {
		statuses = append(statuses, model.InventoryItemStatus{Status: model.InventoryStatusOutOfStock})
	}
	return statuses
}
