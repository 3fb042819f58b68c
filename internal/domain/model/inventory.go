package model

import "time"

// 在庫ステータス
type InventoryStatus string

const (
	InventoryStatusInStock    InventoryStatus = "InStock"
	InventoryStatusOutOfStock InventoryStatus = "OutOfStock"
	InventoryStatusPreOrder   InventoryStatus = "PreOrder"
	InventoryStatusBackOrder  InventoryStatus = "BackOrder"
)

// 在庫拠点ごとのSKU在庫
type InventoryItem struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ScopeID             string    `gorm:"type:varchar(100);not null;uniqueIndex:ux_inventory_item" json:"scopeId"`
	Sku                 string    `gorm:"type:varchar(100);not null;uniqueIndex:ux_inventory_item" json:"sku"`
	InventoryLocationID string    `gorm:"type:varchar(100);not null;uniqueIndex:ux_inventory_item" json:"inventoryLocationId"`
	Quantity            int64     `gorm:"not null;default:0" json:"quantity"`
	AllowBackOrder      bool      `gorm:"not null;default:false" json:"allowBackOrder"`
	BackOrderLimit      int64     `gorm:"not null;default:0" json:"backOrderLimit"`
	AllowPreOrder       bool      `gorm:"not null;default:false" json:"allowPreOrder"`
	PreOrderLimit       int64     `gorm:"not null;default:0" json:"preOrderLimit"`
	UpdatedAt           time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// SKUと拠点の組
type InventoryItemIdentifier struct {
	Sku                 string `json:"sku"`
	InventoryLocationID string `json:"inventoryLocationId"`
}

// ステータスと数量
type InventoryItemStatus struct {
	Status   InventoryStatus `json:"status"`
	Quantity int64           `json:"quantity"`
}

// 日付時点の在庫可用性（ステータスは優先順）
type InventoryItemAvailability struct {
	Identifier InventoryItemIdentifier `json:"identifier"`
	Date       time.Time               `json:"date"`
	Statuses   []InventoryItemStatus   `json:"statuses"`
}

// スコープ配下の拠点ごとの在庫詳細
type InventoryItemStatusDetails struct {
	ScopeID             string                `json:"scopeId"`
	Sku                 string                `json:"sku"`
	InventoryLocationID string                `json:"inventoryLocationId"`
	Statuses            []InventoryItemStatus `json:"statuses"`
}

type InventoryItemStatusDetailsQueryResult struct {
	Results    []InventoryItemStatusDetails `json:"results"`
	TotalCount int                          `json:"totalCount"`
}
