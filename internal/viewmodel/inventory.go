package viewmodel

import "time"

type InventoryItemIdentifierViewModel struct {
	Sku                 string `json:"sku"`
	InventoryLocationID string `json:"inventoryLocationId"`
}

type InventoryItemStatusViewModel struct {
	Status   string `json:"status"`
	Quantity int64  `json:"quantity"`
}

type InventoryItemAvailabilityViewModel struct {
	Identifier InventoryItemIdentifierViewModel `json:"identifier"`
	Date       time.Time                        `json:"date"`
	Statuses   []InventoryItemStatusViewModel   `json:"statuses"`
}

type ProductSettingsViewModel struct {
	IsInventoryEnabled bool `json:"isInventoryEnabled"`
}
