package model

// ストアのスコープ（Global 配下に子スコープを持てる）
type Scope struct {
	ID                         string  `gorm:"type:varchar(100);primaryKey" json:"id"`
	ParentScopeID              *string `gorm:"type:varchar(100);index" json:"parentScopeId"`
	DefaultCultureName         string  `gorm:"type:varchar(20);not null" json:"defaultCultureName"`
	CurrencyCode               string  `gorm:"type:varchar(3);not null" json:"currencyCode"`
	IsInventoryEnabled         bool    `gorm:"not null;default:true" json:"isInventoryEnabled"`
	DefaultInventoryLocationID string  `gorm:"type:varchar(100)" json:"defaultInventoryLocationId"`
}

// スコープごとの商品設定
type ProductSettings struct {
	ScopeID                    string `json:"scopeId"`
	IsInventoryEnabled         bool   `json:"isInventoryEnabled"`
	DefaultInventoryLocationID string `json:"defaultInventoryLocationId"`
}
