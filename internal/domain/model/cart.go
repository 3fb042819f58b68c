package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ワークフロー実行済みかどうか
type CartState string

const (
	// 保存されたままの状態（再計算なし）
	CartStateDraft CartState = "DRAFT"
	// ExecuteWorkflow で再計算・検証済み
	CartStateProcessed CartState = "PROCESSED"
)

// DefaultCartName は通常のカート名
const DefaultCartName = "Default"

// WishListCartName はウィッシュリスト用のカート名
const WishListCartName = "WishList"

// (scope, customer, name) で一意なカート
type Cart struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ScopeID      string    `gorm:"type:varchar(100);not null;uniqueIndex:ux_cart_owner" json:"scopeId"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_cart_owner" json:"customerId"`
	Name         string    `gorm:"type:varchar(100);not null;uniqueIndex:ux_cart_owner" json:"name"`
	CultureName  string    `gorm:"type:varchar(20);not null" json:"cultureName"`
	CurrencyCode string    `gorm:"type:varchar(3);not null" json:"currencyCode"`

	LineItems []LineItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"lineItems"`
	Coupons   []Coupon   `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"coupons"`

	// 注文レベルの値引き
	Rewards []Reward `gorm:"serializer:json" json:"rewards"`

	SubTotal           decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0" json:"subTotal"`
	DiscountTotal      decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0" json:"discountTotal"`
	AdditionalFeeTotal decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0" json:"additionalFeeTotal"`
	Total              decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0" json:"total"`

	// 以下は保存しない（ワークフローの結果）
	State    CartState         `gorm:"-" json:"state"`
	Messages []LineItemMessage `gorm:"-" json:"messages,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// ワークフローが出した明細ごとの検証メッセージ
type LineItemMessage struct {
	LineItemID uuid.UUID `json:"lineItemId"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
}

// IsProcessed はワークフロー済みか
func (c *Cart) IsProcessed() bool {
	return c != nil && c.State == CartStateProcessed
}

// GetLineItems は nil 安全に明細を返す
func (c *Cart) GetLineItems() []LineItem {
	if c == nil {
		return nil
	}
	return c.LineItems
}

// 明細の合計数量
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, li := range c.GetLineItems() {
		total += li.Quantity
	}
	return total
}
