package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "New"
	OrderStatusCanceled  OrderStatus = "Canceled"
	OrderStatusCompleted OrderStatus = "Completed"
)

// ワークフロー済みのカートから作った注文
// 金額はチェックアウト時点のスナップショット
type Order struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ScopeID     string      `gorm:"type:varchar(100);not null;index:ix_order_customer" json:"scopeId"`
	CustomerID  uuid.UUID   `gorm:"type:uuid;not null;index:ix_order_customer;uniqueIndex:ux_order_idempotency" json:"customerId"`
	OrderNumber string      `gorm:"type:varchar(50);not null;uniqueIndex" json:"orderNumber"`
	CartName    string      `gorm:"type:varchar(100);not null" json:"cartName"`
	Status      OrderStatus `gorm:"type:varchar(20);not null" json:"status"`
	// 同じキーの再送は同じ注文を返す（NULL は重複可）
	IdempotencyKey *string `gorm:"type:varchar(255);uniqueIndex:ux_order_idempotency" json:"-"`

	CultureName  string `gorm:"type:varchar(20);not null" json:"cultureName"`
	CurrencyCode string `gorm:"type:varchar(3);not null" json:"currencyCode"`

	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Rewards     []Reward    `gorm:"serializer:json" json:"rewards"`
	CouponCodes []string    `gorm:"serializer:json" json:"couponCodes"`

	SubTotal           decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0" json:"subTotal"`
	DiscountTotal      decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0" json:"discountTotal"`
	AdditionalFeeTotal decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0" json:"additionalFeeTotal"`
	Total              decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0" json:"total"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// 注文明細（カート明細のスナップショット）
type OrderItem struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	LineItemID  uuid.UUID `gorm:"type:uuid;not null" json:"lineItemId"`
	ProductID   string    `gorm:"type:varchar(100);not null" json:"productId"`
	VariantID   string    `gorm:"type:varchar(100)" json:"variantId"`
	Sku         string    `gorm:"type:varchar(100)" json:"sku"`
	ProductName string    `gorm:"type:varchar(255)" json:"productName"`
	Quantity    int       `gorm:"not null" json:"quantity"`

	CurrentPrice   decimal.Decimal `gorm:"type:numeric(18,4);not null" json:"currentPrice"`
	DefaultPrice   decimal.Decimal `gorm:"type:numeric(18,4);not null" json:"defaultPrice"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0" json:"discountAmount"`
	Total          decimal.Decimal `gorm:"type:numeric(18,4);not null" json:"total"`

	KvaValues        map[string]string `gorm:"serializer:json" json:"kvaValues"`
	KvaDisplayValues map[string]string `gorm:"serializer:json" json:"kvaDisplayValues"`
	Rewards          []Reward          `gorm:"serializer:json" json:"rewards"`

	GiftWrap    bool   `gorm:"not null;default:false" json:"giftWrap"`
	GiftMessage string `gorm:"type:varchar(500)" json:"giftMessage"`
}

// カート明細からスナップショットを作る
func NewOrderItem(li LineItem) OrderItem {
	return OrderItem{
		LineItemID:       li.ID,
		ProductID:        li.ProductID,
		VariantID:        li.VariantID,
		Sku:              li.Sku,
		ProductName:      li.ProductName,
		Quantity:         li.Quantity,
		CurrentPrice:     li.CurrentPrice.Decimal,
		DefaultPrice:     li.DefaultPrice.Decimal,
		DiscountAmount:   li.DiscountAmount.Decimal,
		Total:            li.Total.Decimal,
		KvaValues:        li.KvaValues,
		KvaDisplayValues: li.KvaDisplayValues,
		Rewards:          li.Rewards,
		GiftWrap:         li.GiftWrap,
		GiftMessage:      li.GiftMessage,
	}
}

// 明細の表示はカート明細と共通
func (it OrderItem) LineItem() LineItem {
	return LineItem{
		ID:               it.LineItemID,
		ProductID:        it.ProductID,
		VariantID:        it.VariantID,
		Sku:              it.Sku,
		ProductName:      it.ProductName,
		Quantity:         it.Quantity,
		CurrentPrice:     decimal.NewNullDecimal(it.CurrentPrice),
		DefaultPrice:     decimal.NewNullDecimal(it.DefaultPrice),
		DiscountAmount:   decimal.NewNullDecimal(it.DiscountAmount),
		Total:            decimal.NewNullDecimal(it.Total),
		KvaValues:        it.KvaValues,
		KvaDisplayValues: it.KvaDisplayValues,
		Rewards:          it.Rewards,
		GiftWrap:         it.GiftWrap,
		GiftMessage:      it.GiftMessage,
	}
}

// 明細の合計数量
func (o *Order) TotalQuantity() int {
	if o == nil {
		return 0
	}
	total := 0
	for _, it := range o.Items {
		total += it.Quantity
	}
	return total
}

// 会員の注文一覧（新しい順）
type OrderQueryResult struct {
	Orders     []Order `json:"orders"`
	TotalCount int64   `json:"totalCount"`
}
