package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 追加料金の計算ルール
type AdditionalFeeCalculationRule string

const (
	FeePerUnit     AdditionalFeeCalculationRule = "PerUnit"
	FeePerLineItem AdditionalFeeCalculationRule = "PerLineItem"
	FeePerOrder    AdditionalFeeCalculationRule = "PerOrder"
)

// カートの明細
// 価格は追加時点のものを保存し、ワークフローで再計算する
type LineItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CartID      uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID   string    `gorm:"type:varchar(100);not null" json:"productId"`
	VariantID   string    `gorm:"type:varchar(100)" json:"variantId"`
	Sku         string    `gorm:"type:varchar(100)" json:"sku"`
	ProductName string    `gorm:"type:varchar(255)" json:"productName"`
	Quantity    int       `gorm:"not null" json:"quantity"`

	CurrentPrice   decimal.NullDecimal `gorm:"type:numeric(18,4)" json:"currentPrice"`
	DefaultPrice   decimal.NullDecimal `gorm:"type:numeric(18,4)" json:"defaultPrice"`
	DiscountAmount decimal.NullDecimal `gorm:"type:numeric(18,4)" json:"discountAmount"`
	Total          decimal.NullDecimal `gorm:"type:numeric(18,4)" json:"total"`

	KvaValues        map[string]string `gorm:"serializer:json" json:"kvaValues"`
	KvaDisplayValues map[string]string `gorm:"serializer:json" json:"kvaDisplayValues"`

	AdditionalFees []AdditionalFee `gorm:"foreignKey:LineItemID;constraint:OnDelete:CASCADE" json:"additionalFees"`
	Rewards        []Reward        `gorm:"serializer:json" json:"rewards"`

	GiftWrap    bool   `gorm:"not null;default:false" json:"giftWrap"`
	GiftMessage string `gorm:"type:varchar(500)" json:"giftMessage"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// 明細の追加料金
type AdditionalFee struct {
	ID              int64                        `gorm:"primaryKey;autoIncrement" json:"id"`
	LineItemID      uuid.UUID                    `gorm:"type:uuid;not null;index" json:"-"`
	Name            string                       `gorm:"type:varchar(100);not null" json:"name"`
	Description     string                       `gorm:"type:varchar(255)" json:"description"`
	Amount          decimal.Decimal              `gorm:"type:numeric(18,4);not null" json:"amount"`
	CalculationRule AdditionalFeeCalculationRule `gorm:"type:varchar(20);not null" json:"calculationRule"`
	Taxable         bool                         `gorm:"not null;default:false" json:"taxable"`
}
