package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// カタログの商品
type Product struct {
	ID             string              `gorm:"type:varchar(100);primaryKey" json:"id"`
	ScopeID        string              `gorm:"type:varchar(100);not null;index" json:"scopeId"`
	DisplayName    string              `gorm:"type:varchar(255);not null" json:"displayName"`
	Description    string              `gorm:"type:text" json:"description"`
	Sku            string              `gorm:"type:varchar(100);not null;index" json:"sku"`
	DefinitionName string              `gorm:"type:varchar(100)" json:"definitionName"`
	ListPrice      decimal.Decimal     `gorm:"type:numeric(18,4);not null" json:"listPrice"`
	SalePrice      decimal.NullDecimal `gorm:"type:numeric(18,4)" json:"salePrice"`
	IsActive       bool                `gorm:"not null;default:false" json:"isActive"`

	Variants []Variant    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants"`
	Fees     []ProductFee `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"fees"`

	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// キーバリアント属性で区別される商品のバリエーション
type Variant struct {
	ID               string              `gorm:"type:varchar(100);primaryKey" json:"id"`
	ProductID        string              `gorm:"type:varchar(100);not null;index" json:"productId"`
	Sku              string              `gorm:"type:varchar(100);not null;index" json:"sku"`
	KvaValues        map[string]string   `gorm:"serializer:json" json:"kvaValues"`
	KvaDisplayValues map[string]string   `gorm:"serializer:json" json:"kvaDisplayValues"`
	ListPrice        decimal.NullDecimal `gorm:"type:numeric(18,4)" json:"listPrice"`
	SalePrice        decimal.NullDecimal `gorm:"type:numeric(18,4)" json:"salePrice"`
	IsActive         bool                `gorm:"not null;default:true" json:"isActive"`
}

// 商品に紐づく追加料金（環境料など）
type ProductFee struct {
	ID              int64                        `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID       string                       `gorm:"type:varchar(100);not null;index" json:"productId"`
	Name            string                       `gorm:"type:varchar(100);not null" json:"name"`
	Description     string                       `gorm:"type:varchar(255)" json:"description"`
	Amount          decimal.Decimal              `gorm:"type:numeric(18,4);not null" json:"amount"`
	CalculationRule AdditionalFeeCalculationRule `gorm:"type:varchar(20);not null" json:"calculationRule"`
	Taxable         bool                         `gorm:"not null;default:false" json:"taxable"`
}

// 商品定義（設定可能な属性の一覧）
type ProductDefinition struct {
	Name       string    `gorm:"type:varchar(100);primaryKey" json:"name"`
	Attributes []string  `gorm:"serializer:json" json:"attributes"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}

// 計算済み価格
type ProductPrice struct {
	ProductID     string          `json:"productId"`
	DefaultPrice  decimal.Decimal `json:"defaultPrice"`
	Price         decimal.Decimal `json:"price"`
	VariantPrices []VariantPrice  `json:"variantPrices"`
}

type VariantPrice struct {
	VariantID    string          `json:"variantId"`
	DefaultPrice decimal.Decimal `json:"defaultPrice"`
	Price        decimal.Decimal `json:"price"`
}

// 現在有効な価格
type EffectivePriceEntryInfo struct {
	ProductID    string          `json:"productId"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	RegularPrice decimal.Decimal `json:"regularPrice"`
}

// (productId, variantId) の価格を返す
// 販売価格が無ければ定価
func (p *Product) PriceFor(variantID string) (current decimal.Decimal, regular decimal.Decimal) {
	regular = p.ListPrice
	current = p.ListPrice
	if p.SalePrice.Valid {
		current = p.SalePrice.Decimal
	}

	for _, v := range p.Variants {
		if v.ID != variantID {
			continue
		}
		if v.ListPrice.Valid {
			regular = v.ListPrice.Decimal
			current = v.ListPrice.Decimal
		}
		if v.SalePrice.Valid {
			current = v.SalePrice.Decimal
		}
	}
	return current, regular
}

// variantIDのバリエーション（無ければnil）
func (p *Product) FindVariant(variantID string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}
