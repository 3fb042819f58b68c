package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 再計算後のクーポンの有効性
type CouponState string

const (
	CouponStateOk                CouponState = "Ok"
	CouponStateInvalidCode       CouponState = "InvalidCode"
	CouponStateExpired           CouponState = "Expired"
	CouponStateNotActiveYet      CouponState = "NotActiveYet"
	CouponStateUsageLimitReached CouponState = "UsageLimitReached"
	CouponStateNotApplicable     CouponState = "NotApplicable"
)

// カートに適用されたクーポン
type Coupon struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"-"`
	CartID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	CouponCode  string      `gorm:"type:varchar(100);not null" json:"couponCode"`
	CouponState CouponState `gorm:"type:varchar(30);not null" json:"couponState"`
	PromotionID *int64      `json:"promotionId,omitempty"`
	CreatedAt   time.Time   `gorm:"not null;autoCreateTime" json:"-"`
}

// 値引きの適用レベル
type RewardLevel string

const (
	RewardLevelLineItem          RewardLevel = "LineItem"
	RewardLevelShipment          RewardLevel = "Shipment"
	RewardLevelFulfillmentMethod RewardLevel = "FulfillmentMethod"
	RewardLevelOrder             RewardLevel = "Order"
)

// プロモーションによる値引き
type Reward struct {
	PromotionID   int64           `json:"promotionId"`
	PromotionName string          `json:"promotionName"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Level         RewardLevel     `json:"level"`
}

// クーポンコードで有効になるプロモーション
// TargetSku が空なら注文レベル、あればそのSKUの明細レベル
type Promotion struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ScopeID         string          `gorm:"type:varchar(100);not null;uniqueIndex:ux_promotion_code" json:"scopeId"`
	Code            string          `gorm:"type:varchar(100);not null;uniqueIndex:ux_promotion_code" json:"code"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric(7,4);not null;default:0" json:"discountPercent"`
	DiscountAmount  decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0" json:"discountAmount"`
	TargetSku       string          `gorm:"type:varchar(100)" json:"targetSku"`
	StartAt         *time.Time      `json:"startAt"`
	EndAt           *time.Time      `json:"endAt"`
	UsageLimit      int             `gorm:"not null;default:0" json:"usageLimit"`
	UsedCount       int             `gorm:"not null;default:0" json:"usedCount"`
	IsActive        bool            `gorm:"not null;default:true" json:"isActive"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
