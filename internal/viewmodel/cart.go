package viewmodel

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// 画面に出すカートのメッセージ種別
type CartMessageLevel string

const (
	CartMessageLevelSuccess CartMessageLevel = "Success"
	CartMessageLevelInfo    CartMessageLevel = "Info"
	CartMessageLevelWarning CartMessageLevel = "Warning"
	CartMessageLevelError   CartMessageLevel = "Error"
)

type CartMessageViewModel struct {
	Message string           `json:"message"`
	Level   CartMessageLevel `json:"level"`
}

type KeyVariantAttributes struct {
	Key           string `json:"key"`
	Value         string `json:"value"`
	OriginalValue string `json:"originalValue"`
}

type AdditionalFeeViewModel struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	CalculationRule string          `json:"calculationRule"`
	Taxable         bool            `json:"taxable"`
}

type RewardViewModel struct {
	PromotionID int64  `json:"promotionId"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// 明細1件の表示用
type LineItemDetailViewModel struct {
	ID          uuid.UUID `json:"id"`
	ProductID   string    `json:"productId"`
	VariantID   string    `json:"variantId"`
	Sku         string    `json:"sku"`
	DisplayName string    `json:"displayName"`
	Quantity    int       `json:"quantity"`

	CurrentPrice   string `json:"currentPrice"`
	DefaultPrice   string `json:"defaultPrice"`
	DiscountAmount string `json:"discountAmount"`
	Total          string `json:"total"`

	IsOnSale          bool   `json:"isOnSale"`
	IsPriceDiscounted bool   `json:"isPriceDiscounted"`
	SavingsTotal      string `json:"savingsTotal"`

	KeyVariantAttributesList []KeyVariantAttributes   `json:"keyVariantAttributesList"`
	ImageURL                 string                   `json:"imageUrl"`
	FallbackImageURL         string                   `json:"fallbackImageUrl"`
	ProductURL               string                   `json:"productUrl"`
	Rewards                  []RewardViewModel        `json:"rewards"`
	AdditionalFees           []AdditionalFeeViewModel `json:"additionalFees"`

	GiftWrap    bool   `json:"giftWrap"`
	GiftMessage string `json:"giftMessage"`
	IsValid     bool   `json:"isValid"`
}

type CouponViewModel struct {
	CouponCode  string `json:"couponCode"`
	DisplayText string `json:"displayText"`
}

type CouponsViewModel struct {
	ApplicableCoupons []CouponViewModel      `json:"applicableCoupons"`
	Messages          []CartMessageViewModel `json:"messages"`
}

type OrderSummaryViewModel struct {
	SubTotal           string            `json:"subTotal"`
	DiscountTotal      string            `json:"discountTotal"`
	AdditionalFeeTotal string            `json:"additionalFeeTotal"`
	Total              string            `json:"total"`
	IsDiscounted       bool              `json:"isDiscounted"`
	Rewards            []RewardViewModel `json:"rewards"`
}

type CartViewModel struct {
	ID                       uuid.UUID                 `json:"id"`
	Name                     string                    `json:"name"`
	CustomerID               uuid.UUID                 `json:"customerId"`
	CurrencyCode             string                    `json:"currencyCode"`
	LineItemDetailViewModels []LineItemDetailViewModel `json:"lineItemDetailViewModels"`
	LineItemCount            int                       `json:"lineItemCount"`
	TotalQuantity            int                       `json:"totalQuantity"`
	OrderSummary             OrderSummaryViewModel     `json:"orderSummary"`
	Coupons                  CouponsViewModel          `json:"coupons"`
	IsCartEmpty              bool                      `json:"isCartEmpty"`
	HasInvalidLineItems      bool                      `json:"hasInvalidLineItems"`
}
