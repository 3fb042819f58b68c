package viewmodel

import (
	"time"

	"github.com/google/uuid"
)

// 注文1件（確認画面・履歴の詳細）
type OrderViewModel struct {
	ID                       uuid.UUID                 `json:"id"`
	OrderNumber              string                    `json:"orderNumber"`
	Status                   string                    `json:"status"`
	StatusDisplayName        string                    `json:"statusDisplayName"`
	OrderDate                time.Time                 `json:"orderDate"`
	CurrencyCode             string                    `json:"currencyCode"`
	LineItemDetailViewModels []LineItemDetailViewModel `json:"lineItemDetailViewModels"`
	TotalQuantity            int                       `json:"totalQuantity"`
	OrderSummary             OrderSummaryViewModel     `json:"orderSummary"`
	CouponCodes              []string                  `json:"couponCodes"`
	OrderDetailURL           string                    `json:"orderDetailUrl"`
}

// 履歴一覧の1行
type OrderHistoryItemViewModel struct {
	OrderNumber       string    `json:"orderNumber"`
	Status            string    `json:"status"`
	StatusDisplayName string    `json:"statusDisplayName"`
	OrderDate         time.Time `json:"orderDate"`
	Total             string    `json:"total"`
	TotalQuantity     int       `json:"totalQuantity"`
	OrderDetailURL    string    `json:"orderDetailUrl"`
}

type OrderHistoryViewModel struct {
	Orders     []OrderHistoryItemViewModel `json:"orders"`
	Page       int                         `json:"page"`
	PageSize   int                         `json:"pageSize"`
	TotalCount int64                       `json:"totalCount"`
	TotalPages int                         `json:"totalPages"`
}
