package overture

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"composer/internal/domain/model"
)

// カートを特定するキー
type CartKey struct {
	ScopeID     string
	CustomerID  uuid.UUID
	CartName    string
	CultureName string
}

type GetCartRequest struct {
	CartKey
	CurrencyCode string
	// 再計算（ワークフロー）をするか
	ExecuteWorkflow bool
}

type AddLineItemRequest struct {
	CartKey
	ProductID string
	VariantID string
	Quantity  int
}

type UpdateLineItemRequest struct {
	CartKey
	LineItemID  uuid.UUID
	Quantity    int
	GiftWrap    bool
	GiftMessage string
}

type RemoveLineItemRequest struct {
	CartKey
	LineItemID uuid.UUID
}

type AddCouponRequest struct {
	CartKey
	CouponCode string
}

type RemoveCouponRequest struct {
	CartKey
	CouponCode string
}

// ゲストのカートを会員のカートへ統合する
type MergeCartRequest struct {
	ScopeID         string
	CartName        string
	GuestCustomerID uuid.UUID
	CustomerID      uuid.UUID
}

type FindInventoryItemStatusRequest struct {
	ScopeID             string
	Skus                []string
	Date                time.Time
	InventoryLocationID string
}

type GetInventoryItemsBySkuRequest struct {
	ScopeID            string
	Sku                string
	Date               time.Time
	IncludeChildScopes bool
}

type GetProductRequest struct {
	ScopeID     string
	ProductID   string
	CultureName string
}

type GetProductDefinitionRequest struct {
	Name        string
	CultureName string
}

type CalculatePricesRequest struct {
	ScopeID    string
	ProductIDs []string
}

type GetEffectivePricesRequest struct {
	ScopeID    string
	ProductIDs []string
}

// 検索1ページの最大件数
const MaxSearchPageSize = 100

type SearchProductsRequest struct {
	ScopeID       string
	CultureName   string
	Keywords      string
	SortBy        string
	SortDirection string
	Page          int
	PageSize      int
	MinPrice      decimal.NullDecimal
	MaxPrice      decimal.NullDecimal
}

type SearchProductsResult struct {
	Products   []model.Product
	TotalCount int64
}

type LoginRequest struct {
	ScopeID  string
	Username string
	Password string
}

type CreateCustomerRequest struct {
	ScopeID          string
	Username         string
	Email            string
	FirstName        string
	LastName         string
	Password         string
	PasswordQuestion string
	PasswordAnswer   string
	CultureName      string
}

type ChangePasswordRequest struct {
	ScopeID     string
	CustomerID  uuid.UUID
	OldPassword string
	NewPassword string
}

type ResetPasswordRequest struct {
	ScopeID     string
	Ticket      string
	NewPassword string
}

type ForgotPasswordRequest struct {
	ScopeID     string
	Email       string
	CultureName string
}

type GetCountryRequest struct {
	IsoCode string
}

// 注文一覧1ページの最大件数
const MaxOrderPageSize = 50

type CompleteCheckoutRequest struct {
	CartKey
	// 空なら毎回新しい注文
	IdempotencyKey string
}

type GetOrdersRequest struct {
	ScopeID    string
	CustomerID uuid.UUID
	Page       int
	PageSize   int
}

// 他人の注文は見つからない扱い
type GetOrderRequest struct {
	ScopeID     string
	CustomerID  uuid.UUID
	OrderNumber string
}

// 注文の持ち主を付け替える（ゲスト → 会員）
type UpdateOrderCustomerRequest struct {
	ScopeID     string
	OrderNumber string
	CustomerID  uuid.UUID
}
