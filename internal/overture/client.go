package overture

import (
	"context"

	"github.com/google/uuid"

	"composer/internal/domain/model"
)

// カート操作（変更後は常にワークフローを実行した結果を返す）
type CartClient interface {
	GetCart(ctx context.Context, req GetCartRequest) (*model.Cart, error)
	AddLineItem(ctx context.Context, req AddLineItemRequest) (*model.Cart, error)
	UpdateLineItem(ctx context.Context, req UpdateLineItemRequest) (*model.Cart, error)
	RemoveLineItem(ctx context.Context, req RemoveLineItemRequest) (*model.Cart, error)
	AddCoupon(ctx context.Context, req AddCouponRequest) (*model.Cart, error)
	RemoveCoupon(ctx context.Context, req RemoveCouponRequest) error
	MergeCart(ctx context.Context, req MergeCartRequest) (*model.Cart, error)
}

type InventoryClient interface {
	FindInventoryItemStatus(ctx context.Context, req FindInventoryItemStatusRequest) ([]model.InventoryItemAvailability, error)
	GetInventoryItemsBySku(ctx context.Context, req GetInventoryItemsBySkuRequest) (*model.InventoryItemStatusDetailsQueryResult, error)
}

type ProductClient interface {
	GetProduct(ctx context.Context, req GetProductRequest) (*model.Product, error)
	GetProductDefinition(ctx context.Context, req GetProductDefinitionRequest) (*model.ProductDefinition, error)
	CalculatePrices(ctx context.Context, req CalculatePricesRequest) ([]model.ProductPrice, error)
	GetEffectivePrices(ctx context.Context, req GetEffectivePricesRequest) ([]model.EffectivePriceEntryInfo, error)
	SearchProducts(ctx context.Context, req SearchProductsRequest) (*SearchProductsResult, error)
}

type CustomerClient interface {
	GetCustomerByID(ctx context.Context, scopeID string, customerID uuid.UUID) (*model.Customer, error)
	GetCustomerByUsername(ctx context.Context, scopeID string, username string) (*model.Customer, error)
}

type MembershipClient interface {
	Login(ctx context.Context, req LoginRequest) (*model.Customer, error)
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*model.Customer, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) (*model.Customer, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) (*model.Customer, error)
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
}

type LookupClient interface {
	GetLookups(ctx context.Context) ([]model.Lookup, error)
	GetLookup(ctx context.Context, name string) (*model.Lookup, error)
}

type SettingsClient interface {
	GetScope(ctx context.Context, scopeID string) (*model.Scope, error)
}

// 国と地域
type CountryClient interface {
	GetCountry(ctx context.Context, req GetCountryRequest) (*model.Country, error)
}

// 注文（チェックアウトでカートから作る）
type OrderClient interface {
	CompleteCheckout(ctx context.Context, req CompleteCheckoutRequest) (*model.Order, error)
	GetOrders(ctx context.Context, req GetOrdersRequest) (*model.OrderQueryResult, error)
	GetOrder(ctx context.Context, req GetOrderRequest) (*model.Order, error)
	UpdateOrderCustomer(ctx context.Context, req UpdateOrderCustomerRequest) (*model.Order, error)
}

// コマースAPI全体
type Client interface {
	CartClient
	InventoryClient
	ProductClient
	CustomerClient
	MembershipClient
	LookupClient
	SettingsClient
	CountryClient
	OrderClient
}
