package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"composer/internal/domain/model"
	"composer/internal/overture"
)

// =====================
// Mock: overture.Client
// =====================

type MockOvertureClient struct {
	mock.Mock
}

var _ overture.Client = (*MockOvertureClient)(nil)

func (m *MockOvertureClient) cart(args mock.Arguments) (*model.Cart, error) {
	c, _ := args.Get(0).(*model.Cart)
	return c, args.Error(1)
}

func (m *MockOvertureClient) GetCart(ctx context.Context, req overture.GetCartRequest) (*model.Cart, error) {
	return m.cart(m.Called(ctx, req))
}

func (m *MockOvertureClient) AddLineItem(ctx context.Context, req overture.AddLineItemRequest) (*model.Cart, error) {
	return m.cart(m.Called(ctx, req))
}

func (m *MockOvertureClient) UpdateLineItem(ctx context.Context, req overture.UpdateLineItemRequest) (*model.Cart, error) {
	return m.cart(m.Called(ctx, req))
}

func (m *MockOvertureClient) RemoveLineItem(ctx context.Context, req overture.RemoveLineItemRequest) (*model.Cart, error) {
	return m.cart(m.Called(ctx, req))
}

func (m *MockOvertureClient) AddCoupon(ctx context.Context, req overture.AddCouponRequest) (*model.Cart, error) {
	return m.cart(m.Called(ctx, req))
}

func (m *MockOvertureClient) RemoveCoupon(ctx context.Context, req overture.RemoveCouponRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockOvertureClient) MergeCart(ctx context.Context, req overture.MergeCartRequest) (*model.Cart, error) {
	return m.cart(m.Called(ctx, req))
}

func (m *MockOvertureClient) FindInventoryItemStatus(ctx context.Context, req overture.FindInventoryItemStatusRequest) ([]model.InventoryItemAvailability, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).([]model.InventoryItemAvailability)
	return v, args.Error(1)
}

func (m *MockOvertureClient) GetInventoryItemsBySku(ctx context.Context, req overture.GetInventoryItemsBySkuRequest) (*model.InventoryItemStatusDetailsQueryResult, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).(*model.InventoryItemStatusDetailsQueryResult)
	return v, args.Error(1)
}

func (m *MockOvertureClient) GetProduct(ctx context.Context, req overture.GetProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).(*model.Product)
	return v, args.Error(1)
}

func (m *MockOvertureClient) GetProductDefinition(ctx context.Context, req overture.GetProductDefinitionRequest) (*model.ProductDefinition, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).(*model.ProductDefinition)
	return v, args.Error(1)
}

func (m *MockOvertureClient) CalculatePrices(ctx context.Context, req overture.CalculatePricesRequest) ([]model.ProductPrice, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).([]model.ProductPrice)
	return v, args.Error(1)
}

func (m *MockOvertureClient) GetEffectivePrices(ctx context.Context, req overture.GetEffectivePricesRequest) ([]model.EffectivePriceEntryInfo, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).([]model.EffectivePriceEntryInfo)
	return v, args.Error(1)
}

func (m *MockOvertureClient) SearchProducts(ctx context.Context, req overture.SearchProductsRequest) (*overture.SearchProductsResult, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).(*overture.SearchProductsResult)
	return v, args.Error(1)
}

func (m *MockOvertureClient) GetCustomerByID(ctx context.Context, scopeID string, customerID uuid.UUID) (*model.Customer, error) {
	args := m.Called(ctx, scopeID, customerID)
	v, _ := args.Get(0).(*model.Customer)
	return v, args.Error(1)
}

func (m *MockOvertureClient) GetCustomerByUsername(ctx context.Context, scopeID string, username string) (*model.Customer, error) {
	args := m.Called(ctx, scopeID, username)
	v, _ := args.Get(0).(*model.Customer)
	return v, args.Error(1)
}

func (m *MockOvertureClient) Login(ctx context.Context, req overture.LoginRequest) (*model.Customer, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).(*model.Customer)
	return v, args.Error(1)
}

func (m *MockOvertureClient) CreateCustomer(ctx context.Context, req overture.CreateCustomerRequest) (*model.Customer, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).(*model.Customer)
	return v, args.Error(1)
}

func (m *MockOvertureClient) ChangePassword(ctx context.Context, req overture.ChangePasswordRequest) (*model.Customer, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).(*model.Customer)
	return v, args.Error(1)
}

func (m *MockOvertureClient) ResetPassword(ctx context.Context, req overture.ResetPasswordRequest) (*model.Customer, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).(*model.Customer)
	return v, args.Error(1)
}

func (m *MockOvertureClient) ForgotPassword(ctx context.Context, req overture.ForgotPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockOvertureClient) GetLookups(ctx context.Context) ([]model.Lookup, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]model.Lookup)
	return v, args.Error(1)
}

func (m *MockOvertureClient) GetLookup(ctx context.Context, name string) (*model.Lookup, error) {
	args := m.Called(ctx, name)
	v, _ := args.Get(0).(*model.Lookup)
	return v, args.Error(1)
}

func (m *MockOvertureClient) GetScope(ctx context.Context, scopeID string) (*model.Scope, error) {
	args := m.Called(ctx, scopeID)
	v, _ := args.Get(0).(*model.Scope)
	return v, args.Error(1)
}

func (m *MockOvertureClient) GetCountry(ctx context.Context, req overture.GetCountryRequest) (*model.Country, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).(*model.Country)
	return v, args.Error(1)
}

func (m *MockOvertureClient) order(args mock.Arguments) (*model.Order, error) {
	o, _ := args.Get(0).(*model.Order)
	return o, args.Error(1)
}

func (m *MockOvertureClient) CompleteCheckout(ctx context.Context, req overture.CompleteCheckoutRequest) (*model.Order, error) {
	return m.order(m.Called(ctx, req))
}

func (m *MockOvertureClient) GetOrders(ctx context.Context, req overture.GetOrdersRequest) (*model.OrderQueryResult, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).(*model.OrderQueryResult)
	return v, args.Error(1)
}

func (m *MockOvertureClient) GetOrder(ctx context.Context, req overture.GetOrderRequest) (*model.Order, error) {
	return m.order(m.Called(ctx, req))
}

func (m *MockOvertureClient) UpdateOrderCustomer(ctx context.Context, req overture.UpdateOrderCustomerRequest) (*model.Order, error) {
	return m.order(m.Called(ctx, req))
}
