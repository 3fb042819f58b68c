package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"composer/internal/dam"
	"composer/internal/domain/model"
	"composer/internal/param"
	repo "composer/internal/repository"
)

// =====================
// Mock: CartRepository
// =====================

type MockCartRepository struct {
	mock.Mock
}

var _ repo.CartRepository = (*MockCartRepository)(nil)

func cartResult(args mock.Arguments) (*model.Cart, error) {
	c, _ := args.Get(0).(*model.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) GetCart(ctx context.Context, p *param.GetCartParam) (*model.Cart, error) {
	return cartResult(m.Called(ctx, p))
}

func (m *MockCartRepository) AddLineItem(ctx context.Context, p *param.AddLineItemParam) (*model.Cart, error) {
	return cartResult(m.Called(ctx, p))
}

func (m *MockCartRepository) UpdateLineItem(ctx context.Context, p *param.UpdateLineItemParam) (*model.Cart, error) {
	return cartResult(m.Called(ctx, p))
}

func (m *MockCartRepository) RemoveLineItem(ctx context.Context, p *param.RemoveLineItemParam) (*model.Cart, error) {
	return cartResult(m.Called(ctx, p))
}

func (m *MockCartRepository) AddCoupon(ctx context.Context, p *param.CouponParam) (*model.Cart, error) {
	return cartResult(m.Called(ctx, p))
}

func (m *MockCartRepository) RemoveCoupons(ctx context.Context, p *param.RemoveCouponsParam) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCartRepository) MergeCart(ctx context.Context, p *param.MergeCartParam) (*model.Cart, error) {
	return cartResult(m.Called(ctx, p))
}

// =====================
// Mock: InventoryRepository / ProductSettingsRepository
// =====================

type MockInventoryRepository struct {
	mock.Mock
}

var _ repo.InventoryRepository = (*MockInventoryRepository)(nil)

func (m *MockInventoryRepository) FindInventoryItemStatus(ctx context.Context, p *param.FindInventoryItemStatusParam) ([]model.InventoryItemAvailability, error) {
	args := m.Called(ctx, p)
	v, _ := args.Get(0).([]model.InventoryItemAvailability)
	return v, args.Error(1)
}

func (m *MockInventoryRepository) GetInventoryItemsBySku(ctx context.Context, p *param.GetInventoryItemsBySkuParam) (*model.InventoryItemStatusDetailsQueryResult, error) {
	args := m.Called(ctx, p)
	v, _ := args.Get(0).(*model.InventoryItemStatusDetailsQueryResult)
	return v, args.Error(1)
}

type MockProductSettingsRepository struct {
	mock.Mock
}

var _ repo.ProductSettingsRepository = (*MockProductSettingsRepository)(nil)

func (m *MockProductSettingsRepository) GetProductSettings(ctx context.Context, p *param.GetProductSettingsParam) (*model.ProductSettings, error) {
	args := m.Called(ctx, p)
	v, _ := args.Get(0).(*model.ProductSettings)
	return v, args.Error(1)
}

type MockInventoryLocationProvider struct {
	mock.Mock
}

func (m *MockInventoryLocationProvider) GetDefaultInventoryLocationID(ctx context.Context, scope string) (string, error) {
	args := m.Called(ctx, scope)
	return args.String(0), args.Error(1)
}

// =====================
// Mock: Membership / Customer
// =====================

type MockMembershipRepository struct {
	mock.Mock
}

var _ repo.MembershipRepository = (*MockMembershipRepository)(nil)

func customerResult(args mock.Arguments) (*model.Customer, error) {
	c, _ := args.Get(0).(*model.Customer)
	return c, args.Error(1)
}

func (m *MockMembershipRepository) Login(ctx context.Context, p *param.LoginParam) (*model.Customer, error) {
	return customerResult(m.Called(ctx, p))
}

func (m *MockMembershipRepository) CreateUser(ctx context.Context, p *param.CreateUserParam) (*model.Customer, error) {
	return customerResult(m.Called(ctx, p))
}

func (m *MockMembershipRepository) ChangePassword(ctx context.Context, p *param.ChangePasswordParam) (*model.Customer, error) {
	return customerResult(m.Called(ctx, p))
}

func (m *MockMembershipRepository) ResetPassword(ctx context.Context, p *param.ResetPasswordParam) (*model.Customer, error) {
	return customerResult(m.Called(ctx, p))
}

func (m *MockMembershipRepository) ForgotPassword(ctx context.Context, p *param.ForgotPasswordParam) error {
	return m.Called(ctx, p).Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

var _ repo.CustomerRepository = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) GetCustomerByID(ctx context.Context, p *param.GetCustomerByIDParam) (*model.Customer, error) {
	return customerResult(m.Called(ctx, p))
}

func (m *MockCustomerRepository) GetCustomerByUsername(ctx context.Context, p *param.GetCustomerByUsernameParam) (*model.Customer, error) {
	return customerResult(m.Called(ctx, p))
}

// =====================
// Mock: ProductRepository
// =====================

type MockProductRepository struct {
	mock.Mock
}

var _ repo.ProductRepository = (*MockProductRepository)(nil)

func (m *MockProductRepository) GetProduct(ctx context.Context, p *param.GetProductParam) (*model.Product, error) {
	args := m.Called(ctx, p)
	v, _ := args.Get(0).(*model.Product)
	return v, args.Error(1)
}

func (m *MockProductRepository) GetProductDefinition(ctx context.Context, p *param.GetProductDefinitionParam) (*model.ProductDefinition, error) {
	args := m.Called(ctx, p)
	v, _ := args.Get(0).(*model.ProductDefinition)
	return v, args.Error(1)
}

func (m *MockProductRepository) CalculatePrices(ctx context.Context, p *param.ProductPricesParam) ([]model.ProductPrice, error) {
	args := m.Called(ctx, p)
	v, _ := args.Get(0).([]model.ProductPrice)
	return v, args.Error(1)
}

func (m *MockProductRepository) GetEffectivePrice(ctx context.Context, p *param.ProductPricesParam) ([]model.EffectivePriceEntryInfo, error) {
	args := m.Called(ctx, p)
	v, _ := args.Get(0).([]model.EffectivePriceEntryInfo)
	return v, args.Error(1)
}

func (m *MockProductRepository) SearchProducts(ctx context.Context, p *param.SearchProductsParam) ([]model.Product, int64, error) {
	args := m.Called(ctx, p)
	v, _ := args.Get(0).([]model.Product)
	return v, args.Get(1).(int64), args.Error(2)
}

// =====================
// Mock: ImageProvider
// =====================

type MockImageProvider struct {
	mock.Mock
}

var _ ImageProvider = (*MockImageProvider)(nil)

func (m *MockImageProvider) GetProductMainImages(ctx context.Context, p dam.GetProductMainImagesParam) ([]dam.ProductMainImage, error) {
	args := m.Called(ctx, p)
	v, _ := args.Get(0).([]dam.ProductMainImage)
	return v, args.Error(1)
}

// =====================
// Mock: CountryRepository
// =====================

type MockCountryRepository struct {
	mock.Mock
}

var _ repo.CountryRepository = (*MockCountryRepository)(nil)

func (m *MockCountryRepository) RetrieveCountry(ctx context.Context, p *param.RetrieveCountryParam) (*model.Country, error) {
	args := m.Called(ctx, p)
	v, _ := args.Get(0).(*model.Country)
	return v, args.Error(1)
}

// =====================
// Mock: OrderRepository
// =====================

type MockOrderRepository struct {
	mock.Mock
}

var _ repo.OrderRepository = (*MockOrderRepository)(nil)

func orderResult(args mock.Arguments) (*model.Order, error) {
	o, _ := args.Get(0).(*model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) CompleteCheckout(ctx context.Context, p *param.CompleteCheckoutParam) (*model.Order, error) {
	return orderResult(m.Called(ctx, p))
}

func (m *MockOrderRepository) GetCustomerOrders(ctx context.Context, p *param.GetCustomerOrdersParam) (*model.OrderQueryResult, error) {
	args := m.Called(ctx, p)
	v, _ := args.Get(0).(*model.OrderQueryResult)
	return v, args.Error(1)
}

func (m *MockOrderRepository) GetOrder(ctx context.Context, p *param.GetOrderParam) (*model.Order, error) {
	return orderResult(m.Called(ctx, p))
}

func (m *MockOrderRepository) UpdateOrderCustomer(ctx context.Context, p *param.UpdateOrderCustomerParam) (*model.Order, error) {
	return orderResult(m.Called(ctx, p))
}
