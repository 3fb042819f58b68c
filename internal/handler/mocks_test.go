package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"golang.org/x/text/language"

	"composer/internal/param"
	"composer/internal/usecase"
	"composer/internal/viewmodel"
)

// =====================
// CartService / CouponService
// =====================

type MockCartService struct{ mock.Mock }

var _ CartService = (*MockCartService)(nil)

func (m *MockCartService) GetCart(ctx context.Context, p *param.GetCartParam) (*viewmodel.CartViewModel, error) {
	args := m.Called(ctx, p)
	vm, _ := args.Get(0).(*viewmodel.CartViewModel)
	return vm, args.Error(1)
}

func (m *MockCartService) AddLineItem(ctx context.Context, p *param.AddLineItemParam) (*viewmodel.CartViewModel, error) {
	args := m.Called(ctx, p)
	vm, _ := args.Get(0).(*viewmodel.CartViewModel)
	return vm, args.Error(1)
}

func (m *MockCartService) UpdateLineItem(ctx context.Context, p *param.UpdateLineItemParam) (*viewmodel.CartViewModel, error) {
	args := m.Called(ctx, p)
	vm, _ := args.Get(0).(*viewmodel.CartViewModel)
	return vm, args.Error(1)
}

func (m *MockCartService) RemoveLineItem(ctx context.Context, p *param.RemoveLineItemParam) (*viewmodel.CartViewModel, error) {
	args := m.Called(ctx, p)
	vm, _ := args.Get(0).(*viewmodel.CartViewModel)
	return vm, args.Error(1)
}

type MockCouponService struct{ mock.Mock }

var _ CouponService = (*MockCouponService)(nil)

func (m *MockCouponService) AddCoupon(ctx context.Context, p *param.CouponParam) (*viewmodel.CartViewModel, error) {
	args := m.Called(ctx, p)
	vm, _ := args.Get(0).(*viewmodel.CartViewModel)
	return vm, args.Error(1)
}

func (m *MockCouponService) RemoveCoupon(ctx context.Context, p *param.CouponParam) (*viewmodel.CartViewModel, error) {
	args := m.Called(ctx, p)
	vm, _ := args.Get(0).(*viewmodel.CartViewModel)
	return vm, args.Error(1)
}

// =====================
// InventoryService / SearchService / ProductService
// =====================

type MockInventoryService struct{ mock.Mock }

var _ InventoryService = (*MockInventoryService)(nil)

func (m *MockInventoryService) FindSkusAvailableToSell(ctx context.Context, scope string, culture language.Tag, skus []string) ([]string, error) {
	args := m.Called(ctx, scope, culture, skus)
	out, _ := args.Get(0).([]string)
	return out, args.Error(1)
}

type MockSearchService struct{ mock.Mock }

var _ SearchService = (*MockSearchService)(nil)

func (m *MockSearchService) Search(ctx context.Context, p *param.SearchParam) (*viewmodel.SearchViewModel, error) {
	args := m.Called(ctx, p)
	vm, _ := args.Get(0).(*viewmodel.SearchViewModel)
	return vm, args.Error(1)
}

type MockProductService struct{ mock.Mock }

var _ ProductService = (*MockProductService)(nil)

func (m *MockProductService) GetProduct(ctx context.Context, p *param.GetProductParam) (*viewmodel.ProductViewModel, error) {
	args := m.Called(ctx, p)
	vm, _ := args.Get(0).(*viewmodel.ProductViewModel)
	return vm, args.Error(1)
}

// =====================
// MembershipService
// =====================

type MockMembershipService struct{ mock.Mock }

var _ MembershipService = (*MockMembershipService)(nil)

func (m *MockMembershipService) Login(ctx context.Context, p *param.LoginParam, baseURL string) (*usecase.LoginResult, error) {
	args := m.Called(ctx, p, baseURL)
	out, _ := args.Get(0).(*usecase.LoginResult)
	return out, args.Error(1)
}

func (m *MockMembershipService) Register(ctx context.Context, p *param.CreateUserParam, baseURL string) (*usecase.RegisterResult, error) {
	args := m.Called(ctx, p, baseURL)
	out, _ := args.Get(0).(*usecase.RegisterResult)
	return out, args.Error(1)
}

func (m *MockMembershipService) ChangePassword(ctx context.Context, p *param.ChangePasswordParam, baseURL string) (*viewmodel.ChangePasswordViewModel, error) {
	args := m.Called(ctx, p, baseURL)
	out, _ := args.Get(0).(*viewmodel.ChangePasswordViewModel)
	return out, args.Error(1)
}

func (m *MockMembershipService) ResetPassword(ctx context.Context, p *param.ResetPasswordParam, baseURL string) (*viewmodel.ResetPasswordViewModel, error) {
	args := m.Called(ctx, p, baseURL)
	out, _ := args.Get(0).(*viewmodel.ResetPasswordViewModel)
	return out, args.Error(1)
}

func (m *MockMembershipService) ForgotPassword(ctx context.Context, p *param.ForgotPasswordParam) (*viewmodel.ForgotPasswordViewModel, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(*viewmodel.ForgotPasswordViewModel)
	return out, args.Error(1)
}

func (m *MockMembershipService) GetSignInHeader(ctx context.Context, p *param.GetSignInHeaderParam) (*viewmodel.SignInHeaderViewModel, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(*viewmodel.SignInHeaderViewModel)
	return out, args.Error(1)
}

func (m *MockMembershipService) LogoutReturnURL(returnURL, baseURL string, culture language.Tag) string {
	return m.Called(returnURL, baseURL, culture).String(0)
}

// 固定IDを返す
type fixedIDs struct{ id uuid.UUID }

func (f fixedIDs) NewID() uuid.UUID { return f.id }

// =====================
// WishListService / CountryService / OrderService
// =====================

type MockWishListService struct{ mock.Mock }

var _ WishListService = (*MockWishListService)(nil)

func (m *MockWishListService) GetWishList(ctx context.Context, p *param.GetCartParam) (*viewmodel.WishListViewModel, error) {
	args := m.Called(ctx, p)
	vm, _ := args.Get(0).(*viewmodel.WishListViewModel)
	return vm, args.Error(1)
}

func (m *MockWishListService) GuestWishList(culture language.Tag) *viewmodel.WishListViewModel {
	args := m.Called(culture)
	vm, _ := args.Get(0).(*viewmodel.WishListViewModel)
	return vm
}

func (m *MockWishListService) AddLineItem(ctx context.Context, p *param.AddLineItemParam) (*viewmodel.WishListViewModel, error) {
	args := m.Called(ctx, p)
	vm, _ := args.Get(0).(*viewmodel.WishListViewModel)
	return vm, args.Error(1)
}

func (m *MockWishListService) RemoveLineItem(ctx context.Context, p *param.RemoveLineItemParam) (*viewmodel.WishListViewModel, error) {
	args := m.Called(ctx, p)
	vm, _ := args.Get(0).(*viewmodel.WishListViewModel)
	return vm, args.Error(1)
}

type MockCountryService struct{ mock.Mock }

var _ CountryService = (*MockCountryService)(nil)

func (m *MockCountryService) RetrieveCountry(ctx context.Context, p *param.RetrieveCountryParam) (*viewmodel.CountryViewModel, error) {
	args := m.Called(ctx, p)
	vm, _ := args.Get(0).(*viewmodel.CountryViewModel)
	return vm, args.Error(1)
}

func (m *MockCountryService) RetrieveRegions(ctx context.Context, p *param.RetrieveCountryParam) ([]viewmodel.RegionViewModel, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).([]viewmodel.RegionViewModel)
	return out, args.Error(1)
}

func (m *MockCountryService) RetrieveRegionDisplayName(ctx context.Context, p *param.RetrieveRegionDisplayNameParam) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

type MockOrderService struct{ mock.Mock }

var _ OrderService = (*MockOrderService)(nil)

func (m *MockOrderService) CompleteCheckout(ctx context.Context, p *param.CompleteCheckoutParam) (*viewmodel.OrderViewModel, error) {
	args := m.Called(ctx, p)
	vm, _ := args.Get(0).(*viewmodel.OrderViewModel)
	return vm, args.Error(1)
}

func (m *MockOrderService) GetOrderHistory(ctx context.Context, p *param.GetCustomerOrdersParam) (*viewmodel.OrderHistoryViewModel, error) {
	args := m.Called(ctx, p)
	vm, _ := args.Get(0).(*viewmodel.OrderHistoryViewModel)
	return vm, args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, p *param.GetOrderParam) (*viewmodel.OrderViewModel, error) {
	args := m.Called(ctx, p)
	vm, _ := args.Get(0).(*viewmodel.OrderViewModel)
	return vm, args.Error(1)
}
