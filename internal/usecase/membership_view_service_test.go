package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"composer/internal/domain/model"
	"composer/internal/overture"
	"composer/internal/param"
	"composer/internal/provider"
	"composer/internal/viewmodel"
)

type membershipFixture struct {
	membership *MockMembershipRepository
	customers  *MockCustomerRepository
	carts      *MockCartRepository
	orders     *MockOrderRepository
	svc        *MembershipViewService
}

func newMembershipFixture() membershipFixture {
	m := new(MockMembershipRepository)
	c := new(MockCustomerRepository)
	carts := new(MockCartRepository)
	orders := new(MockOrderRepository)
	// ゲストの注文なし
	orders.On("GetCustomerOrders", mock.Anything, mock.Anything).Return(&model.OrderQueryResult{}, nil).Maybe()
	svc := NewMembershipViewService(m, c, carts, orders, provider.NewMyAccountURLProvider(), "", 8, nil)
	return membershipFixture{membership: m, customers: c, carts: carts, orders: orders, svc: svc}
}

func activeCustomer() *model.Customer {
	return &model.Customer{
		ID:        testCustomerID,
		ScopeID:   "Canada",
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Status:    model.AccountStatusActive,
	}
}

func loginParam(guest uuid.UUID) *param.LoginParam {
	return &param.LoginParam{
		Scope:           "Canada",
		CultureInfo:     language.English,
		Username:        "jdoe",
		Password:        "secret123",
		ReturnURL:       "/en/cart",
		GuestCustomerID: guest,
	}
}

// =====================
// Login
// =====================

func TestMembershipViewService_Login_SuccessMergesGuestCart(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()

	guest := uuid.New()
	p := loginParam(guest)
	f.membership.On("Login", ctx, p).Return(activeCustomer(), nil).Once()
	f.carts.On("MergeCart", ctx, &param.MergeCartParam{
		Scope:           "Canada",
		CartName:        model.DefaultCartName,
		GuestCustomerID: guest,
		CustomerID:      testCustomerID,
	}).Return(&model.Cart{}, nil).Once()

	res, err := f.svc.Login(ctx, p, testBaseURL)
	require.NoError(t, err)
	assert.True(t, res.ViewModel.IsSuccess)
	assert.Equal(t, viewmodel.MyAccountStatusSuccess, res.ViewModel.Status)
	assert.Equal(t, "Jane", res.ViewModel.FirstName)
	assert.Equal(t, "/en/cart", res.ViewModel.ReturnURL)
	assert.Equal(t, testCustomerID, res.Customer.ID)
	f.carts.AssertExpectations(t)
}

func TestMembershipViewService_Login_MergeFailureDoesNotFail(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()

	p := loginParam(uuid.New())
	f.membership.On("Login", ctx, p).Return(activeCustomer(), nil).Once()
	f.carts.On("MergeCart", ctx, mock.Anything).Return(nil, errors.New("merge down")).Once()

	res, err := f.svc.Login(ctx, p, testBaseURL)
	require.NoError(t, err)
	assert.True(t, res.ViewModel.IsSuccess)
}

func TestMembershipViewService_Login_ReassignsGuestOrders(t *testing.T) {
	f := newMembershipFixture()
	f.orders.ExpectedCalls = nil
	ctx := context.Background()

	guest := uuid.New()
	p := loginParam(guest)
	f.membership.On("Login", ctx, p).Return(activeCustomer(), nil).Once()
	f.carts.On("MergeCart", ctx, mock.Anything).Return(&model.Cart{}, nil).Once()
	f.orders.On("GetCustomerOrders", ctx, mock.MatchedBy(func(g *param.GetCustomerOrdersParam) bool {
		return g.CustomerID == guest && g.Scope == "Canada" && g.PageSize == overture.MaxOrderPageSize
	})).Return(&model.OrderQueryResult{
		Orders:     []model.Order{{OrderNumber: "20261014-1A2B3C4D"}, {OrderNumber: "20261014-5E6F7A8B"}},
		TotalCount: 2,
	}, nil).Once()
	f.orders.On("UpdateOrderCustomer", ctx, &param.UpdateOrderCustomerParam{
		Scope:       "Canada",
		OrderNumber: "20261014-1A2B3C4D",
		CustomerID:  testCustomerID,
	}).Return(&model.Order{}, nil).Once()
	// 1件失敗してもログインは成功
	f.orders.On("UpdateOrderCustomer", ctx, &param.UpdateOrderCustomerParam{
		Scope:       "Canada",
		OrderNumber: "20261014-5E6F7A8B",
		CustomerID:  testCustomerID,
	}).Return(nil, errors.New("db down")).Once()

	res, err := f.svc.Login(ctx, p, testBaseURL)
	require.NoError(t, err)
	assert.True(t, res.ViewModel.IsSuccess)
	f.orders.AssertExpectations(t)
}

func TestMembershipViewService_Login_NoGuestSkipsMerge(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()

	p := loginParam(uuid.Nil)
	f.membership.On("Login", ctx, p).Return(activeCustomer(), nil).Once()

	_, err := f.svc.Login(ctx, p, testBaseURL)
	require.NoError(t, err)
	f.carts.AssertNotCalled(t, "MergeCart", mock.Anything, mock.Anything)
	f.orders.AssertNotCalled(t, "UpdateOrderCustomer", mock.Anything, mock.Anything)
}

func TestMembershipViewService_Login_BusinessFailures(t *testing.T) {
	cases := []struct {
		code string
		want viewmodel.MyAccountStatus
	}{
		{overture.CodeInvalidCredentials, viewmodel.MyAccountStatusFailed},
		{overture.CodeRequiresApproval, viewmodel.MyAccountStatusRequiresApproval},
		{overture.CodeInactiveAccount, viewmodel.MyAccountStatusInactiveAccount},
		{overture.CodeUserRejected, viewmodel.MyAccountStatusUserRejected},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			f := newMembershipFixture()
			ctx := context.Background()

			p := loginParam(uuid.New())
			f.membership.On("Login", ctx, p).Return(nil, overture.NewError(tc.code, "")).Once()

			res, err := f.svc.Login(ctx, p, testBaseURL)
			require.NoError(t, err)
			assert.False(t, res.ViewModel.IsSuccess)
			assert.Equal(t, tc.want, res.ViewModel.Status)
			assert.Nil(t, res.Customer)
			f.carts.AssertNotCalled(t, "MergeCart", mock.Anything, mock.Anything)
		})
	}
}

func TestMembershipViewService_Login_TechnicalErrorPropagates(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()

	boom := errors.New("connection refused")
	p := loginParam(uuid.Nil)
	f.membership.On("Login", ctx, p).Return(nil, boom).Once()

	res, err := f.svc.Login(ctx, p, testBaseURL)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
}

func TestMembershipViewService_Login_ExternalReturnURL(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()

	p := loginParam(uuid.Nil)
	p.ReturnURL = "https://evil.example.org/steal"
	f.membership.On("Login", ctx, p).Return(activeCustomer(), nil).Once()

	res, err := f.svc.Login(ctx, p, testBaseURL)
	require.NoError(t, err)
	assert.Equal(t, "/en/my-account", res.ViewModel.ReturnURL)
}

// =====================
// Register
// =====================

func TestMembershipViewService_Register_RequiresApproval(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()

	c := activeCustomer()
	c.Status = model.AccountStatusRequiresApproval
	p := &param.CreateUserParam{
		Scope:           "Canada",
		CultureInfo:     language.English,
		Email:           c.Email,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Password:        "secret123",
		GuestCustomerID: uuid.New(),
	}
	f.membership.On("CreateUser", ctx, p).Return(c, nil).Once()

	res, err := f.svc.Register(ctx, p, testBaseURL)
	require.NoError(t, err)
	assert.True(t, res.ViewModel.IsSuccess)
	assert.Equal(t, viewmodel.MyAccountStatusRequiresApproval, res.ViewModel.Status)
	assert.Equal(t, 8, res.ViewModel.MinRequiredPasswordLength)
	f.carts.AssertNotCalled(t, "MergeCart", mock.Anything, mock.Anything)
}

func TestMembershipViewService_Register_Duplicate(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()

	p := &param.CreateUserParam{Scope: "Canada", CultureInfo: language.English, Email: "x@example.com"}
	f.membership.On("CreateUser", ctx, p).Return(nil, overture.NewError(overture.CodeDuplicateEmail, "taken")).Once()

	res, err := f.svc.Register(ctx, p, testBaseURL)
	require.NoError(t, err)
	assert.False(t, res.ViewModel.IsSuccess)
	assert.Equal(t, viewmodel.MyAccountStatusDuplicateEmail, res.ViewModel.Status)
}

// =====================
// Password
// =====================

func TestMembershipViewService_ResetPassword_InvalidTicket(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()

	p := &param.ResetPasswordParam{Scope: "Canada", CultureInfo: language.English, Ticket: "t", NewPassword: "n"}
	f.membership.On("ResetPassword", ctx, p).Return(nil, overture.NewError(overture.CodeInvalidTicket, "")).Once()

	vm, err := f.svc.ResetPassword(ctx, p, testBaseURL)
	require.NoError(t, err)
	assert.False(t, vm.IsSuccess)
	assert.Equal(t, viewmodel.MyAccountStatusInvalidTicket, vm.Status)
}

func TestMembershipViewService_ForgotPassword(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()

	p := &param.ForgotPasswordParam{Scope: "Canada", CultureInfo: language.English, Email: "jdoe@example.com"}
	f.membership.On("ForgotPassword", ctx, p).Return(nil).Once()

	vm, err := f.svc.ForgotPassword(ctx, p)
	require.NoError(t, err)
	assert.True(t, vm.IsSuccess)
	assert.Equal(t, "jdoe@example.com", vm.EmailSentTo)
}

func TestMembershipViewService_NilParams(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()

	_, err := f.svc.Login(ctx, nil, testBaseURL)
	assert.ErrorIs(t, err, param.ErrInvalidArgument)
	_, err = f.svc.Register(ctx, nil, testBaseURL)
	assert.ErrorIs(t, err, param.ErrInvalidArgument)
	_, err = f.svc.ChangePassword(ctx, nil, testBaseURL)
	assert.ErrorIs(t, err, param.ErrInvalidArgument)
	_, err = f.svc.ForgotPassword(ctx, nil)
	assert.ErrorIs(t, err, param.ErrInvalidArgument)
}

// =====================
// SignInHeader / ReturnURL
// =====================

func TestMembershipViewService_GetSignInHeader(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()

	anon, err := f.svc.GetSignInHeader(ctx, &param.GetSignInHeaderParam{
		Scope:       "Canada",
		CultureInfo: language.French,
	})
	require.NoError(t, err)
	assert.False(t, anon.IsLoggedIn)
	assert.Equal(t, "/fr/my-account/sign-in", anon.URL)

	f.customers.On("GetCustomerByID", ctx, mock.Anything).Return(activeCustomer(), nil).Once()
	in, err := f.svc.GetSignInHeader(ctx, &param.GetSignInHeaderParam{
		Scope:           "Canada",
		CultureInfo:     language.English,
		CustomerID:      testCustomerID,
		IsAuthenticated: true,
	})
	require.NoError(t, err)
	assert.True(t, in.IsLoggedIn)
	assert.Equal(t, "Jane", in.FirstName)
	assert.Equal(t, "/en/my-account", in.URL)
}

func TestMembershipViewService_LogoutReturnURL(t *testing.T) {
	f := newMembershipFixture()

	assert.Equal(t, "/en/cart", f.svc.LogoutReturnURL("/en/cart", testBaseURL, language.English))
	assert.Equal(t, "/en/my-account/sign-in", f.svc.LogoutReturnURL("", testBaseURL, language.English))
	assert.Equal(t, "/en/my-account/sign-in", f.svc.LogoutReturnURL("//evil.example.org", testBaseURL, language.English))
}
