package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"composer/internal/dam"
	"composer/internal/domain/model"
	"composer/internal/factory"
	"composer/internal/localization"
	"composer/internal/param"
	"composer/internal/provider"
)

func newWishListViewService(cartRepo *MockCartRepository) *WishListViewService {
	loc := localization.NewProvider("CAD")
	rewards := factory.NewRewardViewModelFactory(loc)
	items := factory.NewLineItemViewModelFactory(loc, provider.NewProductURLProvider(), rewards, provider.NewLineItemValidationProvider())
	images := new(MockImageProvider)
	images.On("GetProductMainImages", mock.Anything, mock.Anything).Return([]dam.ProductMainImage{}, nil).Maybe()
	return NewWishListViewService(cartRepo, items, NewLineItemService(images, "M"), provider.NewMyAccountURLProvider(), nil)
}

func wishList(productIDs ...string) *model.Cart {
	cart := &model.Cart{Name: model.WishListCartName, CustomerID: testCustomerID, CurrencyCode: "CAD"}
	for _, id := range productIDs {
		cart.LineItems = append(cart.LineItems, model.LineItem{
			ID:           uuid.New(),
			ProductID:    id,
			ProductName:  id,
			Quantity:     1,
			CurrentPrice: decimal.NewNullDecimal(decimal.NewFromInt(20)),
			DefaultPrice: decimal.NewNullDecimal(decimal.NewFromInt(20)),
			Total:        decimal.NewNullDecimal(decimal.NewFromInt(20)),
		})
	}
	return cart
}

func addWishListParam(productID string) *param.AddLineItemParam {
	return &param.AddLineItemParam{
		Scope:       "Canada",
		CultureInfo: language.English,
		CustomerID:  testCustomerID,
		CartName:    model.WishListCartName,
		ProductID:   productID,
		Quantity:    3,
		BaseURL:     testBaseURL,
	}
}

// =====================
// GetWishList
// =====================

func TestWishListViewService_GetWishList_NoWorkflow(t *testing.T) {
	cartRepo := new(MockCartRepository)
	svc := newWishListViewService(cartRepo)
	ctx := context.Background()

	cartRepo.On("GetCart", ctx, mock.MatchedBy(func(g *param.GetCartParam) bool {
		return !g.ExecuteWorkflow && g.CartName == model.WishListCartName
	})).Return(wishList("P1", "P2"), nil).Once()

	vm, err := svc.GetWishList(ctx, &param.GetCartParam{
		Scope:           "Canada",
		CultureInfo:     language.English,
		CustomerID:      testCustomerID,
		CartName:        model.WishListCartName,
		BaseURL:         testBaseURL,
		ExecuteWorkflow: true,
	})
	require.NoError(t, err)
	assert.False(t, vm.IsEmpty)
	assert.Equal(t, 2, vm.TotalQuantity)
	assert.Len(t, vm.Items, 2)
	assert.Equal(t, "/en/my-account/sign-in", vm.SignInURL)
	cartRepo.AssertExpectations(t)
}

func TestWishListViewService_GetWishList_Empty(t *testing.T) {
	cartRepo := new(MockCartRepository)
	svc := newWishListViewService(cartRepo)
	ctx := context.Background()

	cartRepo.On("GetCart", ctx, mock.Anything).Return(wishList(), nil).Once()

	vm, err := svc.GetWishList(ctx, &param.GetCartParam{
		Scope:       "Canada",
		CultureInfo: language.English,
		CustomerID:  testCustomerID,
		CartName:    model.WishListCartName,
		BaseURL:     testBaseURL,
	})
	require.NoError(t, err)
	assert.True(t, vm.IsEmpty)
	assert.NotNil(t, vm.Items)
}

// =====================
// AddLineItem
// =====================

func TestWishListViewService_AddLineItem_QuantityIsOne(t *testing.T) {
	cartRepo := new(MockCartRepository)
	svc := newWishListViewService(cartRepo)
	ctx := context.Background()

	cartRepo.On("GetCart", ctx, mock.Anything).Return(wishList("P1"), nil).Once()
	cartRepo.On("AddLineItem", ctx, mock.MatchedBy(func(a *param.AddLineItemParam) bool {
		return a.ProductID == "P2" && a.Quantity == 1
	})).Return(wishList("P1", "P2"), nil).Once()

	vm, err := svc.AddLineItem(ctx, addWishListParam("P2"))
	require.NoError(t, err)
	assert.Len(t, vm.Items, 2)
	cartRepo.AssertExpectations(t)
}

func TestWishListViewService_AddLineItem_AlreadyPresent(t *testing.T) {
	cartRepo := new(MockCartRepository)
	svc := newWishListViewService(cartRepo)
	ctx := context.Background()

	cartRepo.On("GetCart", ctx, mock.Anything).Return(wishList("P1"), nil).Once()

	vm, err := svc.AddLineItem(ctx, addWishListParam("P1"))
	require.NoError(t, err)
	assert.Equal(t, 1, vm.TotalQuantity)
	cartRepo.AssertNotCalled(t, "AddLineItem", mock.Anything, mock.Anything)
}

func TestWishListViewService_AddLineItem_InvalidParam(t *testing.T) {
	cartRepo := new(MockCartRepository)
	svc := newWishListViewService(cartRepo)

	p := addWishListParam("")
	_, err := svc.AddLineItem(context.Background(), p)
	require.Error(t, err)
	assert.ErrorIs(t, err, param.ErrInvalidArgument)
	cartRepo.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
}

// =====================
// RemoveLineItem
// =====================

func TestWishListViewService_RemoveLineItem(t *testing.T) {
	cartRepo := new(MockCartRepository)
	svc := newWishListViewService(cartRepo)
	ctx := context.Background()

	id := uuid.New()
	cartRepo.On("RemoveLineItem", ctx, mock.MatchedBy(func(r *param.RemoveLineItemParam) bool {
		return r.LineItemID == id
	})).Return(wishList(), nil).Once()

	vm, err := svc.RemoveLineItem(ctx, &param.RemoveLineItemParam{
		Scope:       "Canada",
		CultureInfo: language.English,
		CustomerID:  testCustomerID,
		CartName:    model.WishListCartName,
		LineItemID:  id,
		BaseURL:     testBaseURL,
	})
	require.NoError(t, err)
	assert.True(t, vm.IsEmpty)
}

func TestWishListViewService_NilParams(t *testing.T) {
	svc := newWishListViewService(new(MockCartRepository))
	ctx := context.Background()

	_, err := svc.GetWishList(ctx, nil)
	assert.ErrorIs(t, err, param.ErrInvalidArgument)
	_, err = svc.AddLineItem(ctx, nil)
	assert.ErrorIs(t, err, param.ErrInvalidArgument)
	_, err = svc.RemoveLineItem(ctx, nil)
	assert.ErrorIs(t, err, param.ErrInvalidArgument)
}

func TestWishListViewService_GuestWishList(t *testing.T) {
	svc := newWishListViewService(new(MockCartRepository))

	vm := svc.GuestWishList(language.MustParse("fr-CA"))
	assert.True(t, vm.IsEmpty)
	assert.Empty(t, vm.Items)
	assert.Equal(t, "/fr/my-account/sign-in", vm.SignInURL)
}
