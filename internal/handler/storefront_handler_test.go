package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"composer/internal/param"
	"composer/internal/repository"
	"composer/internal/requestctx"
	"composer/internal/usecase"
	"composer/internal/viewmodel"
)

// =====================
// ウィッシュリスト
// =====================

func newWishListEcho(cc *requestctx.ComposerContext) (*echo.Echo, *MockWishListService) {
	wishLists := &MockWishListService{}
	e := newTestEcho(cc)
	NewWishListHandler(wishLists, "WishList").RegisterRoutes(e)
	return e, wishLists
}

func TestWishListHandler_Get_Member(t *testing.T) {
	e, wishLists := newWishListEcho(memberContext())
	wishLists.On("GetWishList", mock.Anything, mock.MatchedBy(func(p *param.GetCartParam) bool {
		return p.CartName == "WishList" && p.CustomerID == testCustomerID
	})).Return(&viewmodel.WishListViewModel{TotalQuantity: 2}, nil)

	rec := doJSON(e, http.MethodGet, "/api/wishlist", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var vm viewmodel.WishListViewModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))
	assert.Equal(t, 2, vm.TotalQuantity)
	wishLists.AssertExpectations(t)
}

func TestWishListHandler_Get_GuestSeesSignIn(t *testing.T) {
	e, wishLists := newWishListEcho(guestContext())
	wishLists.On("GuestWishList", guestContext().CultureInfo).
		Return(&viewmodel.WishListViewModel{IsEmpty: true, SignInURL: "/en/my-account/sign-in"})

	rec := doJSON(e, http.MethodGet, "/api/wishlist", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var vm viewmodel.WishListViewModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))
	assert.Equal(t, "/en/my-account/sign-in", vm.SignInURL)
	wishLists.AssertNotCalled(t, "GetWishList", mock.Anything, mock.Anything)
}

func TestWishListHandler_AddLineItem_RequiresAuthentication(t *testing.T) {
	e, wishLists := newWishListEcho(guestContext())

	rec := doJSON(e, http.MethodPost, "/api/wishlist/lineitem", `{"productId":"BIKE-ROAD"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	wishLists.AssertNotCalled(t, "AddLineItem", mock.Anything, mock.Anything)
}

func TestWishListHandler_AddLineItem(t *testing.T) {
	e, wishLists := newWishListEcho(memberContext())
	wishLists.On("AddLineItem", mock.Anything, mock.MatchedBy(func(p *param.AddLineItemParam) bool {
		return p.ProductID == "BIKE-ROAD" && p.VariantID == "BIKE-ROAD-54" && p.Quantity == 1 && p.CartName == "WishList"
	})).Return(&viewmodel.WishListViewModel{TotalQuantity: 1}, nil)

	rec := doJSON(e, http.MethodPost, "/api/wishlist/lineitem", `{"productId":"BIKE-ROAD","variantId":"BIKE-ROAD-54"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	wishLists.AssertExpectations(t)
}

func TestWishListHandler_AddLineItem_ValidatesBody(t *testing.T) {
	e, wishLists := newWishListEcho(memberContext())

	rec := doJSON(e, http.MethodPost, "/api/wishlist/lineitem", `{"productId":"  "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	wishLists.AssertNotCalled(t, "AddLineItem", mock.Anything, mock.Anything)
}

func TestWishListHandler_RemoveLineItem_InvalidID(t *testing.T) {
	e, _ := newWishListEcho(memberContext())

	rec := doJSON(e, http.MethodDelete, "/api/wishlist/lineitem", `{"lineItemId":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =====================
// 国・地域
// =====================

func newCountryEcho() (*echo.Echo, *MockCountryService) {
	countries := &MockCountryService{}
	e := newTestEcho(guestContext())
	NewCountryHandler(countries).RegisterRoutes(e)
	return e, countries
}

func TestCountryHandler_GetCountry(t *testing.T) {
	e, countries := newCountryEcho()
	countries.On("RetrieveCountry", mock.Anything, mock.MatchedBy(func(p *param.RetrieveCountryParam) bool {
		return p.IsoCode == "CA"
	})).Return(&viewmodel.CountryViewModel{IsoCode: "CA", CountryName: "Canada"}, nil)

	rec := doJSON(e, http.MethodGet, "/api/country/CA", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var vm viewmodel.CountryViewModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))
	assert.Equal(t, "Canada", vm.CountryName)
}

func TestCountryHandler_GetCountry_NotFound(t *testing.T) {
	e, countries := newCountryEcho()
	countries.On("RetrieveCountry", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)

	rec := doJSON(e, http.MethodGet, "/api/country/ZZ", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCountryHandler_GetRegions(t *testing.T) {
	e, countries := newCountryEcho()
	countries.On("RetrieveRegions", mock.Anything, mock.Anything).Return([]viewmodel.RegionViewModel{
		{IsoCode: "AB", Name: "Alberta"},
		{IsoCode: "QC", Name: "Quebec"},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/country/CA/regions", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out []viewmodel.RegionViewModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "AB", out[0].IsoCode)
}

func TestCountryHandler_GetRegionDisplayName(t *testing.T) {
	e, countries := newCountryEcho()
	countries.On("RetrieveRegionDisplayName", mock.Anything, mock.MatchedBy(func(p *param.RetrieveRegionDisplayNameParam) bool {
		return p.IsoCode == "CA" && p.RegionCode == "QC"
	})).Return("Quebec", nil)

	rec := doJSON(e, http.MethodGet, "/api/country/CA/regions/QC", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out RegionDisplayNameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, RegionDisplayNameResponse{IsoCode: "QC", Name: "Quebec"}, out)
}

// =====================
// 注文
// =====================

func newOrderEcho(cc *requestctx.ComposerContext) (*echo.Echo, *MockOrderService) {
	orders := &MockOrderService{}
	e := newTestEcho(cc)
	NewOrderHandler(orders, "Default").RegisterRoutes(e)
	return e, orders
}

func TestOrderHandler_Checkout_GuestWithIdempotencyKey(t *testing.T) {
	e, orders := newOrderEcho(guestContext())
	orders.On("CompleteCheckout", mock.Anything, mock.MatchedBy(func(p *param.CompleteCheckoutParam) bool {
		return p.CartName == "Default" && p.IdempotencyKey == "key-1" && p.CustomerID == testCustomerID
	})).Return(&viewmodel.OrderViewModel{OrderNumber: "20261014-1A2B3C4D"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/checkout", strings.NewReader(""))
	req.Header.Set("X-Idempotency-Key", "key-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var vm viewmodel.OrderViewModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))
	assert.Equal(t, "20261014-1A2B3C4D", vm.OrderNumber)
	orders.AssertExpectations(t)
}

func TestOrderHandler_Checkout_EmptyCart(t *testing.T) {
	e, orders := newOrderEcho(guestContext())
	orders.On("CompleteCheckout", mock.Anything, mock.Anything).
		Return(nil, usecase.NewHTTPError(http.StatusBadRequest, "Your cart is empty."))

	rec := doJSON(e, http.MethodPost, "/api/cart/checkout", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Your cart is empty.", decodeError(t, rec).Error)
}

func TestOrderHandler_History_RequiresAuthentication(t *testing.T) {
	e, orders := newOrderEcho(guestContext())

	rec := doJSON(e, http.MethodGet, "/api/order", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	orders.AssertNotCalled(t, "GetOrderHistory", mock.Anything, mock.Anything)
}

func TestOrderHandler_History_Paging(t *testing.T) {
	e, orders := newOrderEcho(memberContext())
	orders.On("GetOrderHistory", mock.Anything, mock.MatchedBy(func(p *param.GetCustomerOrdersParam) bool {
		return p.Page == 2 && p.PageSize == 10
	})).Return(&viewmodel.OrderHistoryViewModel{Page: 2, PageSize: 10, TotalCount: 11, TotalPages: 2}, nil)

	rec := doJSON(e, http.MethodGet, "/api/order?page=2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	orders.AssertExpectations(t)
}

func TestOrderHandler_History_InvalidPage(t *testing.T) {
	e, _ := newOrderEcho(memberContext())

	rec := doJSON(e, http.MethodGet, "/api/order?page=x", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_Detail_NotFound(t *testing.T) {
	e, orders := newOrderEcho(memberContext())
	orders.On("GetOrder", mock.Anything, mock.MatchedBy(func(p *param.GetOrderParam) bool {
		return p.OrderNumber == "20261014-FFFFFFFF"
	})).Return(nil, usecase.NewHTTPError(http.StatusNotFound, "not found"))

	rec := doJSON(e, http.MethodGet, "/api/order/20261014-FFFFFFFF", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
