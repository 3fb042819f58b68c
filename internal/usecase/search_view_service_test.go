package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"composer/internal/dam"
	"composer/internal/domain/model"
	"composer/internal/localization"
	"composer/internal/overture"
	"composer/internal/param"
	"composer/internal/provider"
	"composer/internal/search"
	"composer/internal/viewmodel"
)

func newSearchService(products *MockProductRepository, images *MockImageProvider) *SearchViewService {
	loc := localization.NewProvider("CAD")
	settings := []search.FacetSetting{
		{FieldName: "Price", FacetType: viewmodel.FacetTypeRange, FacetValueType: search.FacetValueTypeCurrency},
		{FieldName: "Brand", FacetType: viewmodel.FacetTypeSingle, FacetValueType: search.FacetValueTypeText},
	}
	providers := map[viewmodel.FacetType]search.SelectedFacetProvider{
		viewmodel.FacetTypeRange:  search.NewRangeSelectedFacetProvider(search.NewFacetLocalizationProvider(loc)),
		viewmodel.FacetTypeSingle: search.NewSingleSelectedFacetProvider(),
	}
	return NewSearchViewService(products, images, provider.NewProductURLProvider(), loc, settings, providers, nil)
}

func searchParam(filters ...param.SearchFilter) *param.SearchParam {
	return &param.SearchParam{
		Scope:       "Canada",
		CultureInfo: language.English,
		Keywords:    "bike",
		Page:        1,
		PageSize:    2,
		Filters:     filters,
		BaseURL:     testBaseURL,
	}
}

// =====================
// Search
// =====================

func TestSearchViewService_Search_PriceFacetBecomesRange(t *testing.T) {
	products := new(MockProductRepository)
	images := new(MockImageProvider)
	svc := newSearchService(products, images)
	ctx := context.Background()

	products.On("SearchProducts", ctx, mock.MatchedBy(func(q *param.SearchProductsParam) bool {
		return q.MinPrice.Valid && q.MinPrice.Decimal.Equal(decimal.NewFromInt(10)) &&
			q.MaxPrice.Valid && q.MaxPrice.Decimal.Equal(decimal.NewFromInt(50)) &&
			q.Keywords == "bike"
	})).Return([]model.Product{
		{ID: "P1", DisplayName: "Road Bike", Sku: "RB", ListPrice: decimal.NewFromInt(40), SalePrice: decimal.NewNullDecimal(decimal.NewFromInt(30))},
		{ID: "P2", DisplayName: "City Bike", Sku: "CB", ListPrice: decimal.NewFromInt(45)},
	}, int64(3), nil).Once()
	images.On("GetProductMainImages", ctx, mock.Anything).
		Return([]dam.ProductMainImage{{ProductID: "P1", ImageURL: "https://img/p1.jpg"}}, nil).Once()

	vm, err := svc.Search(ctx, searchParam(
		param.SearchFilter{Name: "price", Value: "10|50"},
		param.SearchFilter{Name: "Brand", Value: "Acme"},
	))
	require.NoError(t, err)

	require.Len(t, vm.SelectedFacets, 2)
	assert.Equal(t, viewmodel.FacetTypeRange, vm.SelectedFacets[0].FacetType)
	assert.Equal(t, "Acme", vm.SelectedFacets[1].Value)

	require.Len(t, vm.Products, 2)
	assert.True(t, vm.Products[0].IsOnSale)
	assert.False(t, vm.Products[1].IsOnSale)
	assert.Equal(t, "https://img/p1.jpg", vm.Products[0].ImageURL)
	assert.Empty(t, vm.Products[1].ImageURL)
	assert.Equal(t, "/en/p-road-bike/P1", vm.Products[0].ProductURL)
	assert.Equal(t, 2, vm.TotalPages)
	products.AssertExpectations(t)
}

func TestSearchViewService_Search_UnknownFacetIgnored(t *testing.T) {
	products := new(MockProductRepository)
	images := new(MockImageProvider)
	svc := newSearchService(products, images)
	ctx := context.Background()

	products.On("SearchProducts", ctx, mock.MatchedBy(func(q *param.SearchProductsParam) bool {
		return !q.MinPrice.Valid && !q.MaxPrice.Valid
	})).Return([]model.Product{}, int64(0), nil).Once()
	images.On("GetProductMainImages", ctx, mock.Anything).Return([]dam.ProductMainImage{}, nil).Once()

	vm, err := svc.Search(ctx, searchParam(param.SearchFilter{Name: "color", Value: "red"}))
	require.NoError(t, err)
	assert.Empty(t, vm.SelectedFacets)
	assert.Equal(t, 0, vm.TotalPages)
}

func TestSearchViewService_Search_InvalidParam(t *testing.T) {
	products := new(MockProductRepository)
	svc := newSearchService(products, new(MockImageProvider))

	p := searchParam()
	p.PageSize = 0
	_, err := svc.Search(context.Background(), p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "param.PageSize")
	products.AssertNotCalled(t, "SearchProducts", mock.Anything, mock.Anything)
}

func TestSearchViewService_Search_PageSizeAboveLimit(t *testing.T) {
	products := new(MockProductRepository)
	svc := newSearchService(products, new(MockImageProvider))

	p := searchParam()
	p.PageSize = overture.MaxSearchPageSize + 1
	_, err := svc.Search(context.Background(), p)

	var ae *param.ArgumentError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "param.PageSize", ae.ParamName)
	products.AssertNotCalled(t, "SearchProducts", mock.Anything, mock.Anything)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 20))
	assert.Equal(t, 1, totalPages(1, 20))
	assert.Equal(t, 1, totalPages(20, 20))
	assert.Equal(t, 2, totalPages(21, 20))
	assert.Equal(t, 3, totalPages(250, overture.MaxSearchPageSize))
	assert.Equal(t, 0, totalPages(10, 0))
}
