package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"composer/internal/dam"
	"composer/internal/factory"
	"composer/internal/localization"
	"composer/internal/provider"
	"composer/internal/viewmodel"
)

// 文字列と価格書式
type Localizer interface {
	GetLocalizedString(p localization.GetLocalizedParam, args ...interface{}) string
	FormatPrice(amount decimal.Decimal, culture language.Tag) string
}

type ImageProvider interface {
	GetProductMainImages(ctx context.Context, p dam.GetProductMainImagesParam) ([]dam.ProductMainImage, error)
}

type CartViewModelFactory interface {
	CreateCartViewModel(p factory.CreateCartViewModelParam) *viewmodel.CartViewModel
}

type InventoryLocationProvider interface {
	GetDefaultInventoryLocationID(ctx context.Context, scope string) (string, error)
}

var (
	_ Localizer                 = (*localization.Provider)(nil)
	_ ImageProvider             = (*dam.ConventionBasedProvider)(nil)
	_ CartViewModelFactory      = (*factory.CartViewModelFactory)(nil)
	_ MyAccountURLProvider      = (*provider.MyAccountURLProvider)(nil)
	_ InventoryLocationProvider = (*provider.InventoryLocationProvider)(nil)
)

type MyAccountURLProvider interface {
	GetMyAccountURL(culture language.Tag) string
	GetLoginURL(culture language.Tag) string
	GetCreateAccountURL(culture language.Tag) string
	GetForgotPasswordURL(culture language.Tag) string
}
