package factory

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"composer/internal/domain/model"
	"composer/internal/localization"
	"composer/internal/provider"
)

// 文字列と価格書式
type Localizer interface {
	GetLocalizedString(p localization.GetLocalizedParam, args ...interface{}) string
	FormatPriceIn(amount decimal.Decimal, culture language.Tag, currencyCode string) string
}

type ProductURLProvider interface {
	GetProductURL(p provider.GetProductURLParam) string
}

type LineItemValidator interface {
	ValidateLineItem(cart *model.Cart, li model.LineItem) bool
}

var (
	_ Localizer          = (*localization.Provider)(nil)
	_ ProductURLProvider = (*provider.ProductURLProvider)(nil)
	_ LineItemValidator  = (*provider.LineItemValidationProvider)(nil)
)
