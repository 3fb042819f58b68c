package search

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"composer/internal/localization"
)

type Localizer interface {
	GetLocalizedString(p localization.GetLocalizedParam, args ...interface{}) string
	FormatPrice(amount decimal.Decimal, culture language.Tag) string
}

// 範囲ファセットの表示名を作る
type FacetLocalizationProvider struct {
	localizer Localizer
}

// DI
func NewFacetLocalizationProvider(localizer Localizer) *FacetLocalizationProvider {
	return &FacetLocalizationProvider{localizer: localizer}
}

var _ RangeFormatter = (*FacetLocalizationProvider)(nil)

func (p *FacetLocalizationProvider) GetFormattedRangeFacetValues(_ string, minValue, maxValue string, valueType FacetValueType, culture language.Tag) string {
	minText := p.formatValue(minValue, valueType, culture)
	if maxValue == "" {
		return p.localizer.GetLocalizedString(localization.GetLocalizedParam{
			Category: "List-Search", Key: "F_PriceFrom", CultureInfo: culture,
		}, minText)
	}
	return p.localizer.GetLocalizedString(localization.GetLocalizedParam{
		Category: "List-Search", Key: "F_PriceRange", CultureInfo: culture,
	}, minText, p.formatValue(maxValue, valueType, culture))
}

func (p *FacetLocalizationProvider) formatValue(v string, valueType FacetValueType, culture language.Tag) string {
	if valueType != FacetValueTypeCurrency {
		return v
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return v
	}
	return p.localizer.FormatPrice(d, culture)
}
