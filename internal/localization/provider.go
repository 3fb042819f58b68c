package localization

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

// 文字列取得のパラメータ
type GetLocalizedParam struct {
	Category    string
	Key         string
	CultureInfo language.Tag
}

// リソースと価格書式の提供
type Provider struct {
	catalog   *catalog.Builder
	matcher   language.Matcher
	supported []language.Tag
	keys      map[string]struct{}
	currency  currency.Unit
}

// DI
// defaultCurrency が不正なら CAD
func NewProvider(defaultCurrency string) *Provider {
	supported := []language.Tag{language.English, language.French}
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	keys := map[string]struct{}{}

	for category, entries := range resources {
		for key, byLang := range entries {
			id := messageKey(category, key)
			keys[id] = struct{}{}
			for tag, text := range byLang {
				// 登録済みの固定リソースなので失敗しない
				_ = b.SetString(tag, id, text)
			}
		}
	}

	unit, err := currency.ParseISO(defaultCurrency)
	if err != nil {
		unit = currency.CAD
	}

	return &Provider{
		catalog:   b,
		matcher:   language.NewMatcher(supported),
		supported: supported,
		keys:      keys,
		currency:  unit,
	}
}

func messageKey(category, key string) string {
	return category + "." + key
}

// 対応言語に寄せる（未対応は英語）
func (p *Provider) resolve(culture language.Tag) language.Tag {
	_, idx, conf := p.matcher.Match(culture)
	if conf == language.No {
		return p.supported[0]
	}
	return p.supported[idx]
}

// GetLocalizedString は書式化済みの文字列を返す
// 未登録のキーは空文字
func (p *Provider) GetLocalizedString(param GetLocalizedParam, args ...interface{}) string {
	id := messageKey(param.Category, param.Key)
	if _, ok := p.keys[id]; !ok {
		return ""
	}
	printer := message.NewPrinter(p.resolve(param.CultureInfo), message.Catalog(p.catalog))
	return printer.Sprintf(id, args...)
}

// FormatPrice は既定通貨で金額を書式化
func (p *Provider) FormatPrice(amount decimal.Decimal, culture language.Tag) string {
	return p.FormatPriceIn(amount, culture, "")
}

// FormatPriceIn は通貨コード指定で書式化（空なら既定通貨）
func (p *Provider) FormatPriceIn(amount decimal.Decimal, culture language.Tag, currencyCode string) string {
	unit := p.currency
	if currencyCode != "" {
		if u, err := currency.ParseISO(currencyCode); err == nil {
			unit = u
		}
	}

	scale, _ := currency.Standard.Rounding(unit)
	printer := message.NewPrinter(culture)

	value := amount.Round(int32(scale))
	num := printer.Sprint(number.Decimal(value.InexactFloat64(), number.Scale(scale)))
	sym := printer.Sprint(currency.Symbol(unit))

	// フランス語圏は後置
	if base, _ := culture.Base(); base.String() == "fr" {
		return strings.TrimSpace(num + " " + sym)
	}
	return sym + num
}
