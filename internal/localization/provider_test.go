package localization

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

// =====================
// GetLocalizedString
// =====================

func TestGetLocalizedString_FormatsArgs(t *testing.T) {
	p := NewProvider("CAD")

	got := p.GetLocalizedString(GetLocalizedParam{
		Category:    "ShoppingCart",
		Key:         "F_PromoCodeSucces",
		CultureInfo: language.MustParse("en-CA"),
	}, "SAVE10")

	assert.Equal(t, "The promo code SAVE10 has been applied to your cart.", got)
}

func TestGetLocalizedString_RegionalFallsBackToLanguage(t *testing.T) {
	p := NewProvider("CAD")

	got := p.GetLocalizedString(GetLocalizedParam{
		Category:    "ShoppingCart",
		Key:         "F_InvalidCoupon",
		CultureInfo: language.MustParse("fr-CA"),
	}, "BAD")

	assert.Equal(t, "Le code promotionnel BAD n'est pas valide pour votre panier.", got)
}

func TestGetLocalizedString_UnsupportedCultureUsesEnglish(t *testing.T) {
	p := NewProvider("CAD")

	got := p.GetLocalizedString(GetLocalizedParam{
		Category:    "ShoppingCart",
		Key:         "L_Free",
		CultureInfo: language.Japanese,
	})

	assert.Equal(t, "Free", got)
}

func TestGetLocalizedString_UnknownKeyIsEmpty(t *testing.T) {
	p := NewProvider("CAD")

	got := p.GetLocalizedString(GetLocalizedParam{Category: "ShoppingCart", Key: "Nope", CultureInfo: language.English})
	assert.Equal(t, "", got)
}

// =====================
// FormatPrice
// =====================

func TestFormatPrice(t *testing.T) {
	p := NewProvider("CAD")

	en := p.FormatPrice(decimal.RequireFromString("12.5"), language.MustParse("en-CA"))
	assert.Contains(t, en, "12.50")

	fr := p.FormatPrice(decimal.RequireFromString("12.5"), language.MustParse("fr-CA"))
	assert.Contains(t, fr, "12,50")
}

func TestFormatPriceIn_ZeroDecimalCurrency(t *testing.T) {
	p := NewProvider("CAD")

	got := p.FormatPriceIn(decimal.RequireFromString("1200.4"), language.English, "JPY")
	assert.Contains(t, got, "1,200")
	assert.NotContains(t, got, ".4")
}
