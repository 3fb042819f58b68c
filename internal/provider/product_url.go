package provider

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type GetProductURLParam struct {
	CultureInfo language.Tag
	ProductID   string
	VariantID   string
	ProductName string
}

// 商品ページのURL
// /{lang}/p-{slug}/{productId}[?variantId=...]
type ProductURLProvider struct{}

func NewProductURLProvider() *ProductURLProvider {
	return &ProductURLProvider{}
}

func (p *ProductURLProvider) GetProductURL(param GetProductURLParam) string {
	if param.ProductID == "" {
		return ""
	}

	path := "/" + languageSegment(param.CultureInfo)
	if slug := Slugify(param.ProductName); slug != "" {
		path += "/p-" + slug
	} else {
		path += "/p"
	}
	path += "/" + url.PathEscape(param.ProductID)

	if param.VariantID != "" {
		path += "?" + url.Values{"variantId": {param.VariantID}}.Encode()
	}
	return path
}

// Slugify はアクセントを落として小文字・ハイフン区切りにする
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func languageSegment(tag language.Tag) string {
	if tag == language.Und {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}
