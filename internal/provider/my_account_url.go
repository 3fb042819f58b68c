package provider

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// マイアカウント関連のURL
type MyAccountURLProvider struct{}

func NewMyAccountURLProvider() *MyAccountURLProvider {
	return &MyAccountURLProvider{}
}

func (p *MyAccountURLProvider) GetMyAccountURL(culture language.Tag) string {
	return "/" + languageSegment(culture) + "/my-account"
}

func (p *MyAccountURLProvider) GetLoginURL(culture language.Tag) string {
	return p.GetMyAccountURL(culture) + "/sign-in"
}

func (p *MyAccountURLProvider) GetCreateAccountURL(culture language.Tag) string {
	return p.GetMyAccountURL(culture) + "/create-account"
}

func (p *MyAccountURLProvider) GetForgotPasswordURL(culture language.Tag) string {
	return p.GetMyAccountURL(culture) + "/forgot-password"
}

func (p *MyAccountURLProvider) GetChangePasswordURL(culture language.Tag) string {
	return p.GetMyAccountURL(culture) + "/change-password"
}

func (p *MyAccountURLProvider) GetOrderHistoryURL(culture language.Tag) string {
	return p.GetMyAccountURL(culture) + "/order-history"
}

// 注文番号はパスとしてエスケープする
func (p *MyAccountURLProvider) GetOrderDetailURL(culture language.Tag, orderNumber string) string {
	return p.GetOrderHistoryURL(culture) + "/" + url.PathEscape(orderNumber)
}

func (p *MyAccountURLProvider) GetWishListURL(culture language.Tag) string {
	return p.GetMyAccountURL(culture) + "/wish-list"
}

// IsSameHost は returnUrl が baseUrl と同一ホスト（または相対パス）か
func IsSameHost(returnURL, baseURL string) bool {
	if strings.TrimSpace(returnURL) == "" {
		return false
	}
	// ブラウザは制御文字を捨て、\ を / として扱う
	if strings.IndexFunc(returnURL, unicode.IsControl) >= 0 {
		return false
	}
	normalized := strings.ReplaceAll(returnURL, `\`, "/")
	ru, err := url.Parse(normalized)
	if err != nil {
		return false
	}
	// オープンリダイレクト対策（//evil.com, /\evil.com）
	if !ru.IsAbs() {
		return ru.Host == "" && strings.HasPrefix(ru.Path, "/") && !strings.HasPrefix(normalized, "//")
	}
	bu, err := url.Parse(baseURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(ru.Host, bu.Host)
}
