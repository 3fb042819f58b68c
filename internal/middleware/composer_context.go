package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"composer/internal/auth"
	"composer/internal/requestctx"
)

// 既定のスコープと言語
type ContextDefaults struct {
	Scope     string
	Culture   language.Tag
	Supported []language.Tag
}

// ComposerContext は cookie と認証チケットから利用者の状態を作る
// ゲストIDが無ければ発行し、変更はレスポンス前に cookie へ書き戻す
func ComposerContext(cookies *ComposerCookieStore, tickets *AuthTicket, ids auth.IDGenerator, defaults ContextDefaults, logger *zap.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ids == nil {
		ids = auth.UUIDGenerator{}
	}
	supported := defaults.Supported
	if len(supported) == 0 {
		supported = []language.Tag{defaults.Culture}
	}
	matcher := language.NewMatcher(supported)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			dto := cookies.Read(req)

			cc := &requestctx.ComposerContext{
				Scope:       defaults.Scope,
				CultureInfo: resolveCulture(req.Header.Get("Accept-Language"), matcher, supported, defaults.Culture),
				BaseURL:     c.Scheme() + "://" + req.Host,
				CustomerID:  dto.CustomerID,
				IsGuest:     dto.Guest(),
			}
			if dto.Scope != "" {
				cc.Scope = dto.Scope
			}

			if ticket, err := tickets.Parse(req); err == nil {
				cc.IsAuthenticated = true
				cc.Username = ticket.Username
				cc.TicketCustomerID = ticket.CustomerID
			}

			if cc.CustomerID == uuid.Nil {
				cc.SetCustomer(ids.NewID(), true)
				logger.Debug("guest customer issued", zap.String("customerId", cc.CustomerID.String()))
			}

			c.Response().Before(func() {
				if !cc.Dirty() {
					return
				}
				guest := cc.IsGuest
				if err := cookies.Write(c, ComposerCookieDto{CustomerID: cc.CustomerID, IsGuest: &guest, Scope: cc.Scope}); err != nil {
					logger.Warn("composer cookie write failed", zap.Error(err))
				}
				cc.MarkClean()
			})

			requestctx.Set(c, cc)
			return next(c)
		}
	}
}

// Accept-Language を対応言語に寄せる（地域は要求どおり残す）
func resolveCulture(header string, matcher language.Matcher, supported []language.Tag, def language.Tag) language.Tag {
	if strings.TrimSpace(header) == "" {
		return def
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return def
	}
	base, _ := supported[idx].Base()
	for _, t := range tags {
		if b, _ := t.Base(); b == base {
			return t
		}
	}
	return supported[idx]
}
