package requestctx

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

const ctxComposerKey = "composer_context"

// リクエストごとの利用者の状態
// CustomerID と IsGuest は composer cookie に保存される
type ComposerContext struct {
	Scope            string
	CultureInfo      language.Tag
	BaseURL          string
	CustomerID       uuid.UUID
	IsGuest          bool
	IsAuthenticated  bool
	Username         string
	// 認証チケットの会員ID（未認証なら uuid.Nil）
	TicketCustomerID uuid.UUID

	dirty bool
}

// SetCustomer は cookie の書き戻しが必要な変更
func (cc *ComposerContext) SetCustomer(id uuid.UUID, isGuest bool) {
	if cc.CustomerID == id && cc.IsGuest == isGuest {
		return
	}
	cc.CustomerID = id
	cc.IsGuest = isGuest
	cc.dirty = true
}

// SignOut は認証だけ外す
func (cc *ComposerContext) SignOut() {
	cc.IsAuthenticated = false
	cc.Username = ""
	cc.TicketCustomerID = uuid.Nil
}

func (cc *ComposerContext) Dirty() bool { return cc.dirty }

func (cc *ComposerContext) MarkClean() { cc.dirty = false }

func Set(c echo.Context, cc *ComposerContext) {
	c.Set(ctxComposerKey, cc)
}

// Get は middleware が入れたコンテキスト（無ければ nil）
func Get(c echo.Context) *ComposerContext {
	cc, _ := c.Get(ctxComposerKey).(*ComposerContext)
	return cc
}
