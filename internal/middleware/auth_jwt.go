package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"composer/internal/auth"
)

var ErrInvalidTicket = auth.ErrInvalidTicket

type AuthTicketOptions struct {
	Secret     string
	CookieName string
	// remember-me 時の有効期間（通常はセッションcookie）
	Timeout time.Duration
	Secure  bool
}

// 認証チケットを cookie で受け渡す
type AuthTicket struct {
	issuer     *auth.TicketIssuer
	cookieName string
	secure     bool
	clock      auth.Clock
}

// DI
func NewAuthTicket(opts AuthTicketOptions, clock auth.Clock) *AuthTicket {
	if opts.CookieName == "" {
		opts.CookieName = "composer_auth"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 14 * 24 * time.Hour
	}
	if clock == nil {
		clock = auth.SystemClock{}
	}
	return &AuthTicket{
		issuer:     auth.NewTicketIssuer(opts.Secret, opts.Timeout),
		cookieName: opts.CookieName,
		secure:     opts.Secure,
		clock:      clock,
	}
}

// Issue はチケットを発行して cookie に書く
func (t *AuthTicket) Issue(c echo.Context, username string, customerID uuid.UUID, persistent bool) error {
	signed, exp, err := t.issuer.Issue(username, customerID, persistent, t.clock.Now())
	if err != nil {
		return err
	}

	ck := &http.Cookie{
		Name:     t.cookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if persistent {
		ck.Expires = exp
	}
	c.SetCookie(ck)
	return nil
}

func (t *AuthTicket) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     t.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   t.secure,
	})
}

// Parse は cookie のチケットを検証する（無ければ http.ErrNoCookie）
func (t *AuthTicket) Parse(r *http.Request) (*auth.Ticket, error) {
	ck, err := r.Cookie(t.cookieName)
	if err != nil {
		return nil, err
	}
	raw := strings.TrimSpace(ck.Value)
	if raw == "" {
		return nil, http.ErrNoCookie
	}
	return t.issuer.Parse(raw, t.clock.Now())
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
