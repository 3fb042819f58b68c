package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
)

const ComposerCookieName = "composer"

// composer cookie の中身
// IsGuest が無いときはゲスト扱い
type ComposerCookieDto struct {
	CustomerID uuid.UUID `json:"customerId"`
	IsGuest    *bool     `json:"isGuest,omitempty"`
	Scope      string    `json:"scope,omitempty"`
}

func (d ComposerCookieDto) Guest() bool {
	return d.IsGuest == nil || *d.IsGuest
}

// 署名・暗号化した composer cookie
type ComposerCookieStore struct {
	codec  *securecookie.SecureCookie
	secure bool
	maxAge time.Duration
}

// DI
func NewComposerCookieStore(hashKey, blockKey []byte, secure bool, maxAge time.Duration) *ComposerCookieStore {
	codec := securecookie.New(hashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(int(maxAge.Seconds()))
	return &ComposerCookieStore{codec: codec, secure: secure, maxAge: maxAge}
}

// Read は改ざん・期限切れなら空を返す
func (s *ComposerCookieStore) Read(r *http.Request) ComposerCookieDto {
	ck, err := r.Cookie(ComposerCookieName)
	if err != nil {
		return ComposerCookieDto{}
	}
	var dto ComposerCookieDto
	if err := s.codec.Decode(ComposerCookieName, ck.Value, &dto); err != nil {
		return ComposerCookieDto{}
	}
	return dto
}

func (s *ComposerCookieStore) Write(c echo.Context, dto ComposerCookieDto) error {
	v, err := s.codec.Encode(ComposerCookieName, dto)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     ComposerCookieName,
		Value:    v,
		Path:     "/",
		Expires:  time.Now().Add(s.maxAge),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *ComposerCookieStore) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     ComposerCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
	})
}

// EncryptCustomerID は画面に渡す暗号化済みの会員ID
func (s *ComposerCookieStore) EncryptCustomerID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	v, err := s.codec.Encode("customerId", id.String())
	if err != nil {
		return ""
	}
	return v
}
