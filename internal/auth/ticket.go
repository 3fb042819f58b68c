package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var ErrInvalidTicket = errors.New("invalid auth ticket")

// 認証チケットの中身
type Ticket struct {
	Username   string
	CustomerID uuid.UUID
	Persistent bool
	ExpiresAt  time.Time
}

type ticketClaims struct {
	Username   string `json:"name"`
	Persistent bool   `json:"persistent"`
	jwt.RegisteredClaims
}

// HS256で署名した認証チケットを発行・検証する
type TicketIssuer struct {
	secret []byte
	ttl    time.Duration
}

// DI
func NewTicketIssuer(secret string, ttl time.Duration) *TicketIssuer {
	return &TicketIssuer{secret: []byte(secret), ttl: ttl}
}

func (t *TicketIssuer) TTL() time.Duration { return t.ttl }

func (t *TicketIssuer) Issue(username string, customerID uuid.UUID, persistent bool, now time.Time) (string, time.Time, error) {
	exp := now.Add(t.ttl)
	claims := ticketClaims{
		Username:   username,
		Persistent: persistent,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   customerID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse は署名と now 時点の期限を確認する
func (t *TicketIssuer) Parse(raw string, now time.Time) (*Ticket, error) {
	var claims ticketClaims
	parser := jwt.Parser{SkipClaimsValidation: true}
	token, err := parser.ParseWithClaims(raw, &claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, ErrInvalidTicket
	}
	if !claims.VerifyExpiresAt(now, true) {
		return nil, ErrInvalidTicket
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil || id == uuid.Nil || claims.Username == "" {
		return nil, ErrInvalidTicket
	}

	return &Ticket{
		Username:   claims.Username,
		CustomerID: id,
		Persistent: claims.Persistent,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}
