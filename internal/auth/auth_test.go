package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================
// パスワード
// =====================

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := NewBcryptPasswordHasher(4)
	v := NewBcryptPasswordVerifier()

	hashed, err := h.Hash("CorrectPW")
	require.NoError(t, err)
	assert.NotEqual(t, "CorrectPW", hashed)

	assert.True(t, v.Verify("CorrectPW", hashed))
	assert.False(t, v.Verify("WrongPW", hashed))
}

func TestPasswordPolicy_Check(t *testing.T) {
	p := PasswordPolicy{MinLength: 6}

	assert.ErrorIs(t, p.Check("abc"), ErrPasswordTooShort)
	assert.ErrorIs(t, p.Check("Password"), ErrWeakPassword)
	assert.NoError(t, p.Check("s3cret!"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@test.com"))
	assert.ErrorIs(t, ValidateEmail("   "), ErrInvalidEmailFormat)
	assert.ErrorIs(t, ValidateEmail("not-an-email"), ErrInvalidEmailFormat)
}

// =====================
// トークン
// =====================

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken(32)
	require.NoError(t, err)
	b, err := GenerateSecureToken(32)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, HashToken(a), 64)

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}

// =====================
// 認証チケット
// =====================

func TestTicketIssuer_RoundTrip(t *testing.T) {
	issuer := NewTicketIssuer("test-secret", 30*time.Minute)
	id := uuid.New()
	now := time.Now()

	raw, exp, err := issuer.Issue("jdoe", id, true, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(30*time.Minute), exp, time.Second)

	ticket, err := issuer.Parse(raw, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "jdoe", ticket.Username)
	assert.Equal(t, id, ticket.CustomerID)
	assert.True(t, ticket.Persistent)
}

func TestTicketIssuer_Parse_Rejects(t *testing.T) {
	issuer := NewTicketIssuer("test-secret", time.Minute)
	other := NewTicketIssuer("other-secret", time.Minute)

	raw, _, err := other.Issue("jdoe", uuid.New(), false, time.Now())
	require.NoError(t, err)

	// 署名違い
	_, err = issuer.Parse(raw, time.Now())
	assert.ErrorIs(t, err, ErrInvalidTicket)

	// 期限切れ
	expired, _, err := issuer.Issue("jdoe", uuid.New(), false, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = issuer.Parse(expired, time.Now())
	assert.ErrorIs(t, err, ErrInvalidTicket)

	// 壊れた文字列
	_, err = issuer.Parse("garbage", time.Now())
	assert.ErrorIs(t, err, ErrInvalidTicket)
}
