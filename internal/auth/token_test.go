package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	token, expiresAt, err := tm.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Nil(t, expiresAt, "unbounded tokens carry no expiry")

	userID, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenWithTTL(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, expiresAt, err := tm.GenerateToken(7)
	require.NoError(t, err)
	require.NotNil(t, expiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *expiresAt, time.Minute)

	userID, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := NewTokenManager("secret-a", 0)
	verifier := NewTokenManager("secret-b", 0)

	token, _, err := issuer.GenerateToken(42)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenTamperRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	token, _, err := tm.GenerateToken(42)
	require.NoError(t, err)

	tampered := []byte(token)
	// Flip a byte in the payload segment.
	tampered[len(tampered)/2] ^= 0x01

	_, err = tm.ParseToken(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongAlgorithmRejected(t *testing.T) {
	secret := "test-secret"
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "42"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	tm := NewTokenManager(secret, 0)
	_, err = tm.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMalformedRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := tm.ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestTokenNonNumericSubjectRejected(t *testing.T) {
	secret := "test-secret"
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "alice@example.com"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	tm := NewTokenManager(secret, 0)
	_, err = tm.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
