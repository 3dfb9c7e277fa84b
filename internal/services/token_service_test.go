package services_test

import (
	"testing"
	"time"

	"bolamarcada/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

func TestTokenService_IssueDecode(t *testing.T) {
	tokens := services.NewTokenService("test_jwt_secret", time.Hour)

	subjects := []string{
		"user-123",
		"5f3a1c2e-9b7d-4a15-8c30-0d2f6f1e9a44",
		"another subject",
	}
	for _, subject := range subjects {
		tokenString, err := tokens.Issue(subject)
		assert.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		decoded, err := tokens.Decode(tokenString)
		assert.NoError(t, err)
		assert.Equal(t, subject, decoded)
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	tokens := services.NewTokenService("test_jwt_secret", 0)
	assert.Equal(t, 60*time.Minute, tokens.TTL())
}

func TestTokenService_Expired(t *testing.T) {
	tokens := services.NewTokenService("test_jwt_secret", 60*time.Minute)

	tokenString, err := tokens.Issue("user-123")
	assert.NoError(t, err)

	// Simulate the clock moving 61 minutes past issuance.
	issuedAt := jwt.TimeFunc()
	jwt.TimeFunc = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	defer func() { jwt.TimeFunc = time.Now }()

	_, err = tokens.Decode(tokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	tokens := services.NewTokenService("test_jwt_secret", time.Hour)
	otherTokens := services.NewTokenService("another_secret", time.Hour)

	tokenString, err := otherTokens.Issue("user-123")
	assert.NoError(t, err)

	_, err = tokens.Decode(tokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestTokenService_AlgorithmMismatch(t *testing.T) {
	tokens := services.NewTokenService("test_jwt_secret", time.Hour)

	// A token claiming the "none" algorithm must never be accepted, even
	// with otherwise valid claims.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = tokens.Decode(tokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestTokenService_Garbage(t *testing.T) {
	tokens := services.NewTokenService("test_jwt_secret", time.Hour)

	_, err := tokens.Decode("not.a.token")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	_, err = tokens.Decode("")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}
