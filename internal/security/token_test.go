package security_test

import (
	"testing"
	"time"

	"vidly-backend/internal/security"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tokens := security.NewTokenManager(testSecret, time.Hour)

	token, err := tokens.Generate(42, true)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokens.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "vidly-backend", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_Validate(t *testing.T) {
	tokens := security.NewTokenManager(testSecret, time.Hour)

	t.Run("Empty token", func(t *testing.T) {
		_, err := tokens.Validate("")
		assert.ErrorIs(t, err, security.ErrNoToken)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := tokens.Validate("not.a.jwt")
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})

	t.Run("Tampered token", func(t *testing.T) {
		token, err := tokens.Generate(42, false)
		assert.NoError(t, err)

		_, err = tokens.Validate(token + "x")
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		other := security.NewTokenManager("another-secret-entirely-32-chars", time.Hour)
		token, err := other.Generate(42, false)
		assert.NoError(t, err)

		_, err = tokens.Validate(token)
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := security.NewTokenManager(testSecret, -time.Minute)
		token, err := expired.Generate(42, false)
		assert.NoError(t, err)

		_, err = tokens.Validate(token)
		assert.ErrorIs(t, err, security.ErrExpiredToken)
	})
}
