package jwtauth_test

import (
	"testing"
	"time"

	"deliverytrack/internal/adapters/out/jwtauth"
	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-signing-secret")

func signToken(t *testing.T, claims jwt.RegisteredClaims, secret []byte) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func TestNewProvider_EmptySecret_ReturnsError(t *testing.T) {
	_, err := jwtauth.NewProvider(nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestProvider_Authenticate(t *testing.T) {
	provider, err := jwtauth.NewProvider(testSecret)
	require.NoError(t, err)

	t.Run("valid_token_returns_agent_id", func(t *testing.T) {
		agentID := kernel.NewUUID()
		credential := signToken(t, jwt.RegisteredClaims{
			Subject:   agentID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}, testSecret)

		resolved, err := provider.Authenticate(t.Context(), credential)

		require.NoError(t, err)
		assert.True(t, agentID.IsEqual(resolved))
	})

	t.Run("empty_credential", func(t *testing.T) {
		_, err := provider.Authenticate(t.Context(), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		credential := signToken(t, jwt.RegisteredClaims{
			Subject:   kernel.NewUUID().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}, []byte("some-other-secret"))

		_, err := provider.Authenticate(t.Context(), credential)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("expired_token", func(t *testing.T) {
		credential := signToken(t, jwt.RegisteredClaims{
			Subject:   kernel.NewUUID().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}, testSecret)

		_, err := provider.Authenticate(t.Context(), credential)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("subject_is_not_a_uuid", func(t *testing.T) {
		credential := signToken(t, jwt.RegisteredClaims{
			Subject:   "agent-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}, testSecret)

		_, err := provider.Authenticate(t.Context(), credential)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("garbage_credential", func(t *testing.T) {
		_, err := provider.Authenticate(t.Context(), "not-a-jwt")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
