package marketplace_test

import (
	"testing"
	"time"

	"github.com/refashion/marketplace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(key string, hours int) marketplace.TokenService {
	return marketplace.NewTokenService([]byte(key), hours, "marketplace-test", nil)
}

func TestTokenServiceRoundTrip(t *testing.T) {
	svc := newTestTokenService("test-signing-key", 1)

	token, err := svc.Generate("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", claims.Subject())
	assert.True(t, claims.Expires().After(time.Now()))
	assert.False(t, claims.IssuedAt().IsZero())
}

func TestTokenServiceValidateFailures(t *testing.T) {
	svc := newTestTokenService("test-signing-key", 1)

	valid, err := svc.Generate("user@example.com")
	require.NoError(t, err)

	expiredSvc := newTestTokenService("test-signing-key", -1)
	expired, err := expiredSvc.Generate("user@example.com")
	require.NoError(t, err)

	otherKey := newTestTokenService("a-different-key", 1)
	foreign, err := otherKey.Generate("user@example.com")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"Garbage input", "not.a.token"},
		{"Tampered payload", valid + "x"},
		{"Expired token", expired},
		{"Wrong signing key", foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Validate(tt.token)

			assert.Nil(t, claims)
			// Callers must not be able to tell these cases apart.
			assert.ErrorIs(t, err, marketplace.ErrTokenInvalid)
		})
	}
}

func TestTokenServiceIssuerMismatch(t *testing.T) {
	issuerA := marketplace.NewTokenService([]byte("shared-key"), 1, "service-a", nil)
	issuerB := marketplace.NewTokenService([]byte("shared-key"), 1, "service-b", nil)

	token, err := issuerA.Generate("user@example.com")
	require.NoError(t, err)

	_, err = issuerB.Validate(token)
	assert.ErrorIs(t, err, marketplace.ErrTokenInvalid)
}
