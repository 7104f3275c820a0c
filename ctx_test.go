package marketplace_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/refashion/marketplace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipalContext(t *testing.T) {
	ctx := context.Background()

	// A bare context resolves to the anonymous principal, never a panic.
	p := marketplace.PrincipalFromContext(ctx)
	assert.Equal(t, marketplace.PrincipalAnonymous, p.Kind())

	svc := newTestTokenService("ctx-key", 1)
	token, err := svc.Generate("ctx@example.com")
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	ctx = marketplace.WithPrincipal(ctx, marketplace.Authenticated(claims))

	p = marketplace.PrincipalFromContext(ctx)
	assert.True(t, p.IsAuthenticated())
	assert.Equal(t, "ctx@example.com", p.Email())
}

func TestUserContext(t *testing.T) {
	ctx := context.Background()

	_, ok := marketplace.UserFromContext(ctx)
	assert.False(t, ok)

	user := &marketplace.User{ID: uuid.New(), Email: "ctx@example.com"}
	ctx = marketplace.WithUser(ctx, user)

	got, ok := marketplace.UserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
}
