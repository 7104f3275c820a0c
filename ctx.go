package marketplace

import (
	"context"
)

var principalCtxKey = &contextKey{"principal"}
var userCtxKey = &contextKey{"user"}

type contextKey struct {
	name string
}

// WithPrincipal sets the resolved Principal in the given context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

// PrincipalFromContext finds the Principal the request authenticator attached.
// A context that never went through the middleware reports an anonymous
// principal, which is the safe default.
func PrincipalFromContext(ctx context.Context) Principal {
	if p, ok := ctx.Value(principalCtxKey).(Principal); ok {
		return p
	}
	return Anonymous()
}

// WithUser sets the full User record in the given context, once a handler
// has resolved the principal's email against the store.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

// UserFromContext finds the user from the context.
func UserFromContext(ctx context.Context) (*User, bool) {
	raw, ok := ctx.Value(userCtxKey).(*User)
	return raw, ok
}
