package marketplace

import (
	"context"

	"github.com/goliatone/go-errors"
)

// UserStore is what credential verification needs from persistence.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// UserProvider resolves credentials against the user store. It is the only
// component that sees plaintext passwords after the HTTP boundary.
type UserProvider struct {
	store  UserStore
	logger Logger
}

// NewUserProvider will create a new UserProvider
func NewUserProvider(store UserStore) *UserProvider {
	return &UserProvider{
		store:  store,
		logger: defLogger{},
	}
}

func (u *UserProvider) WithLogger(l Logger) *UserProvider {
	if l != nil {
		u.logger = l
	}
	return u
}

// VerifyIdentity will find the user and compare the password. An unknown
// email and a wrong password return the same sentinel so a caller probing
// the login endpoint cannot enumerate accounts.
func (u *UserProvider) VerifyIdentity(ctx context.Context, email, password string) (*User, error) {
	user, err := u.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrMismatchedHashAndPassword
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		return nil, err
	}

	return user, nil
}

// FindIdentityByEmail looks up a user without checking credentials.
func (u *UserProvider) FindIdentityByEmail(ctx context.Context, email string) (*User, error) {
	return u.store.GetByEmail(ctx, email)
}
