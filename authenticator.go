package marketplace

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/uptrace/bun"
)

// Auther implements Authenticator: it verifies credentials, issues tokens,
// and registers new accounts. It keeps no per-request state; tokens are the
// only artifact that outlives a call, and they live client-side.
type Auther struct {
	provider     IdentityProvider
	repo         RepositoryManager
	tokenService TokenService
	resolver     *IdentityResolver
	logger       Logger
}

var _ Authenticator = (*Auther)(nil)

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, repo RepositoryManager, cfg Config) *Auther {
	tokenService := NewTokenService(
		[]byte(cfg.GetSigningKey()),
		cfg.GetTokenExpiration(),
		cfg.GetIssuer(),
		defLogger{},
	)

	return &Auther{
		provider:     provider,
		repo:         repo,
		tokenService: tokenService,
		resolver:     NewIdentityResolver(tokenService, defLogger{}),
		logger:       defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
		s.resolver = NewIdentityResolver(s.tokenService, logger)
	}
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Resolver returns the identity resolver backed by this Authenticator's codec.
func (s *Auther) Resolver() *IdentityResolver {
	return s.resolver
}

// Login verifies the credential pair and issues a bearer token whose subject
// is the account email. Every verification failure surfaces as the same
// generic ErrInvalidCredentials.
func (s *Auther) Login(ctx context.Context, email, password string) (string, error) {
	identity, err := s.provider.VerifyIdentity(ctx, email, password)
	if err != nil {
		s.logger.Debug("Login verify identity error", "error", err)
		return "", ErrInvalidCredentials
	}

	if identity == nil {
		s.logger.Error("Login identity is nil")
		return "", ErrInvalidCredentials
	}

	token, err := s.tokenService.Generate(identity.Email)
	if err != nil {
		s.logger.Error("Login token generation error", "error", err)
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to sign token")
	}

	return token, nil
}

// Register creates a new account inside a transaction. The email must be
// unused; the password is hashed before anything touches the store. The user
// ID derives deterministically from the email, so re-registering the same
// address can never mint a second identity.
func (s *Auther) Register(ctx context.Context, payload RegisterPayload) (*User, error) {
	user := &User{}
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err := s.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		email := NormalizeEmail(payload.Email)

		taken, err := s.repo.Users().EmailExists(ctx, email)
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check email uniqueness")
		}
		if taken {
			return ErrEmailTaken
		}

		hash, err := HashPassword(payload.Password)
		if err != nil {
			var richErr *goerrors.Error
			if goerrors.As(err, &richErr) {
				return goerrors.Wrap(richErr, goerrors.CategoryValidation, "invalid password provided")
			}
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
		}

		user.Email = email
		user.PasswordHash = hash
		user.DisplayName = displayNameOrDefault(payload.DisplayName, email)
		user.Bio = payload.Bio
		user.AvatarURL = payload.AvatarURL
		if id, err := hashid.NewUUID(email); err == nil {
			user.ID = id
		}

		if user, err = s.repo.Users().RegisterTx(ctx, tx, user); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryConflict, "could not create user")
		}

		return nil
	})

	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return nil, richErr
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "user registration transaction failed")
	}

	return user, nil
}

// SessionFromToken resolves a raw bearer string to a Principal. Invalid
// tokens return ErrTokenInvalid; the marker-producing path used per request
// lives on the Resolver, this is the error-returning variant for callers
// that need a hard answer.
func (s *Auther) SessionFromToken(raw string) (Principal, error) {
	p := s.resolver.Resolve(raw)
	if !p.IsAuthenticated() {
		return p, ErrTokenInvalid
	}
	return p, nil
}

func displayNameOrDefault(name, email string) string {
	if name != "" {
		return name
	}

	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			return email[:i]
		}
	}

	return email
}
