// Package bearerware attaches an identity outcome to every inbound request.
// It never rejects: a request without a credential proceeds as anonymous, a
// request with a bad credential proceeds carrying the invalid-token marker.
// Whether either of those is acceptable is a per-endpoint decision made by
// the handler, not by this middleware.
package bearerware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultAuthScheme = "Bearer"
	defaultContextKey = "principal"
)

// AuthClaims mirrors the claims interface from the root package without
// importing it, so the dependency only points one way.
type AuthClaims interface {
	Subject() string
}

// TokenValidator validates a raw token and returns its claims. Implementations
// must collapse every validation failure into a single error outcome.
type TokenValidator interface {
	Validate(tokenString string) (AuthClaims, error)
}

// TokenValidatorFunc adapts a function into a TokenValidator.
type TokenValidatorFunc func(tokenString string) (AuthClaims, error)

// Validate satisfies the TokenValidator interface.
func (f TokenValidatorFunc) Validate(tokenString string) (AuthClaims, error) {
	return f(tokenString)
}

// State is the identity outcome for one request.
type State string

const (
	// StateAnonymous means no credential was presented.
	StateAnonymous State = "anonymous"
	// StateInvalid means a credential was presented and failed validation.
	// Handlers must not treat this the same as anonymous on open endpoints
	// that branch on identity; on protected endpoints both get a 401.
	StateInvalid State = "invalid"
	// StateAuthenticated means the credential verified.
	StateAuthenticated State = "authenticated"
)

// ContextEnricher propagates the outcome into the request's standard context.
type ContextEnricher func(ctx context.Context, state State, claims AuthClaims) context.Context

type Config struct {
	// AuthScheme is the expected Authorization scheme, "Bearer" by default.
	AuthScheme string
	// ContextKey is the fiber Locals key the outcome state is stored under.
	ContextKey string
	// TokenValidator is required.
	TokenValidator TokenValidator
	// ContextEnricher is called once per request with the outcome.
	ContextEnricher ContextEnricher
}

// New builds the request-authenticator middleware.
func New(config ...Config) fiber.Handler {
	cfg := getDefaultConfig(config...)

	return func(c *fiber.Ctx) error {
		raw, present := extractBearer(c.Get(fiber.HeaderAuthorization), cfg.AuthScheme)

		state := StateAnonymous
		var claims AuthClaims

		if present {
			parsed, err := cfg.TokenValidator.Validate(raw)
			if err != nil {
				state = StateInvalid
			} else {
				state = StateAuthenticated
				claims = parsed
			}
		}

		c.Locals(cfg.ContextKey, state)
		if claims != nil {
			c.Locals(cfg.ContextKey+":claims", claims)
		}

		if cfg.ContextEnricher != nil {
			c.SetUserContext(cfg.ContextEnricher(c.UserContext(), state, claims))
		}

		return c.Next()
	}
}

func getDefaultConfig(config ...Config) Config {
	var cfg Config
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.AuthScheme == "" {
		cfg.AuthScheme = defaultAuthScheme
	}

	if cfg.ContextKey == "" {
		cfg.ContextKey = defaultContextKey
	}

	if cfg.TokenValidator == nil {
		panic("bearerware: missing TokenValidator")
	}

	return cfg
}

// extractBearer pulls the credential out of an Authorization header value.
// A header with the wrong scheme or an empty credential counts as presented
// and invalid; only a truly absent header is anonymous.
func extractBearer(header, scheme string) (string, bool) {
	if header == "" {
		return "", false
	}

	prefix := scheme + " "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", true
	}

	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", true
	}

	return token, true
}
