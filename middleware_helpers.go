package marketplace

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/refashion/marketplace/middleware/bearerware"
)

// BearerTokenValidator adapts the TokenService to the middleware's local
// validator interface.
func BearerTokenValidator(ts TokenService) bearerware.TokenValidator {
	return bearerware.TokenValidatorFunc(func(raw string) (bearerware.AuthClaims, error) {
		claims, err := ts.Validate(raw)
		if err != nil {
			return nil, err
		}
		return claims, nil
	})
}

// PrincipalContextEnricher maps the middleware outcome onto the Principal
// variant and threads it through the standard context, where handlers and
// anything below them can reach it without fiber in their signatures.
func PrincipalContextEnricher() bearerware.ContextEnricher {
	return func(ctx context.Context, state bearerware.State, claims bearerware.AuthClaims) context.Context {
		switch state {
		case bearerware.StateAuthenticated:
			if ac, ok := claims.(AuthClaims); ok {
				return WithPrincipal(ctx, Authenticated(ac))
			}
			return WithPrincipal(ctx, InvalidToken())
		case bearerware.StateInvalid:
			return WithPrincipal(ctx, InvalidToken())
		default:
			return WithPrincipal(ctx, Anonymous())
		}
	}
}

// RequestAuthenticator builds the fiber middleware that runs before every
// handler. It only classifies; it never rejects.
func RequestAuthenticator(ts TokenService, cfg Config) fiber.Handler {
	return bearerware.New(bearerware.Config{
		AuthScheme:      cfg.GetAuthScheme(),
		TokenValidator:  BearerTokenValidator(ts),
		ContextEnricher: PrincipalContextEnricher(),
	})
}
