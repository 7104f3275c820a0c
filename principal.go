package marketplace

import "time"

// PrincipalKind tags the three outcomes of identity resolution. The request
// authenticator produces exactly one of these per request; handlers match on
// it instead of type-asserting some framework user object.
type PrincipalKind string

const (
	// PrincipalAnonymous means the request carried no bearer token at all.
	PrincipalAnonymous PrincipalKind = "anonymous"
	// PrincipalInvalid means a token was presented but failed validation.
	// Endpoints that require auth must answer 401, not treat it as anonymous.
	PrincipalInvalid PrincipalKind = "invalid_token"
	// PrincipalAuthenticated means the token verified and carries a subject.
	PrincipalAuthenticated PrincipalKind = "authenticated"
)

// Principal is the resolved identity of the caller for one request. It lives
// only for that request and is owned by the request's context; nothing caches
// it across calls.
type Principal struct {
	kind   PrincipalKind
	email  string
	claims AuthClaims
}

// Anonymous is the marker for a request with no credential.
func Anonymous() Principal {
	return Principal{kind: PrincipalAnonymous}
}

// InvalidToken is the marker for a credential that failed validation.
func InvalidToken() Principal {
	return Principal{kind: PrincipalInvalid}
}

// Authenticated wraps validated claims into a principal.
func Authenticated(claims AuthClaims) Principal {
	return Principal{
		kind:   PrincipalAuthenticated,
		email:  claims.Subject(),
		claims: claims,
	}
}

// Kind returns the principal's tag.
func (p Principal) Kind() PrincipalKind {
	return p.kind
}

// Email returns the subject email, empty unless authenticated.
func (p Principal) Email() string {
	return p.email
}

// Claims exposes the underlying token claims, nil unless authenticated.
func (p Principal) Claims() AuthClaims {
	return p.claims
}

// IsAuthenticated reports whether the principal resolved to a real subject.
func (p Principal) IsAuthenticated() bool {
	return p.kind == PrincipalAuthenticated && p.email != ""
}

// Expires returns the token expiry for authenticated principals.
func (p Principal) Expires() time.Time {
	if p.claims == nil {
		return time.Time{}
	}
	return p.claims.Expires()
}

// IdentityResolver turns a raw bearer string into a Principal. Expected
// failures never surface as errors; they become the InvalidToken marker.
// The only hard failure mode of the codec, a missing signing key, is
// checked at startup, not here.
type IdentityResolver struct {
	tokens TokenService
	logger Logger
}

// NewIdentityResolver returns a resolver backed by the given token service.
func NewIdentityResolver(tokens TokenService, logger Logger) *IdentityResolver {
	if logger == nil {
		logger = defLogger{}
	}
	return &IdentityResolver{tokens: tokens, logger: logger}
}

// Resolve maps a raw token to a Principal. An empty string is anonymous,
// anything that fails validation is an invalid token.
func (r *IdentityResolver) Resolve(raw string) Principal {
	if raw == "" {
		return Anonymous()
	}

	claims, err := r.tokens.Validate(raw)
	if err != nil {
		r.logger.Debug("identity resolution failed", "error", err)
		return InvalidToken()
	}

	return Authenticated(claims)
}
