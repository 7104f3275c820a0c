package marketplace

import (
	"github.com/goliatone/go-errors"
)

// ErrMismatchedHashAndPassword covers both a wrong password and a hash we
// could not parse. Login failures must stay indistinguishable from the
// outside, so the two cases share one sentinel.
var ErrMismatchedHashAndPassword = errors.New("mismatched hash and password", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("CREDENTIALS_MISMATCH")

// ErrInvalidCredentials is the only authentication failure the login endpoint
// surfaces. Unknown email and wrong password both map here.
var ErrInvalidCredentials = errors.New("invalid email or password", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("INVALID_CREDENTIALS")

// ErrTokenInvalid collapses malformed encoding, signature mismatch and expiry
// into a single outcome so the response never reveals which check failed.
var ErrTokenInvalid = errors.New("invalid or expired token", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("TOKEN_INVALID")

// ErrUnauthenticated is returned when an endpoint requires a resolved
// principal and the request carried none, or an invalid one.
var ErrUnauthenticated = errors.New("authentication required", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("UNAUTHENTICATED")

// ErrForbidden is returned when a valid principal fails the ownership check.
var ErrForbidden = errors.New("you do not own this resource", errors.CategoryAuthz).
	WithCode(errors.CodeForbidden).
	WithTextCode("FORBIDDEN")

// ErrEmailTaken is the duplicate-registration conflict. The original backend
// answers 400 here, and the message must not leak more than the conflict itself.
var ErrEmailTaken = errors.New("email already registered", errors.CategoryConflict).
	WithCode(errors.CodeBadRequest).
	WithTextCode("EMAIL_TAKEN")

// ErrUserNotFound covers a principal whose user record no longer exists.
var ErrUserNotFound = errors.New("user not found", errors.CategoryNotFound).
	WithCode(errors.CodeNotFound).
	WithTextCode("USER_NOT_FOUND")

// ErrProductNotFound is the missing-listing error.
var ErrProductNotFound = errors.New("product not found", errors.CategoryNotFound).
	WithCode(errors.CodeNotFound).
	WithTextCode("PRODUCT_NOT_FOUND")

// ErrCategoryNotFound is the missing-category error.
var ErrCategoryNotFound = errors.New("category not found", errors.CategoryNotFound).
	WithCode(errors.CodeNotFound).
	WithTextCode("CATEGORY_NOT_FOUND")

// ErrRecipientNotFound is returned when a message names an unknown recipient.
// The original backend answers 400 here, not 404.
var ErrRecipientNotFound = errors.New("recipient not found", errors.CategoryBadInput).
	WithCode(errors.CodeBadRequest).
	WithTextCode("RECIPIENT_NOT_FOUND")

// ErrCartItemNotFound is returned when updating a cart entry that was never added.
var ErrCartItemNotFound = errors.New("cart item not found", errors.CategoryNotFound).
	WithCode(errors.CodeNotFound).
	WithTextCode("CART_ITEM_NOT_FOUND")

// ErrNoEmptyString rejects empty input where a value is mandatory.
var ErrNoEmptyString = errors.New("value should not be an empty string", errors.CategoryValidation).
	WithCode(errors.CodeBadRequest).
	WithTextCode("EMPTY_VALUE")

// ErrMissingSigningKey aborts startup; a token codec without a secret is a
// configuration failure, never a per-request condition.
var ErrMissingSigningKey = errors.New("missing JWT signing key", errors.CategoryInternal).
	WithTextCode("MISSING_SIGNING_KEY")

func wrapValidation(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, errors.CategoryValidation, msg).
		WithCode(errors.CodeBadRequest)
}
