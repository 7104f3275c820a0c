package marketplace_test

import (
	"net/http"
	"testing"

	"github.com/goliatone/go-errors"
	"github.com/refashion/marketplace"
	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name         string
		err          *errors.Error
		wantCode     int
		wantCategory any
	}{
		{"Invalid credentials", marketplace.ErrInvalidCredentials, http.StatusUnauthorized, errors.CategoryAuth},
		{"Invalid token", marketplace.ErrTokenInvalid, http.StatusUnauthorized, errors.CategoryAuth},
		{"Unauthenticated", marketplace.ErrUnauthenticated, http.StatusUnauthorized, errors.CategoryAuth},
		{"Forbidden", marketplace.ErrForbidden, http.StatusForbidden, errors.CategoryAuthz},
		{"Email taken answers 400, not 409", marketplace.ErrEmailTaken, http.StatusBadRequest, errors.CategoryConflict},
		{"Unknown recipient answers 400, not 404", marketplace.ErrRecipientNotFound, http.StatusBadRequest, errors.CategoryBadInput},
		{"Missing product", marketplace.ErrProductNotFound, http.StatusNotFound, errors.CategoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualValues(t, tt.wantCode, tt.err.Code)
			assert.EqualValues(t, tt.wantCategory, tt.err.Category)
		})
	}
}

func TestNotFoundSentinelsAreNotFound(t *testing.T) {
	assert.True(t, errors.IsNotFound(marketplace.ErrUserNotFound))
	assert.True(t, errors.IsNotFound(marketplace.ErrProductNotFound))
	assert.True(t, errors.IsNotFound(marketplace.ErrCartItemNotFound))

	// Recipient lookups deliberately surface as bad input, not not-found.
	assert.False(t, errors.IsNotFound(marketplace.ErrRecipientNotFound))
}
