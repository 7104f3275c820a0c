package marketplace_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/refashion/marketplace"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()

	actor := &marketplace.User{ID: ownerID}
	stranger := &marketplace.User{ID: otherID}

	tests := []struct {
		name        string
		actor       *marketplace.User
		owner       *uuid.UUID
		op          marketplace.Op
		wantAllowed bool
		wantClaim   bool
		wantReason  error
	}{
		{
			name:        "Anonymous can browse",
			actor:       nil,
			owner:       &ownerID,
			op:          marketplace.OpBrowse,
			wantAllowed: true,
		},
		{
			name:       "Anonymous cannot read owner-scoped data",
			actor:      nil,
			owner:      &ownerID,
			op:         marketplace.OpRead,
			wantReason: marketplace.ErrUnauthenticated,
		},
		{
			name:       "Anonymous cannot mutate",
			actor:      nil,
			owner:      &ownerID,
			op:         marketplace.OpMutate,
			wantReason: marketplace.ErrUnauthenticated,
		},
		{
			name:        "Owner can mutate own resource",
			actor:       actor,
			owner:       &ownerID,
			op:          marketplace.OpMutate,
			wantAllowed: true,
		},
		{
			name:        "Owner can delete own resource",
			actor:       actor,
			owner:       &ownerID,
			op:          marketplace.OpDelete,
			wantAllowed: true,
		},
		{
			name:       "Stranger cannot mutate",
			actor:      stranger,
			owner:      &ownerID,
			op:         marketplace.OpMutate,
			wantReason: marketplace.ErrForbidden,
		},
		{
			name:       "Stranger cannot delete",
			actor:      stranger,
			owner:      &ownerID,
			op:         marketplace.OpDelete,
			wantReason: marketplace.ErrForbidden,
		},
		{
			name:        "Orphaned resource is claimable by any authenticated user",
			actor:       stranger,
			owner:       nil,
			op:          marketplace.OpMutate,
			wantAllowed: true,
			wantClaim:   true,
		},
		{
			name:        "Orphaned resource is deletable by any authenticated user",
			actor:       stranger,
			owner:       nil,
			op:          marketplace.OpDelete,
			wantAllowed: true,
			wantClaim:   true,
		},
		{
			name:       "Anonymous cannot claim an orphan",
			actor:      nil,
			owner:      nil,
			op:         marketplace.OpMutate,
			wantReason: marketplace.ErrUnauthenticated,
		},
		{
			name:        "Authenticated read of owner-scoped data",
			actor:       actor,
			owner:       &ownerID,
			op:          marketplace.OpRead,
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := marketplace.Authorize(tt.actor, tt.owner, tt.op)

			assert.Equal(t, tt.wantAllowed, got.Allowed)
			assert.Equal(t, tt.wantClaim, got.Claim)

			if tt.wantReason != nil {
				assert.ErrorIs(t, got.Reason, tt.wantReason)
			} else {
				assert.NoError(t, got.Reason)
			}
		})
	}
}
