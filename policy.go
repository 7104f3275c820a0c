package marketplace

import (
	"github.com/google/uuid"
)

// Op classifies what a handler is about to do with a resource. The policy
// only cares about this coarse split; it has no notion of roles beyond
// owner vs. non-owner.
type Op int

const (
	// OpBrowse is a read of a publicly browsable resource (listings, categories).
	OpBrowse Op = iota
	// OpRead is an owner-scoped read (cart, favorites, inbox, profile).
	OpRead
	// OpMutate is a create or update on an owned resource.
	OpMutate
	// OpDelete removes an owned resource.
	OpDelete
)

func (o Op) mutates() bool {
	return o == OpMutate || o == OpDelete
}

// Decision is the outcome of one policy evaluation. When Claim is set the
// caller is taking ownership of an orphaned resource and must persist the
// new owner as part of the same operation.
type Decision struct {
	Allowed bool
	Claim   bool
	Reason  error
}

func allow() Decision {
	return Decision{Allowed: true}
}

func allowClaim() Decision {
	return Decision{Allowed: true, Claim: true}
}

func deny(reason error) Decision {
	return Decision{Reason: reason}
}

// Authorize decides whether actor may perform op on a resource owned by
// owner. It is evaluated fresh on every mutating call and holds no state.
//
// actor is nil for anonymous or invalid-token callers. owner is nil for
// orphaned resources left over from the pre-authentication data migration;
// any authenticated caller may claim those, a one-time transition with
// last-writer-wins semantics. Once a resource has a real owner there is no
// transfer, only that owner may touch it.
func Authorize(actor *User, owner *uuid.UUID, op Op) Decision {
	if op == OpBrowse {
		return allow()
	}

	if actor == nil {
		return deny(ErrUnauthenticated)
	}

	if op.mutates() && owner == nil {
		return allowClaim()
	}

	if op.mutates() && *owner != actor.ID {
		return deny(ErrForbidden)
	}

	return allow()
}
