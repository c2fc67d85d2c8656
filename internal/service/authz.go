package service

import (
	"errors"

	"fitforge/workout-planner/internal/domain"
)

// --- Error Definitions ---
var (
	// ErrUnauthenticated means no acting identity could be established.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden means the acting user may not act on the target resource.
	ErrForbidden = errors.New("not authorized to modify this resource")
)

// Authorizer decides, per mutation attempt, whether the acting identity may
// act on a target resource.
type Authorizer interface {
	// Authorize applies the ownership rules to a resource whose owning-user
	// field is ownerID (nil for shared/catalog resources such as workout
	// templates, instructors, and library exercises).
	Authorize(actor *domain.User, ownerID *int64) error
}

// authorizer implements the Authorizer interface.
type authorizer struct{}

// NewAuthorizer creates the ownership authorization engine.
func NewAuthorizer() Authorizer {
	return &authorizer{}
}

// Authorize evaluates the rules in fixed order:
//
//  1. No acting user: ErrUnauthenticated.
//  2. Shared resource (no owning user): mutation requires an admin identity.
//  3. Acting user is the owner: allowed.
//  4. Acting user is an admin: allowed.
//  5. Otherwise: ErrForbidden.
//
// Owner ids on personal resources are always injected server-side from the
// session; callers must never pass an owner taken from a request payload.
func (a *authorizer) Authorize(actor *domain.User, ownerID *int64) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if ownerID == nil {
		if actor.IsAdmin {
			return nil
		}
		return ErrForbidden
	}
	if actor.ID == *ownerID {
		return nil
	}
	if actor.IsAdmin {
		return nil
	}
	return ErrForbidden
}
