// Package session binds opaque client tokens to user identifiers.
//
// The store is the only server-side session state in the system. It is
// injected into the API layer explicitly; nothing here reads global state.
// Tokens are 32 bytes of crypto/rand, base64url encoded, and carry no
// information themselves.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// ErrNotFound is returned when a token has no binding (never issued,
// logged out, or expired).
var ErrNotFound = errors.New("session not found")

const tokenRawSize = 32

// Store associates opaque session tokens with user ids.
// Implementations must be safe for concurrent use from different requests.
type Store interface {
	// Create issues a fresh token bound to the given user id.
	Create(ctx context.Context, userID int64) (string, error)
	// Resolve returns the user id bound to the token, or ErrNotFound.
	Resolve(ctx context.Context, token string) (int64, error)
	// Delete invalidates the binding. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}

// NewToken generates an unguessable session token.
func NewToken() (string, error) {
	raw := make([]byte, tokenRawSize)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
