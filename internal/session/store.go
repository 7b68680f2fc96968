// Package session implements the server-side session store: an opaque
// token, delivered to the client in a cookie, mapped to an admin id.
package session

import "context"

// Store persists session tokens. Absence of a token is reported through
// the ok flag, not an error.
type Store interface {
	// Create registers a new session for the admin and returns its token.
	Create(ctx context.Context, adminID int) (string, error)
	// Get resolves a token to the admin id it was created for.
	Get(ctx context.Context, token string) (adminID int, ok bool, err error)
	// Delete removes a session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
