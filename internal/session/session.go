// Package session maps opaque session IDs to the authenticated admin
// username. The marker is a single string; there is no refresh and no
// multi-factor, and logout simply deletes the entry.
package session

import "context"

// Store is the session backend. Get returns ErrSessionNotFound for unknown
// or expired IDs.
type Store interface {
	Create(ctx context.Context, id, username string) error
	Get(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
}
