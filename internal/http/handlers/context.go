package handlers

import (
	"context"
	"net/http"
)

type contextKey string

const usernameKey = contextKey("username")

// WithUsername records the authenticated admin username on the context.
// The auth middleware calls this after resolving the session cookie.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// UsernameFromContext returns the authenticated admin username, or "" when
// the request carries no session.
func UsernameFromContext(r *http.Request) string {
	if val, ok := r.Context().Value(usernameKey).(string); ok {
		return val
	}
	return ""
}
