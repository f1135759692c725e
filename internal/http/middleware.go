package http

import (
	"errors"
	"net"
	"net/http"

	"github.com/lendifyit/lendify-api/internal/http/handlers"
	"github.com/lendifyit/lendify-api/internal/http/ratelimit"
	"github.com/lendifyit/lendify-api/internal/session"
)

var sessions session.Store

func SetSessionStore(s session.Store) {
	sessions = s
}

// AuthMiddleware resolves the session cookie to the logged-in admin
// username and rejects requests without a valid session.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie(handlers.SessionCookie)
		if err != nil || ck.Value == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		username, err := sessions.Get(r.Context(), ck.Value)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				http.Error(w, "invalid session", http.StatusUnauthorized)
				return
			}
			http.Error(w, "session lookup failed", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(handlers.WithUsername(r.Context(), username)))
	})
}

// LoginRateLimit throttles login attempts per client IP.
func LoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !ratelimit.Allow(ip) {
			http.Error(w, "too many login attempts", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
