// Package ratelimit throttles login attempts per client IP. Since the
// credential check is a verbatim compare against a small table, the limiter
// is the only brake on guessing.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	clients = make(map[string]*client)
	mu      sync.Mutex
)

// Allow reports whether ip may attempt a login right now. Each IP gets one
// attempt per second with a burst of five.
func Allow(ip string) bool {
	mu.Lock()
	defer mu.Unlock()

	c, exists := clients[ip]
	if !exists {
		c = &client{limiter: rate.NewLimiter(1, 5)}
		clients[ip] = c
	}
	c.lastSeen = time.Now()
	return c.limiter.Allow()
}

// StartCleanupLoop drops limiters for IPs not seen for five minutes.
func StartCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for ip, c := range clients {
			if time.Since(c.lastSeen) > 5*time.Minute {
				delete(clients, ip)
			}
		}
		mu.Unlock()
	}
}

// Reset clears all tracked clients.
func Reset() {
	mu.Lock()
	clients = make(map[string]*client)
	mu.Unlock()
}
