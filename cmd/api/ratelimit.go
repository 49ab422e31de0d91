package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type rateLimitConfig struct {
	requestsPerMinute int
	burst             int
	cleanupInterval   time.Duration
}

// rateLimiter keeps one token bucket per client IP.
type rateLimiter struct {
	config   rateLimitConfig
	mu       sync.Mutex
	clients  map[string]*rate.Limiter
	lastSeen map[string]time.Time
}

func newRateLimiter(cfg rateLimitConfig) *rateLimiter {
	if cfg.burst <= 0 {
		cfg.burst = 1
	}
	if cfg.cleanupInterval <= 0 {
		cfg.cleanupInterval = 5 * time.Minute
	}
	return &rateLimiter{
		config:   cfg,
		clients:  make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
	}
}

func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := rl.getLimiter(clientIP(r))

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.config.requestsPerMinute))
		if !limiter.Allow() {
			retryAfter := rl.retryAfter()
			w.Header().Set("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
			writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *rateLimiter) getLimiter(clientID string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lastSeen[clientID] = time.Now()
	if limiter, ok := rl.clients[clientID]; ok {
		return limiter
	}

	rps := rate.Limit(float64(rl.config.requestsPerMinute) / 60.0)
	limiter := rate.NewLimiter(rps, rl.config.burst)
	rl.clients[clientID] = limiter
	return limiter
}

// retryAfter is the time for one token to refill, rounded up to a second.
func (rl *rateLimiter) retryAfter() time.Duration {
	if rl.config.requestsPerMinute <= 0 {
		return time.Minute
	}
	interval := time.Minute / time.Duration(rl.config.requestsPerMinute)
	return interval.Round(time.Second) + time.Second
}

// cleanup drops limiters of clients idle for two intervals until ctx ends.
func (rl *rateLimiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(rl.config.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.evictIdle(time.Now().Add(-2 * rl.config.cleanupInterval))
		}
	}
}

func (rl *rateLimiter) evictIdle(cutoff time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for clientID, seen := range rl.lastSeen {
		if seen.Before(cutoff) {
			delete(rl.clients, clientID)
			delete(rl.lastSeen, clientID)
		}
	}
}

// clientIP relies on middleware.RealIP having rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
