package main

import (
	"log"
	"net/http"

	"golang.org/x/time/rate"
)

// newRouteLimiter builds the limiter for /route; a non-positive rate
// disables throttling
func newRouteLimiter(cfg serverConfig) *rate.Limiter {
	if cfg.RouteRateLimit <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := cfg.RouteRateBurst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RouteRateLimit), burst)
}

// rateLimitMiddleware rejects requests once limiter runs out of tokens
func rateLimitMiddleware(limiter *rate.Limiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			log.Printf("⏳ Rate limit exceeded on %s\n", r.URL.Path)
			routeRequestsTotal.WithLabelValues("throttled").Inc()
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}
