package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter is a fixed-window per-client limiter backed by Redis. The
// counter key is created on the first hit of a window and expires with it.
// When Redis is unreachable the limiter fails open.
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	log    *zap.Logger
}

// NewRateLimiter creates a RateLimiter allowing limit requests per window
// per client IP.
func NewRateLimiter(client *redis.Client, limit int64, window time.Duration, log *zap.Logger) *RateLimiter {
	return &RateLimiter{client: client, limit: limit, window: window, log: log}
}

// Handler enforces the limit, answering 429 once a client exhausts its
// window.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := "ratelimit:" + clientIP(r)

		count, err := rl.client.Incr(r.Context(), key).Result()
		if err != nil {
			rl.log.Warn("rate limiter unavailable", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			rl.client.Expire(r.Context(), key, rl.window)
		}

		if count > rl.limit {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(rl.window.Seconds())))
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"too many requests"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	// chi's RealIP middleware rewrites RemoteAddr from X-Forwarded-For.
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
