package limiter

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles a group of routes with a single token bucket.
type Limiter struct {
	limiter *rate.Limiter
}

// New allows burst requests at once, then one per interval.
// A non-positive interval disables throttling.
func New(interval time.Duration, burst int) *Limiter {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Limiter{limiter: rate.NewLimiter(limit, max(burst, 1))}
}

// Allow reports whether a request may proceed now.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// Middleware answers 429 Too Many Requests while the bucket is empty.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	f := func(w http.ResponseWriter, r *http.Request) {
		if !l.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(f)
}
