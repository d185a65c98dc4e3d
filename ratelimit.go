package sunbreeze

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterCleanupInterval = time.Minute
	limiterMaxIdle         = 5 * time.Minute
)

// rateLimiter applies a per-client token bucket before dispatch, keyed by
// remote IP. Idle client buckets are pruned lazily on the request path.
type rateLimiter struct {
	rate  float64
	burst int

	mu          sync.Mutex
	limiters    map[string]*limiterEntry
	lastCleanup time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newRateLimiter(r float64, burst int) *rateLimiter {
	return &rateLimiter{
		rate:     r,
		burst:    burst,
		limiters: make(map[string]*limiterEntry),
	}
}

// allow reports whether the request is within its client's budget.
func (l *rateLimiter) allow(r *http.Request) bool {
	key := clientKey(r)

	l.mu.Lock()
	now := time.Now()

	if now.Sub(l.lastCleanup) >= limiterCleanupInterval {
		for k, e := range l.limiters {
			if now.Sub(e.lastSeen) > limiterMaxIdle {
				delete(l.limiters, k)
			}
		}
		l.lastCleanup = now
	}

	entry, ok := l.limiters[key]
	if !ok {
		entry = &limiterEntry{
			limiter: rate.NewLimiter(rate.Limit(l.rate), l.burst),
		}
		l.limiters[key] = entry
	}
	entry.lastSeen = now
	l.mu.Unlock()

	return entry.limiter.Allow()
}

// retryAfter returns the Retry-After header value for a limited client.
func (l *rateLimiter) retryAfter() string {
	return strconv.FormatFloat(1/l.rate, 'f', 0, 64)
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
