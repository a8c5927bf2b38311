package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"apicatalog/internal/metrics"
)

// limiterIdleTTL is how long a client may stay silent before its limiter is dropped.
const limiterIdleTTL = 10 * time.Minute

// RateLimit allows each client IP perMinute requests with the given burst.
// A non-positive perMinute disables the limiter.
func RateLimit(perMinute, burst int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiters := newClientLimiters(rate.Every(time.Minute/time.Duration(perMinute)), burst, limiterIdleTTL, time.Now)

	return func(c *gin.Context) {
		if !limiters.allow(c.ClientIP()) {
			metrics.RequestsRateLimited.WithLabelValues(c.FullPath()).Inc()
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "RATE_LIMITED",
					"message": "too many requests, try again later",
				},
			})
			return
		}
		c.Next()
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters keeps one token bucket per client. Buckets idle for longer
// than idleTTL are evicted, at most once per idleTTL.
type clientLimiters struct {
	mu        sync.Mutex
	every     rate.Limit
	burst     int
	idleTTL   time.Duration
	now       func() time.Time
	lastSweep time.Time
	clients   map[string]*clientLimiter
}

func newClientLimiters(every rate.Limit, burst int, idleTTL time.Duration, now func() time.Time) *clientLimiters {
	return &clientLimiters{
		every:     every,
		burst:     burst,
		idleTTL:   idleTTL,
		now:       now,
		lastSweep: now(),
		clients:   make(map[string]*clientLimiter),
	}
}

func (l *clientLimiters) allow(key string) bool {
	l.mu.Lock()
	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}
	cl, ok := l.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.every, l.burst)}
		l.clients[key] = cl
	}
	cl.lastSeen = now
	l.mu.Unlock()

	return cl.limiter.AllowN(now, 1)
}

// sweep drops idle clients. Callers hold l.mu.
func (l *clientLimiters) sweep(now time.Time) {
	for key, cl := range l.clients {
		if now.Sub(cl.lastSeen) >= l.idleTTL {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}

func (l *clientLimiters) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}
