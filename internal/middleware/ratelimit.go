package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Ali-Cheikh/ramadan-duo/pkg/logger"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Limiter is the abstraction the middleware consumes. Keeping it an
// interface means nothing downstream of a handler ever touches the
// process-lifetime counter state directly, and tests can inject an
// always-allow or always-deny limiter.
type Limiter interface {
	Allow(key string) bool
}

// KeyedLimiter manages one token bucket per key (normally a client IP).
type KeyedLimiter struct {
	keys  map[string]*limiterEntry
	mu    sync.Mutex
	r     rate.Limit
	burst int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewKeyedLimiter creates a limiter with r events/sec and the given burst.
func NewKeyedLimiter(r rate.Limit, burst int) *KeyedLimiter {
	kl := &KeyedLimiter{
		keys:  make(map[string]*limiterEntry),
		r:     r,
		burst: burst,
	}

	// Drop buckets for keys not seen in a while.
	go kl.cleanup()

	return kl
}

func (kl *KeyedLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)
		kl.mu.Lock()
		for key, entry := range kl.keys {
			if time.Since(entry.lastSeen) > 3*time.Minute {
				delete(kl.keys, key)
			}
		}
		kl.mu.Unlock()
	}
}

func (kl *KeyedLimiter) Allow(key string) bool {
	kl.mu.Lock()
	entry, exists := kl.keys[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(kl.r, kl.burst)}
		kl.keys[key] = entry
	}
	entry.lastSeen = time.Now()
	limiter := entry.limiter
	kl.mu.Unlock()

	return limiter.Allow()
}

// Pre-configured limiters for different endpoint classes.
var (
	// General API: 600 requests per minute (10/sec)
	GeneralLimiter = NewKeyedLimiter(rate.Limit(10.0), 50)

	// Deed toggles: 60 per minute, small burst for quick tapping
	ToggleLimiter = NewKeyedLimiter(rate.Limit(1.0), 10)

	// Achievement evaluation: 120 per minute per IP, as in the award route
	AwardLimiter = NewKeyedLimiter(rate.Limit(2.0), 10)

	// Reminder trigger: the cron fires once a minute at most
	CronLimiter = NewKeyedLimiter(rate.Limit(1.0/30.0), 2)
)

// RateLimitMiddleware creates a rate limiting middleware with the given limiter
func RateLimitMiddleware(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			logger.Warn().
				Str("ip", ip).
				Str("path", c.Request.URL.Path).
				Msg("Rate limit exceeded")

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Too many requests",
				"message": "Rate limit exceeded. Please slow down.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GeneralRateLimit is for general API endpoints
func GeneralRateLimit() gin.HandlerFunc {
	return RateLimitMiddleware(GeneralLimiter)
}

// ToggleRateLimit is for deed toggle endpoints
func ToggleRateLimit() gin.HandlerFunc {
	return RateLimitMiddleware(ToggleLimiter)
}

// AwardRateLimit is for the achievement evaluation endpoint
func AwardRateLimit() gin.HandlerFunc {
	return RateLimitMiddleware(AwardLimiter)
}

// CronRateLimit is for scheduler-triggered endpoints
func CronRateLimit() gin.HandlerFunc {
	return RateLimitMiddleware(CronLimiter)
}
