package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/getmentor/readme-generator/pkg/metrics"
	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	visitorTTL      = 3 * time.Minute
	visitorSweepGap = time.Minute
)

// RateLimiter implements a simple in-memory rate limiter per IP address.
// Idle visitors expire from the cache, so no cleanup goroutine is needed.
type RateLimiter struct {
	visitors *gocache.Cache
	mu       sync.Mutex
	r        rate.Limit // requests per second
	b        int        // burst size
}

// NewRateLimiter creates a new rate limiter
// r: requests per second (e.g., 10 means 10 requests per second)
// b: burst size (e.g., 20 means allow bursts of up to 20 requests)
func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	return &RateLimiter{
		visitors: gocache.New(visitorTTL, visitorSweepGap),
		r:        r,
		b:        b,
	}
}

// getVisitor returns the rate limiter for a given IP address and extends its lifetime
func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if cached, found := rl.visitors.Get(ip); found {
		limiter := cached.(*rate.Limiter)
		rl.visitors.SetDefault(ip, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(rl.r, rl.b)
	rl.visitors.SetDefault(ip, limiter)
	return limiter
}

// Visitors returns the number of tracked client addresses
func (rl *RateLimiter) Visitors() int {
	return rl.visitors.ItemCount()
}

// Middleware returns a Gin middleware function for rate limiting
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.getVisitor(c.ClientIP())

		if !limiter.Allow() {
			metrics.RateLimited.WithLabelValues(c.FullPath()).Inc()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
