package middleware

import (
	"net/http"
	"sync"
	"time"

	"riad-booking/internal/handler/httperr"
	"riad-booking/internal/pkg/clock"
	"riad-booking/internal/pkg/config"
	"riad-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var ErrRateLimited = errs.New("rate limit exceeded")

const visitorIdleTTL = 5 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles each client IP with its own token bucket.
type RateLimiter struct {
	perSecond rate.Limit
	burst     int
	clock     clock.Clock

	mu       sync.Mutex
	visitors map[string]*visitor
}

func NewRateLimiter(cfg config.RateLimitConfig, clk clock.Clock) *RateLimiter {
	perSecond := cfg.RequestsPerMinute / 60.0
	if perSecond <= 0 {
		perSecond = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		clock:     clk,
		visitors:  make(map[string]*visitor),
	}
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusTooManyRequests, ErrRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) allow(id string) bool {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.visitors[id]
	if !ok {
		r.evictLocked(now)
		v = &visitor{limiter: rate.NewLimiter(r.perSecond, r.burst)}
		r.visitors[id] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// evictLocked drops visitors that have been quiet long enough for their
// bucket to refill.
func (r *RateLimiter) evictLocked(now time.Time) {
	for id, v := range r.visitors {
		if now.Sub(v.lastSeen) > visitorIdleTTL {
			delete(r.visitors, id)
		}
	}
}
