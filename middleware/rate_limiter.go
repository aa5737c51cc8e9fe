// middleware/rate_limiter.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/flowventory/backend/models"
)

type endpointLimit struct {
	limit rate.Limit
	burst int
}

// RateLimiter applies per-IP token buckets, with a stricter bucket on the
// login endpoint to slow down credential guessing.
type RateLimiter struct {
	ips            map[string]map[string]*rate.Limiter
	mu             sync.Mutex
	defaultLimit   rate.Limit
	defaultBurst   int
	endpointLimits map[string]endpointLimit
}

// NewRateLimiter creates a rate limiter with the application's endpoint limits.
func NewRateLimiter() *RateLimiter {
	limiter := &RateLimiter{
		ips:            make(map[string]map[string]*rate.Limiter),
		defaultLimit:   rate.Every(100 * time.Millisecond), // 10 requests per second
		defaultBurst:   20,
		endpointLimits: make(map[string]endpointLimit),
	}

	// Login gets a strict bucket to blunt brute-force attempts
	limiter.endpointLimits["/api/auth/login"] = endpointLimit{
		limit: rate.Every(2 * time.Second),
		burst: 5,
	}

	return limiter
}

func (rl *RateLimiter) limiterFor(ip, path string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	key := "*"
	lim, burst := rl.defaultLimit, rl.defaultBurst
	if el, ok := rl.endpointLimits[path]; ok {
		key = path
		lim, burst = el.limit, el.burst
	}

	perIP, ok := rl.ips[ip]
	if !ok {
		perIP = make(map[string]*rate.Limiter)
		rl.ips[ip] = perIP
	}
	limiter, ok := perIP[key]
	if !ok {
		limiter = rate.NewLimiter(lim, burst)
		perIP[key] = limiter
	}
	return limiter
}

// RateLimit returns the Echo middleware enforcing the limits
func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter := rl.limiterFor(c.RealIP(), c.Path())
			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Message: "Too many requests. Please try again later.",
				})
			}
			return next(c)
		}
	}
}
