package middleware

import (
	"sync"
	"time"

	"soa-bango-backend/internal/delivery/http/response"
	"soa-bango-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for per-IP rate limiting on the public
// form endpoints. The store is in-memory; this deployment is a single
// process with no shared backend.
type RateLimitConfig struct {
	// Sustained requests per minute per client IP
	PerMinute int
	// Burst allowance on top of the sustained rate
	Burst int
}

// DefaultRateLimitConfig returns sensible defaults for form submissions.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		PerMinute: 10,
		Burst:     5,
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns a middleware enforcing cfg per client IP. Idle entries
// are dropped by a background sweep so the map stays bounded.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.PerMinute <= 0 {
		cfg = DefaultRateLimitConfig()
	}
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*clientLimiter)
	)

	go func() {
		for range time.Tick(5 * time.Minute) {
			mu.Lock()
			for ip, cl := range clients {
				if time.Since(cl.lastSeen) > 10*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	perSecond := rate.Limit(float64(cfg.PerMinute) / 60.0)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(perSecond, cfg.Burst)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			err := apperror.TooManyRequests("Trop de requêtes. Veuillez patienter un instant.")
			response.Error(c, err.Code, err.Message)
			c.Abort()
			return
		}

		c.Next()
	}
}
