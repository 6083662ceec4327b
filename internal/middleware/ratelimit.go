package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/Toylycker/Travel-Agency/internal/config"
	"github.com/Toylycker/Travel-Agency/internal/metrics"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client IP to the given route.
func RateLimiter(route string, cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return next(c)
			}
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	var (
		mu        sync.Mutex
		visitors  = make(map[string]*visitor)
		lastSweep = time.Now()
	)

	// allow reports whether ip still has a token. A bucket idle for a whole
	// interval is full again, so such visitors are dropped.
	allow := func(ip string, now time.Time) bool {
		mu.Lock()
		defer mu.Unlock()

		if now.Sub(lastSweep) >= cfg.Interval {
			for key, v := range visitors {
				if now.Sub(v.lastSeen) >= cfg.Interval {
					delete(visitors, key)
				}
			}
			lastSweep = now
		}

		v, ok := visitors[ip]
		if !ok {
			v = &visitor{limiter: rate.NewLimiter(rate.Every(perRequest), cfg.Requests)}
			visitors[ip] = v
		}
		v.lastSeen = now
		return v.limiter.AllowN(now, 1)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() != route {
				return next(c)
			}

			if !allow(c.RealIP(), time.Now()) {
				metrics.RateLimitHits.WithLabelValues(route).Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"status":  "error",
					"message": "rate limit exceeded",
				})
			}

			return next(c)
		}
	}
}
