package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type rateLimiterStore struct {
	mu       sync.Mutex
	limiters map[string]*visitor
	every    rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func (s *rateLimiterStore) getLimiter(ip string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.limiters[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(s.every, s.burst)}
		s.limiters[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// evict drops visitors idle for longer than ttl.
func (s *rateLimiterStore) evict(now time.Time, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ip, v := range s.limiters {
		if now.Sub(v.lastSeen) > ttl {
			delete(s.limiters, ip)
		}
	}
}

// RateLimit allows perMinute requests per client IP, with the same burst.
func RateLimit(perMinute int, log *zap.Logger) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	store := &rateLimiterStore{
		limiters: make(map[string]*visitor),
		every:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}

	var calls uint64
	var mu sync.Mutex

	return func(c *gin.Context) {
		now := time.Now()
		ip := c.ClientIP()

		mu.Lock()
		calls++
		sweep := calls%1000 == 0
		mu.Unlock()
		if sweep {
			store.evict(now, 10*time.Minute)
		}

		if !store.getLimiter(ip, now).Allow() {
			log.Warn("rate limit exceeded", zap.String("ip", ip), zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error_code": "rate_limited",
				"message":    "Too many requests. Try again later.",
			})
			return
		}
		c.Next()
	}
}
