package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"siwarga-http-service/internal/error/code"
	"siwarga-http-service/internal/error/response"
)

type tokenBucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter applies a per-client token bucket. rate is tokens added per
// second, burst is the bucket capacity. Stale buckets are pruned as a side
// effect of lookups.
func RateLimiter(rate float64, burst float64) gin.HandlerFunc {
	var (
		mu        sync.Mutex
		buckets   = make(map[string]*tokenBucket)
		lastPrune = time.Now()
	)

	return func(c *gin.Context) {
		now := time.Now()
		mu.Lock()
		if now.Sub(lastPrune) > 10*time.Minute {
			for ip, b := range buckets {
				if now.Sub(b.lastSeen) > 10*time.Minute {
					delete(buckets, ip)
				}
			}
			lastPrune = now
		}

		ip := c.ClientIP()
		b, ok := buckets[ip]
		if !ok {
			b = &tokenBucket{tokens: burst, lastSeen: now}
			buckets[ip] = b
		}
		b.tokens += now.Sub(b.lastSeen).Seconds() * rate
		if b.tokens > burst {
			b.tokens = burst
		}
		b.lastSeen = now

		allowed := b.tokens >= 1
		if allowed {
			b.tokens--
		}
		mu.Unlock()

		if !allowed {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
