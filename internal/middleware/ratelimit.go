package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type clientWindow struct {
	count   int
	resetAt time.Time
}

// RateLimit applies a fixed per-IP window of rpm requests per minute and
// exposes the usual X-RateLimit headers.
func RateLimit(rpm int) gin.HandlerFunc {
	clients := make(map[string]*clientWindow)
	var mu sync.Mutex
	window := time.Minute

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		info, exists := clients[ip]
		if !exists {
			info = &clientWindow{count: 1, resetAt: now.Add(window)}
			clients[ip] = info
		} else if now.After(info.resetAt) {
			info.count = 1
			info.resetAt = now.Add(window)
		} else if info.count >= rpm {
			retryAfter := int(info.resetAt.Sub(now).Seconds())
			mu.Unlock()

			c.Header("X-RateLimit-Limit", strconv.Itoa(rpm))
			c.Header("X-RateLimit-Remaining", "0")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter,
			})
			return
		} else {
			info.count++
		}

		remaining := rpm - info.count
		resetUnix := info.resetAt.Unix()
		mu.Unlock()

		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(rpm))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetUnix, 10))

		c.Next()
	}
}
