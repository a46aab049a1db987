package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"one48-planner/pkg/response"
)

// UserIDHeader carries the scope key; absent means the single-user default.
const (
	UserIDHeader  = "X-User-ID"
	DefaultUserID = "default"
	scopeKey      = "planner.user_id"
)

// UserScope resolves the request's user id into the gin context.
func (m Middleware) UserScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			userID = DefaultUserID
		}
		c.Set(scopeKey, userID)
		c.Next()
	}
}

// UserID reads the resolved user id back out of the gin context.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(scopeKey); ok {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	return DefaultUserID
}

// RequestLogger logs one line per request with latency and status.
func (m Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.l.Infof(c.Request.Context(), "%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// RateLimit rejects clients that exceed the per-IP budget.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.rate, m.burst)
			m.limiters.Add(key, limiter)
		}
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
