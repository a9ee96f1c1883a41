package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/innov8x/internal/ratelimit"
)

// RejectFunc writes the response for a request the rate limiter turned away.
// status is 429 when the quota is spent and 503 when the limiter is down and
// failing closed.
type RejectFunc func(c *gin.Context, status int, code, message string)

// RateLimiter limits requests per client IP and route.
type RateLimiter struct {
	limiter  ratelimit.Limiter
	failOpen bool
	logger   *zap.SugaredLogger
}

// NewRateLimiter wraps limiter. When the limiter fails the request goes
// through if failOpen is set and is rejected with 503 otherwise.
func NewRateLimiter(limiter ratelimit.Limiter, failOpen bool, logger *zap.SugaredLogger) *RateLimiter {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RateLimiter{limiter: limiter, failOpen: failOpen, logger: logger}
}

// RateLimit returns a middleware answering rejected requests with the JSON
// submission error body. A nil limiter disables limiting.
func RateLimit(limiter ratelimit.Limiter, failOpen bool, logger *zap.SugaredLogger) gin.HandlerFunc {
	return NewRateLimiter(limiter, failOpen, logger).Handler()
}

// Handler returns the middleware with JSON rejections.
func (l *RateLimiter) Handler() gin.HandlerFunc {
	return l.HandlerWith(RejectJSON)
}

// HandlerWith returns the middleware using reject to answer turned away requests.
func (l *RateLimiter) HandlerWith(reject RejectFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.limiter == nil {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		key := c.ClientIP() + ":" + route

		res, err := l.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			l.logger.Warnw("rate limiter unavailable", "key", key, "fail_open", l.failOpen, "error", err)
			if l.failOpen {
				c.Next()
				return
			}
			reject(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "submissions are temporarily unavailable")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(res.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))

		if !res.Allowed {
			retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			reject(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many submissions, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RejectJSON writes the JSON body used by the submission APIs.
func RejectJSON(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"accepted": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// OnlyWhen runs mw for requests matching cond and skips it for the rest.
func OnlyWhen(cond func(c *gin.Context) bool, mw gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cond(c) {
			mw(c)
			return
		}
		c.Next()
	}
}
