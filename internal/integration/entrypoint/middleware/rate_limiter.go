package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// RateLimiter provides IP-based rate limiting backed by Redis, so the
// counters survive restarts and are shared across instances.
type RateLimiter struct {
	client         *redis.Client
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new rate limiter with default settings.
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return NewRateLimiterWithConfig(client, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(client *redis.Client, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		client:         client,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip rate limiting in test environment
		if os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.allow(c.Request.Context(), clientIP)
		if err != nil {
			// Fail open: a Redis outage should not lock users out.
			slog.Error("Rate limiter check failed", "error", err)
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow increments the attempt counter for a key and reports whether it
// is still under the limit. The key expires with the window.
func (rl *RateLimiter) allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(rl.maxAttempts), nil
}

// Reset clears the attempt counter for a key (useful for testing).
func (rl *RateLimiter) Reset(ctx context.Context, key string) error {
	return rl.client.Del(ctx, fmt.Sprintf("ratelimit:%s", key)).Err()
}
