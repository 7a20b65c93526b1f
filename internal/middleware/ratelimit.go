package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/stemsi/school-api/internal/config"
	"github.com/stemsi/school-api/internal/response"
)

// Counter increments a windowed counter and returns its new value.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter keeps fixed-window counters in Redis so limits hold across
// replicas without any in-process state.
type RedisCounter struct {
	rdb *redis.Client
}

func NewRedisCounter(rdb *redis.Client) *RedisCounter {
	return &RedisCounter{rdb: rdb}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimiter allows rate requests per client IP per interval.
type RateLimiter struct {
	counter  Counter
	rate     int
	interval time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewRateLimiter creates a RateLimiter (e.g., 5 submissions per minute).
// A nil counter disables limiting.
func NewRateLimiter(counter Counter, rate int, interval time.Duration, log zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		counter:  counter,
		rate:     rate,
		interval: interval,
		now:      time.Now,
		log:      log.With().Str("component", "rate_limiter").Logger(),
	}
}

// Middleware returns a Gin middleware that rate-limits requests by IP.
// Counter failures let the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.counter == nil || rl.rate <= 0 || rl.interval <= 0 {
			c.Next()
			return
		}

		ip := c.ClientIP()
		bucket := rl.now().UnixNano() / int64(rl.interval)
		key := config.CacheKey.ContactRateKey(ip, bucket)

		n, err := rl.counter.Incr(c.Request.Context(), key, rl.interval)
		if err != nil {
			rl.log.Warn().Err(err).Str("ip", ip).Msg("rate limit counter unavailable")
			c.Next()
			return
		}

		if n > int64(rl.rate) {
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}
