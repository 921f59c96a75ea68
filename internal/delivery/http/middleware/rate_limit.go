package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"github.com/season-link/profiles/internal/delivery/http/response"
)

// RateLimitConfig holds configuration for the fixed-window rate limiter.
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Shared counter store; nil falls back to per-process in-memory counting
	Redis *goredis.Client
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// Lua script for atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// RateLimit enforces a per-client-IP fixed window. When Redis is unavailable
// the limiter fails open to the in-memory store rather than rejecting
// traffic.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	store := &sync.Map{}

	return func(c *gin.Context) {
		key := "rl:ip:" + c.ClientIP()

		var count int
		if cfg.Redis != nil {
			n, err := redisCount(c.Request.Context(), cfg.Redis, key, cfg.Window)
			if err == nil {
				count = n
			} else {
				count = memoryCount(store, key, cfg.Window)
			}
		} else {
			count = memoryCount(store, key, cfg.Window)
		}

		remaining := cfg.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > cfg.Limit {
			c.Header("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
			response.Error(c, http.StatusTooManyRequests,
				fmt.Sprintf("Rate limit exceeded. Try again in %d seconds.", int(cfg.Window.Seconds())), nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func redisCount(ctx context.Context, client *goredis.Client, key string, window time.Duration) (int, error) {
	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, int(window.Seconds())).Result()
	if err != nil {
		return 0, err
	}
	count, ok := result.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected eval result type %T", result)
	}
	return int(count), nil
}

func memoryCount(store *sync.Map, key string, window time.Duration) int {
	now := time.Now()
	value, _ := store.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(window)})
	entry := value.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count
}
