package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type TokenBucket interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// ARGV: now_ms, capacity, refill_per_second. Ключ живет, пока ведро не
// наполнится заново.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local rate = tonumber(ARGV[3])

local state = redis.call('HMGET', key, 'tokens', 'ts')
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
	tokens = capacity
	ts = now_ms
end

local elapsed = math.max(0, now_ms - ts)
tokens = math.min(capacity, tokens + elapsed * rate / 1000)

local allowed = 0
if tokens >= 1 then
	tokens = tokens - 1
	allowed = 1
end

redis.call('HSET', key, 'tokens', tokens, 'ts', now_ms)
redis.call('PEXPIRE', key, math.ceil(capacity / rate * 1000) + 1000)

return allowed
`)

type RedisBucket struct {
	client          redis.Scripter
	prefix          string
	capacity        int
	refillPerSecond float64
}

func NewRedisBucket(client redis.Scripter, prefix string, capacity int, refillPerSecond float64) *RedisBucket {
	return &RedisBucket{
		client:          client,
		prefix:          prefix,
		capacity:        capacity,
		refillPerSecond: refillPerSecond,
	}
}

func (b *RedisBucket) Allow(ctx context.Context, key string) (bool, error) {
	allowed, err := tokenBucketScript.Run(ctx, b.client, []string{b.prefix + key},
		time.Now().UnixMilli(), b.capacity, b.refillPerSecond,
	).Int()
	if err != nil {
		return false, fmt.Errorf("run token bucket: %w", err)
	}
	return allowed == 1, nil
}

// RateLimit ограничивает частоту запросов с одного IP. Без ведра пропускает
// все запросы; ошибки Redis не блокируют клиента.
func RateLimit(bucket TokenBucket, retryAfter time.Duration, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if bucket == nil {
			c.Next()
			return
		}

		allowed, err := bucket.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn("rate limiter unavailable, request allowed",
				logger.String("client_ip", c.ClientIP()),
				logger.String("error", err.Error()),
			)
			c.Next()
			return
		}

		if !allowed {
			secs := int(retryAfter.Round(time.Second) / time.Second)
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ginext.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
