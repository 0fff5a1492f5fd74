package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"zevro/internal/pkg/response"
)

// Counter counts hits per key within a rolling window. The in-memory
// implementation is the default; the Redis one serves multi-process
// deployments behind the same contract.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimit enforces `limit` requests per client IP per `window` on the
// wrapped routes. Counter errors fail open: a broken counter must not take
// the site down.
func RateLimit(counter Counter, resource string, limit int, window time.Duration, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rl:" + resource + ":" + c.ClientIP()

		count, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			c.Next()
			return
		}

		if count > int64(limit) {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", message)
			c.Abort()
			return
		}

		c.Next()
	}
}

// MemoryCounter is a sliding-window hit counter for single-process use
type MemoryCounter struct {
	mu        sync.Mutex
	hits      map[string][]time.Time
	lastSweep time.Time
	clock     func() time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		hits:  make(map[string][]time.Time),
		clock: time.Now,
	}
}

func (m *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock()
	cutoff := now.Add(-window)

	kept := m.hits[key][:0]
	for _, ts := range m.hits[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	kept = append(kept, now)
	m.hits[key] = kept

	if now.Sub(m.lastSweep) > window {
		m.sweep(cutoff)
		m.lastSweep = now
	}

	return int64(len(kept)), nil
}

// sweep drops keys whose hits all fell out of the window. Caller holds mu.
func (m *MemoryCounter) sweep(cutoff time.Time) {
	for key, stamps := range m.hits {
		live := false
		for _, ts := range stamps {
			if ts.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(m.hits, key)
		}
	}
}

// RedisCounter keys hits in Redis with INCR + EXPIRE
type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		r.client.Expire(ctx, key, window)
	}
	return count, nil
}
