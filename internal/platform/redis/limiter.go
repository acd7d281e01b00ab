package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces limiter counters.
const DefaultKeyPrefix = "flashcards:ratelimit"

// FixedWindowLimiter counts requests per key in fixed windows of length
// period. Each window has its own counter key, created by INCR and expired
// in the same transaction.
type FixedWindowLimiter struct {
	client goredis.Cmdable
	limit  int
	period time.Duration
	prefix string
	now    func() time.Time
}

// NewFixedWindowLimiter allows limit requests per key in each period.
func NewFixedWindowLimiter(client goredis.Cmdable, limit int, period time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		client: client,
		limit:  limit,
		period: period,
		prefix: DefaultKeyPrefix,
		now:    time.Now,
	}
}

// WithPrefix returns a copy of l that stores counters under prefix.
func (l *FixedWindowLimiter) WithPrefix(prefix string) *FixedWindowLimiter {
	cp := *l
	cp.prefix = prefix
	return &cp
}

// Allow reports whether one more request for key fits in the current
// window and, if not, how long until the window ends.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := l.now()
	windowStart := now.Truncate(l.period)
	counterKey := l.counterKey(key, windowStart)

	var incr *goredis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, counterKey)
		pipe.Expire(ctx, counterKey, l.period)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("rate limit counter for %q: %w", key, err)
	}

	if incr.Val() > int64(l.limit) {
		return false, windowStart.Add(l.period).Sub(now), nil
	}
	return true, 0, nil
}

func (l *FixedWindowLimiter) counterKey(key string, windowStart time.Time) string {
	return l.prefix + ":" + key + ":" + strconv.FormatInt(windowStart.Unix(), 10)
}
