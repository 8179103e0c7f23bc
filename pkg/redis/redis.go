package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"stillmind/backend/config"
	pkgerrors "stillmind/backend/pkg/errors"
)

// Client wraps the Redis connection.
// Used for the per-user schedule-list cache and the rate limiter; the
// whole application degrades gracefully when the client is nil.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and pings it once.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── schedule-list cache ──

const scheduleListPrefix = "schedules:user:"

// scheduleListTTL bounds staleness when an invalidation is lost.
const scheduleListTTL = 10 * time.Minute

// GetScheduleList returns the cached list payload for a user.
// Returns pkgerrors.ErrCacheMiss when the key is absent.
func (c *Client) GetScheduleList(ctx context.Context, userID string, dest interface{}) error {
	raw, err := c.rdb.Get(ctx, scheduleListPrefix+userID).Bytes()
	if err == goredis.Nil {
		return pkgerrors.ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

// SetScheduleList caches the list payload for a user.
func (c *Client) SetScheduleList(ctx context.Context, userID string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, scheduleListPrefix+userID, raw, scheduleListTTL).Err()
}

// InvalidateScheduleList drops the cached list after a mutation.
func (c *Client) InvalidateScheduleList(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, scheduleListPrefix+userID).Err()
}

// ── rate limiting ──

// CheckRateLimit implements a sliding window over a sorted set.
// Returns true when the request is allowed.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	windowStart := now.Add(-window)

	pipe := c.rdb.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, goredis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return countCmd.Val() < int64(limit), nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
