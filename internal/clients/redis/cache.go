package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/idea-incubator/internal/logger"
	"github.com/yungbote/idea-incubator/internal/utils"
)

// Cache is a small byte-value cache backed by redis. A nil *Cache is a valid
// no-op cache, so callers never have to branch on whether redis is configured.
type Cache struct {
	rdb *goredis.Client
	ttl time.Duration
	log *logger.Logger
}

var ErrCacheMiss = errors.New("redis: cache miss")

// NewFromEnv connects using REDIS_ADDR. Returns (nil, nil) when REDIS_ADDR is
// unset, which callers treat as "cache disabled".
func NewFromEnv(baseLog *logger.Logger) (*Cache, error) {
	addr := utils.GetEnv("REDIS_ADDR", "", baseLog)
	if addr == "" {
		return nil, nil
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: utils.GetEnv("REDIS_PASSWORD", "", baseLog),
		DB:       utils.GetEnvAsInt("REDIS_DB", 0, baseLog),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	ttlSeconds := utils.GetEnvAsInt("REDIS_CACHE_TTL_SECONDS", 3600, baseLog)
	return &Cache{
		rdb: rdb,
		ttl: time.Duration(ttlSeconds) * time.Second,
		log: baseLog.With("client", "redis"),
	}, nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil {
		return nil, ErrCacheMiss
	}
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return val, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	if c == nil {
		return nil
	}
	return c.rdb.Set(ctx, key, value, c.ttl).Err()
}

func (c *Cache) Del(ctx context.Context, keys ...string) error {
	if c == nil || len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
