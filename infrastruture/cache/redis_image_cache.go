package cache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const lockSuffix = ":render_lock"

// RedisImageCache stores rendered maze images in Redis with a TTL and guards
// rendering with a distributed lock per key.
type RedisImageCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisImageCache initializes a RedisImageCache with the provided Redis client and TTL.
func NewRedisImageCache(client *redis.Client, ttlSeconds int) (i.ImageCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}

	cache := &RedisImageCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Get returns the image stored under key, if any.
func (c *RedisImageCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores data under key for the cache TTL.
func (c *RedisImageCache) Set(ctx context.Context, key string, data []byte) error {
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Lock obtains the render lock for key and returns the function releasing it.
func (c *RedisImageCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(key + lockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		_, _ = mutex.Unlock()
	}, nil
}
