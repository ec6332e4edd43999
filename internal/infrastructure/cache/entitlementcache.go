// Package cache provides Redis-backed caches.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/resumelift/resumelift/internal/domain/subscription"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

const entitlementTTL = 5 * time.Minute

// RedisEntitlementCache caches resolved entitlements per user. Entries are
// short-lived and invalidated on every subscription or usage change, so a
// stale read can only survive a cache-invalidation failure for the TTL.
type RedisEntitlementCache struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisEntitlementCache(client *redis.Client, logger logger.Interface) *RedisEntitlementCache {
	return &RedisEntitlementCache{client: client, logger: logger}
}

func entitlementKey(userID uint) string {
	return fmt.Sprintf("entitlement:user:%d", userID)
}

func (c *RedisEntitlementCache) Get(ctx context.Context, userID uint) (*subscription.Entitlement, error) {
	data, err := c.client.Get(ctx, entitlementKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read entitlement cache: %w", err)
	}

	var ent subscription.Entitlement
	if err := json.Unmarshal(data, &ent); err != nil {
		// A corrupt entry is treated as a miss, not an error.
		c.logger.Warnw("corrupt entitlement cache entry", "user_id", userID, "error", err)
		return nil, nil
	}

	return &ent, nil
}

func (c *RedisEntitlementCache) Set(ctx context.Context, userID uint, ent *subscription.Entitlement) error {
	data, err := json.Marshal(ent)
	if err != nil {
		return fmt.Errorf("failed to marshal entitlement: %w", err)
	}

	if err := c.client.Set(ctx, entitlementKey(userID), data, entitlementTTL).Err(); err != nil {
		return fmt.Errorf("failed to write entitlement cache: %w", err)
	}
	return nil
}

func (c *RedisEntitlementCache) Invalidate(ctx context.Context, userID uint) error {
	if err := c.client.Del(ctx, entitlementKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate entitlement cache: %w", err)
	}
	return nil
}

// NoopEntitlementCache is used when Redis is not configured; every read is a
// miss and writes succeed silently.
type NoopEntitlementCache struct{}

func NewNoopEntitlementCache() *NoopEntitlementCache { return &NoopEntitlementCache{} }

func (NoopEntitlementCache) Get(context.Context, uint) (*subscription.Entitlement, error) {
	return nil, nil
}
func (NoopEntitlementCache) Set(context.Context, uint, *subscription.Entitlement) error { return nil }
func (NoopEntitlementCache) Invalidate(context.Context, uint) error                     { return nil }
