package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	portssvc "github.com/KamilKvasnicka/player-wallet/internal/core/ports/services"
)

const balanceKeyPrefix = "wallet:balance:"

// NewRedisClient creates and pings a Redis client.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return client, nil
}

// RedisBalanceCache stores wallet balances as plain decimal strings under
// wallet:balance:<playerID>, expiring after ttl.
type RedisBalanceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisBalanceCache(client *redis.Client, ttl time.Duration) *RedisBalanceCache {
	return &RedisBalanceCache{client: client, ttl: ttl}
}

// Ensure RedisBalanceCache implements portssvc.BalanceCache
var _ portssvc.BalanceCache = (*RedisBalanceCache)(nil)

func balanceKey(playerID string) string {
	return balanceKeyPrefix + playerID
}

// GetBalance returns the cached balance, or (zero, false) on a miss.
func (c *RedisBalanceCache) GetBalance(ctx context.Context, playerID string) (decimal.Decimal, bool, error) {
	raw, err := c.client.Get(ctx, balanceKey(playerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("failed to read cached balance: %w", err)
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		// Unparseable entries are treated as a miss so the caller falls
		// through to the database.
		return decimal.Zero, false, fmt.Errorf("corrupt cached balance %q: %w", raw, err)
	}
	return balance, true, nil
}

// SetBalance caches the balance with the configured TTL.
func (c *RedisBalanceCache) SetBalance(ctx context.Context, playerID string, balance decimal.Decimal) error {
	return c.client.Set(ctx, balanceKey(playerID), balance.String(), c.ttl).Err()
}

// Invalidate drops the cached balance.
func (c *RedisBalanceCache) Invalidate(ctx context.Context, playerID string) error {
	return c.client.Del(ctx, balanceKey(playerID)).Err()
}
