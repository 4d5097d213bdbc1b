// Package cache provides a best-effort Redis cache for the active
// discount catalog. A miss or a Redis failure falls back to Postgres;
// callers never see cache errors.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/polkiloo/storemart/internal/domain/model"
)

const catalogKey = "storemart:discounts:active"

// DiscountCatalog caches the list the cart-time evaluator runs against.
type DiscountCatalog interface {
	Get(ctx context.Context) ([]model.Discount, bool)
	Set(ctx context.Context, catalog []model.Discount)
	Invalidate(ctx context.Context)
}

// RedisCatalog stores the serialized catalog in Redis with a TTL.
type RedisCatalog struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCatalog connects a catalog cache to the given Redis address.
func NewRedisCatalog(addr string, ttl time.Duration, logger *slog.Logger) *RedisCatalog {
	return &RedisCatalog{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached catalog and whether it was present.
func (c *RedisCatalog) Get(ctx context.Context) ([]model.Discount, bool) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("discount cache read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var catalog []model.Discount
	if err := json.Unmarshal(raw, &catalog); err != nil {
		c.logger.Warn("discount cache payload corrupt", slog.String("error", err.Error()))
		return nil, false
	}
	return catalog, true
}

// Set stores the catalog until the TTL elapses or a write invalidates it.
func (c *RedisCatalog) Set(ctx context.Context, catalog []model.Discount) {
	raw, err := json.Marshal(catalog)
	if err != nil {
		c.logger.Warn("discount cache encode failed", slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("discount cache write failed", slog.String("error", err.Error()))
	}
}

// Invalidate drops the cached catalog after an admin write.
func (c *RedisCatalog) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		c.logger.Warn("discount cache invalidation failed", slog.String("error", err.Error()))
	}
}

// Close releases the Redis connection.
func (c *RedisCatalog) Close() error {
	return c.client.Close()
}

// NopCatalog is used when no Redis address is configured.
type NopCatalog struct{}

func (NopCatalog) Get(context.Context) ([]model.Discount, bool) { return nil, false }
func (NopCatalog) Set(context.Context, []model.Discount)        {}
func (NopCatalog) Invalidate(context.Context)                   {}
