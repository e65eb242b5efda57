package cache

import (
	"context"
	"log/slog"
	"time"

	"status-report-server/internal/infra/node"

	"github.com/dgraph-io/ristretto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"
)

const (
	_defaultName = "default"

	_lookupHit  = "hit"
	_lookupMiss = "miss"
)

type Cache interface {
	Get(ctx context.Context, key string) (any, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration) bool
	Delete(ctx context.Context, key string)
	GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error)
}

var _ Cache = (*RistrettoCache)(nil)

type RistrettoCache struct {
	name        string
	store       *ristretto.Cache
	singleGroup singleflight.Group
	lookups     metric.Int64Counter
}

type CacheConfig struct {
	// Name labels the lookup metrics.
	Name string
	// MaxCost bounds the number of entries, every entry costs 1.
	MaxCost     int64
	NumCounters int64
	BufferItems int64
}

func DefaultConfig() *CacheConfig {
	return &CacheConfig{
		Name:        _defaultName,
		MaxCost:     10_000,
		NumCounters: 100_000,
		BufferItems: 64,
	}
}

func New(config *CacheConfig) (*RistrettoCache, error) {
	if config == nil {
		config = DefaultConfig()
	}

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: config.NumCounters,
		MaxCost:     config.MaxCost,
		BufferItems: config.BufferItems,
		OnEvict: func(item *ristretto.Item) {
			slog.Debug("cache entry evicted", slog.Uint64("key_hash", item.Key))
		},
	})
	if err != nil {
		return nil, err
	}

	name := config.Name
	if name == "" {
		name = _defaultName
	}

	lookups, err := otel.Meter(node.ServiceName).Int64Counter(
		"status_report_server_cache_lookups_total",
		metric.WithDescription("Cache lookups by outcome"),
		metric.WithUnit("1"),
	)
	if err != nil {
		slog.Error("creating cache lookups counter", slog.String("cache", name), slog.String("error", err.Error()))
	}

	return &RistrettoCache{name: name, store: store, lookups: lookups}, nil
}

func (c *RistrettoCache) Get(ctx context.Context, key string) (any, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	value, found := c.store.Get(key)
	c.recordLookup(ctx, found)
	return value, found
}

func (c *RistrettoCache) recordLookup(ctx context.Context, found bool) {
	if c.lookups == nil {
		return
	}
	outcome := _lookupMiss
	if found {
		outcome = _lookupHit
	}
	c.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("cache", c.name),
		attribute.String("outcome", outcome),
	))
}

// Set waits for the write buffer so the value is visible to the next Get.
func (c *RistrettoCache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	ok := c.store.SetWithTTL(key, value, 1, ttl)
	c.store.Wait()
	return ok
}

func (c *RistrettoCache) Delete(ctx context.Context, key string) {
	if ctx.Err() != nil {
		return
	}
	c.store.Del(key)
}

// GetOrSet collapses concurrent loads of the same key into one loader call.
func (c *RistrettoCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err, _ := c.singleGroup.Do(key, func() (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if value, found := c.store.Get(key); found {
			return value, nil
		}

		value, err := loader()
		if err != nil {
			return nil, err
		}

		c.Set(ctx, key, value, ttl)
		return value, nil
	})

	return value, err
}
