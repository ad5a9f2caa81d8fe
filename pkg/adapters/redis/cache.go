// Package redis provides a read-through cache that decorates any
// ports.CoefficientProvider. Resolved groups are kept as JSON entries
// under a configurable key prefix, so repeated lookups against a slow
// backing table (e.g. Postgres across a WAN) hit Redis instead.
//
// Caching is best effort: a failed cache write never fails the lookup,
// and when Redis is unreachable lookups fall through to the wrapped
// provider. Only successful resolutions are cached; misses always reach
// the backing table.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jwlunsford/stems/pkg/domain"
	"github.com/jwlunsford/stems/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Cache implements ports.CoefficientProvider around another provider.
type Cache struct {
	client *backend.Client
	inner  ports.CoefficientProvider
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached entries. The default is no
// expiration, which suits published tables that change between releases,
// not at runtime; set a TTL when the backing table is edited live.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached entries.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a Redis client and wraps the given provider with it.
func New(address, password string, db int, inner ports.CoefficientProvider, opts ...Option) *Cache {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, inner, opts...)
}

// NewFromClient wraps the given provider using an existing client.
func NewFromClient(client *backend.Client, inner ports.CoefficientProvider, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		inner:  inner,
		prefix: "stems:coeff:",
		ttl:    0,
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

// Close closes the redis client. The wrapped provider is not touched.
func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) regKey(region, species string, bark domain.Bark) string {
	return fmt.Sprintf("%sreg:%s|%s|%d", c.prefix, region, species, int(bark))
}

func (c *Cache) segKey(species string, bark domain.Bark) string {
	return fmt.Sprintf("%sseg:%s|%d", c.prefix, species, int(bark))
}

func (c *Cache) wgtKey(species string) string {
	return fmt.Sprintf("%swgt:%s", c.prefix, species)
}

// FindRegression serves the regression group from cache, falling back to
// the wrapped provider.
func (c *Cache) FindRegression(ctx context.Context, region, species string, bark domain.Bark) (domain.RegressionCoefficients, error) {
	return lookup(ctx, c, c.regKey(region, species, bark), func(ctx context.Context) (domain.RegressionCoefficients, error) {
		return c.inner.FindRegression(ctx, region, species, bark)
	})
}

// FindSegmentation serves the segmentation group from cache, falling
// back to the wrapped provider.
func (c *Cache) FindSegmentation(ctx context.Context, species string, bark domain.Bark) (domain.SegmentationCoefficients, error) {
	return lookup(ctx, c, c.segKey(species, bark), func(ctx context.Context) (domain.SegmentationCoefficients, error) {
		return c.inner.FindSegmentation(ctx, species, bark)
	})
}

// FindWeight serves the weight factor from cache, falling back to the
// wrapped provider.
func (c *Cache) FindWeight(ctx context.Context, species string) (domain.WeightCoefficient, error) {
	return lookup(ctx, c, c.wgtKey(species), func(ctx context.Context) (domain.WeightCoefficient, error) {
		return c.inner.FindWeight(ctx, species)
	})
}

// ListSpecies forwards to the wrapped provider; enumeration is not worth
// caching.
func (c *Cache) ListSpecies(ctx context.Context) ([]string, error) {
	if l, ok := c.inner.(ports.SpeciesLister); ok {
		return l.ListSpecies(ctx)
	}
	return nil, fmt.Errorf("wrapped provider cannot enumerate species")
}

// lookup implements the read-through flow shared by the three lookups.
func lookup[T any](ctx context.Context, c *Cache, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var cached T
		if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
			return cached, nil
		}
		// Corrupt entry: fall through and overwrite it below.
	} else if err != backend.Nil {
		// Cache unreachable: serve straight from the backing table.
		return fetch(ctx)
	}

	out, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if data, jsonErr := json.Marshal(out); jsonErr == nil {
		c.client.Set(ctx, key, data, c.ttl)
	}
	return out, nil
}
