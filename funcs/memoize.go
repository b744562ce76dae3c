package funcs

import (
	"context"

	lru "github.com/hashicorp/golang-lru"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// MemoOption configures [Memoize].
type MemoOption func(*memoConfig)

type memoConfig struct {
	keys     KeyStrategy
	capacity int
	meter    metric.Meter
	name     string
}

func defaultMemoConfig() memoConfig {
	return memoConfig{
		keys:  KeyNative,
		meter: noop.NewMeterProvider().Meter("funcs"),
		name:  "memoize",
	}
}

// WithKeys selects the cache key coercion. The default is [KeyNative].
func WithKeys(s KeyStrategy) MemoOption {
	return func(c *memoConfig) { c.keys = s }
}

// WithCapacity bounds the cache to n entries, evicting the least recently
// used. Zero or a negative n means unbounded, the default.
func WithCapacity(n int) MemoOption {
	return func(c *memoConfig) { c.capacity = n }
}

// WithMeter records cache hits and misses on m as the counters
// "memoize.hits" and "memoize.misses".
func WithMeter(m metric.Meter) MemoOption {
	return func(c *memoConfig) {
		if m != nil {
			c.meter = m
		}
	}
}

// WithName sets the "memoize.name" attribute attached to recorded metrics.
func WithName(name string) MemoOption {
	return func(c *memoConfig) { c.name = name }
}

// Memoize returns a function that caches fn's result per argument. A call
// with an argument seen before returns the stored result without calling
// fn; any other call invokes fn, stores the result and returns it.
//
//	square := funcs.Memoize(func(n int) int { return n * n })
//
// The cache belongs to the returned function and lives as long as it does.
// fn must depend on nothing but its argument: results are never
// invalidated.
func Memoize[K comparable, V any](fn func(K) V, opts ...MemoOption) func(K) V {
	cfg := defaultMemoConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	keyOf := cfg.keys.keyFunc()
	cache := newMemoStore(cfg.capacity)
	stats := newMemoStats(cfg)

	return func(arg K) V {
		key := keyOf(arg)
		if raw, ok := cache.get(key); ok {
			stats.hit()
			v, _ := raw.(V)
			return v
		}
		v := fn(arg)
		cache.put(key, v)
		stats.miss()
		return v
	}
}

type memoStore interface {
	get(key any) (any, bool)
	put(key, value any)
}

func newMemoStore(capacity int) memoStore {
	if capacity > 0 {
		if c, err := lru.New(capacity); err == nil {
			return lruStore{c}
		}
	}
	return mapStore{}
}

type mapStore map[any]any

func (m mapStore) get(key any) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapStore) put(key, value any) { m[key] = value }

type lruStore struct{ cache *lru.Cache }

func (s lruStore) get(key any) (any, bool) { return s.cache.Get(key) }

func (s lruStore) put(key, value any) { s.cache.Add(key, value) }

type memoStats struct {
	hits   metric.Int64Counter
	misses metric.Int64Counter
	attrs  metric.AddOption
}

func newMemoStats(cfg memoConfig) memoStats {
	hits, err := cfg.meter.Int64Counter("memoize.hits",
		metric.WithDescription("calls answered from the memo cache"))
	if err != nil {
		hits = noop.Int64Counter{}
	}
	misses, err := cfg.meter.Int64Counter("memoize.misses",
		metric.WithDescription("calls that invoked the memoized function"))
	if err != nil {
		misses = noop.Int64Counter{}
	}
	return memoStats{
		hits:   hits,
		misses: misses,
		attrs: metric.WithAttributes(
			attribute.String("memoize.name", cfg.name),
			attribute.String("memoize.keys", cfg.keys.String()),
		),
	}
}

func (s memoStats) hit()  { s.hits.Add(context.Background(), 1, s.attrs) }
func (s memoStats) miss() { s.misses.Add(context.Background(), 1, s.attrs) }
