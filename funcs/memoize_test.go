package funcs_test

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/hasbyte1/go-underbar/funcs"
)

func counted[K comparable, V any](fn func(K) V) (func(K) V, *int) {
	calls := 0
	return func(k K) V {
		calls++
		return fn(k)
	}, &calls
}

func TestMemoizeCachesPerArgument(t *testing.T) {
	square, calls := counted(func(n int) int { return n * n })
	memo := funcs.Memoize(square)

	assert.Equal(t, 9, memo(3))
	assert.Equal(t, 9, memo(3))
	assert.Equal(t, 1, *calls)

	assert.Equal(t, 16, memo(4))
	assert.Equal(t, 2, *calls)
}

func TestMemoizeCachesZeroAndNilResults(t *testing.T) {
	fn, calls := counted(func(s string) error { return nil })
	memo := funcs.Memoize(fn)

	assert.NoError(t, memo("x"))
	assert.NoError(t, memo("x"))
	assert.Equal(t, 1, *calls)
}

func TestMemoizeInstancesAreIndependent(t *testing.T) {
	fn, calls := counted(func(n int) int { return n })
	a, b := funcs.Memoize(fn), funcs.Memoize(fn)

	a(1)
	b(1)
	assert.Equal(t, 2, *calls)
}

func TestMemoizeRecursive(t *testing.T) {
	calls := 0
	var fib func(int) int
	fib = funcs.Memoize(func(n int) int {
		calls++
		if n < 2 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})

	assert.Equal(t, 832040, fib(30))
	assert.Equal(t, 31, calls)
}

func TestMemoizeNativeKeysKeepTypesApart(t *testing.T) {
	fn, calls := counted(func(v any) string { return fmt.Sprintf("%T", v) })
	memo := funcs.Memoize(fn)

	assert.Equal(t, "int", memo(1))
	assert.Equal(t, "string", memo("1"))
	assert.Equal(t, 2, *calls)
}

func TestMemoizeNativeKeysAcceptUncomparableArguments(t *testing.T) {
	fn, calls := counted(func(v any) string { return fmt.Sprint(v) })
	memo := funcs.Memoize(fn)

	assert.NotPanics(t, func() {
		assert.Equal(t, "[1 2]", memo([]int{1, 2}))
		assert.Equal(t, "[1 2]", memo([]int{1, 2}))
		assert.Equal(t, "map[a:1]", memo(map[string]int{"a": 1}))
	})
	assert.Equal(t, 2, *calls)

	memo("[]int\x00[1 2]")
	assert.Equal(t, 3, *calls, "fallback keys never match string arguments")

	memo(nil)
	memo(nil)
	assert.Equal(t, 4, *calls)
}

func TestMemoizeStringKeysCollideOnEqualPrintedForms(t *testing.T) {
	fn, calls := counted(func(v any) string { return fmt.Sprintf("%T", v) })
	memo := funcs.Memoize(fn, funcs.WithKeys(funcs.KeyString))

	assert.Equal(t, "int", memo(1))
	assert.Equal(t, "int", memo("1"), "1 and \"1\" share a key under KeyString")
	assert.Equal(t, 1, *calls)
}

type celsius float64

func (c celsius) String() string { return fmt.Sprintf("%.0fC", float64(c)) }

func TestMemoizeStringKeysUseStringer(t *testing.T) {
	fn, calls := counted(func(c celsius) float64 { return float64(c)*9/5 + 32 })
	memo := funcs.Memoize(fn, funcs.WithKeys(funcs.KeyString))

	assert.InDelta(t, 212.0, memo(100), 1e-9)
	assert.InDelta(t, 212.0, memo(100.2), 1e-9, "100.2 prints as 100C")
	assert.Equal(t, 1, *calls)
}

func TestMemoizeHashedKeys(t *testing.T) {
	for _, keys := range []funcs.KeyStrategy{funcs.KeyDigest, funcs.KeyHash64} {
		t.Run(keys.String(), func(t *testing.T) {
			fn, calls := counted(func(v any) string { return fmt.Sprintf("%T", v) })
			memo := funcs.Memoize(fn, funcs.WithKeys(keys))

			long := strings.Repeat("x", 4096)
			assert.Equal(t, "string", memo(long))
			assert.Equal(t, "string", memo(long))
			assert.Equal(t, "int", memo(1))
			assert.Equal(t, "string", memo("1"), "type tag keeps 1 and \"1\" apart")
			assert.Equal(t, 3, *calls)
		})
	}
}

func TestKeyStrategyString(t *testing.T) {
	assert.Equal(t, "native", funcs.KeyNative.String())
	assert.Equal(t, "KeyStrategy(9)", funcs.KeyStrategy(9).String())
}

func TestMemoizeWithCapacityEvictsLeastRecentlyUsed(t *testing.T) {
	fn, calls := counted(func(n int) int { return -n })
	memo := funcs.Memoize(fn, funcs.WithCapacity(2))

	memo(1)
	memo(2)
	memo(1) // 1 is now most recent
	memo(3) // evicts 2
	assert.Equal(t, 3, *calls)

	memo(1)
	assert.Equal(t, 3, *calls, "1 still cached")
	memo(2)
	assert.Equal(t, 4, *calls, "2 was evicted")
}

type countingMeter struct {
	noop.Meter
	counts map[string]*atomic.Int64
}

type countingCounter struct {
	noop.Int64Counter
	n *atomic.Int64
}

func (c countingCounter) Add(_ context.Context, incr int64, _ ...metric.AddOption) {
	c.n.Add(incr)
}

func (m *countingMeter) Int64Counter(name string, _ ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	n := &atomic.Int64{}
	m.counts[name] = n
	return countingCounter{n: n}, nil
}

func TestMemoizeRecordsHitsAndMisses(t *testing.T) {
	meter := &countingMeter{counts: map[string]*atomic.Int64{}}
	memo := funcs.Memoize(func(n int) int { return n }, funcs.WithMeter(meter), funcs.WithName("identity"))

	memo(1)
	memo(1)
	memo(1)
	memo(2)

	assert.EqualValues(t, 2, meter.counts["memoize.hits"].Load())
	assert.EqualValues(t, 2, meter.counts["memoize.misses"].Load())
}
