package arraylist_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/teenjuna/arraylist"
	"github.com/teenjuna/arraylist/internal/testing/require"
)

func TestPrometheus(t *testing.T) {
	registry := prometheus.NewRegistry()
	cfg := arraylist.Prometheus(registry, func(c *arraylist.PrometheusConfig) {
		c.Grows.Help = "Custom help"
	})
	withMetrics := func(c *arraylist.Config) {
		c.Capacity(2)
		c.Prometheus(cfg)
	}

	l1 := arraylist.New[int](withMetrics)
	l2 := arraylist.New[int](withMetrics)

	for i := range 3 {
		l1.Add(i)
	}
	require.Nil(t, l2.Insert(0, 1))
	_, err := l1.RemoveAt(0)
	require.Nil(t, err)
	_, err = l1.Get(10)
	require.ErrorIs(t, err, arraylist.ErrOutOfRange)
	l1.Clear()

	count, err := testutil.GatherAndCount(registry)
	require.Nil(t, err)
	require.Equal(t, count, 5)
	require.Equal(t, counter(t, registry, "arraylist_items_added"), float64(4))
	require.Equal(t, counter(t, registry, "arraylist_items_removed"), float64(3))
	require.Equal(t, counter(t, registry, "arraylist_grows"), float64(1))
	require.Equal(t, counter(t, registry, "arraylist_items_copied"), float64(2))
	require.Equal(t, counter(t, registry, "arraylist_range_errors"), float64(1))
}

func TestPrometheusUnregistered(t *testing.T) {
	cfg := arraylist.Prometheus(nil)
	list := arraylist.New[string](func(c *arraylist.Config) { c.Prometheus(cfg) })
	list.Add("a")
	require.Equal(t, list.Remove("a"), true)

	// Collectors are created once per config, so sharing it doesn't register anything twice.
	registry := prometheus.NewRegistry()
	shared := arraylist.Prometheus(registry)
	for range 3 {
		arraylist.New[string](func(c *arraylist.Config) { c.Prometheus(shared) }).Add("a")
	}
	require.Equal(t, counter(t, registry, "arraylist_items_added"), float64(3))
}

func TestPrometheusSharedRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := arraylist.Prometheus(registry)
	second := arraylist.Prometheus(registry)

	l1 := arraylist.New[int](func(c *arraylist.Config) { c.Prometheus(first) })
	var l2 *arraylist.List[int]
	require.NotPanics(t, func() {
		l2 = arraylist.New[int](func(c *arraylist.Config) { c.Prometheus(second) })
	})

	l1.Add(1)
	l2.Add(2)
	l2.Add(3)

	count, err := testutil.GatherAndCount(registry)
	require.Nil(t, err)
	require.Equal(t, count, 5)
	require.Equal(t, counter(t, registry, "arraylist_items_added"), float64(3))
}

func TestPrometheusConflictingRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	l1 := arraylist.New[int](func(c *arraylist.Config) { c.Prometheus(arraylist.Prometheus(registry)) })

	conflicting := arraylist.Prometheus(registry, func(c *arraylist.PrometheusConfig) {
		c.RangeErrors.Help = "Different help"
	})
	withConflicting := func(c *arraylist.Config) { c.Prometheus(conflicting) }

	require.Panics(t, func() { arraylist.New[int](withConflicting) })

	// The config stays usable after the failed registration, and counters registered before the
	// conflict are shared.
	var l2 *arraylist.List[int]
	require.NotPanics(t, func() { l2 = arraylist.New[int](withConflicting) })
	require.NotNil(t, l2)

	l1.Add(1)
	l2.Add(2)
	_, err := l2.Get(5)
	require.ErrorIs(t, err, arraylist.ErrOutOfRange)

	require.Equal(t, counter(t, registry, "arraylist_items_added"), float64(2))
	require.Equal(t, counter(t, registry, "arraylist_range_errors"), float64(0))
}

func counter(t *testing.T, registry *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := registry.Gather()
	require.Nil(t, err)

	for _, family := range families {
		if family.GetName() == name {
			return family.GetMetric()[0].GetCounter().GetValue()
		}
	}

	t.Fatalf("metric %s not found", name)
	return 0
}
