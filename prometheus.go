package arraylist

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusConfig is a config of the Prometheus metrics provided by the list.
//
// An instance can be created only by the [Prometheus] function. The zero value is invalid.
//
// Collectors are created and registered once, when the first list using the config is created,
// so the same config can be shared by many lists. Their counters are then aggregated. Configs
// with identical options can also share a registerer: the counters registered first are reused.
type PrometheusConfig struct {
	// Namespace of the metrics.
	Namespace string
	// Subsystem of the metrics.
	Subsystem string
	// Options for the added items counter.
	ItemsAdded prometheus.CounterOpts
	// Options for the removed items counter.
	ItemsRemoved prometheus.CounterOpts
	// Options for the capacity grows counter.
	Grows prometheus.CounterOpts
	// Options for the counter of items copied during grows.
	ItemsCopied prometheus.CounterOpts
	// Options for the out of range errors counter.
	RangeErrors prometheus.CounterOpts

	registerer prometheus.Registerer
	once       sync.Once
	m          *metrics
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If registerer is nil,
// metrics will not be registered. Many default parameters can be configured by passing
// configuration functions.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = "arraylist"
		subsystem = ""
	)

	c := PrometheusConfig{
		registerer: registerer,
		Namespace:  namespace,
		Subsystem:  subsystem,
		ItemsAdded: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items_added",
			Help:      "Number of items added to lists",
		},
		ItemsRemoved: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items_removed",
			Help:      "Number of items removed from lists, including cleared ones",
		},
		Grows: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "grows",
			Help:      "Number of backing buffer reallocations",
		},
		ItemsCopied: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items_copied",
			Help:      "Number of items copied into reallocated backing buffers",
		},
		RangeErrors: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "range_errors",
			Help:      "Number of operations rejected with an out of range index",
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

func (c *PrometheusConfig) metrics() *metrics {
	if c == nil {
		return nil
	}

	c.once.Do(func() {
		c.m = &metrics{
			itemsAdded:   prometheus.NewCounter(c.ItemsAdded),
			itemsRemoved: prometheus.NewCounter(c.ItemsRemoved),
			grows:        prometheus.NewCounter(c.Grows),
			itemsCopied:  prometheus.NewCounter(c.ItemsCopied),
			rangeErrors:  prometheus.NewCounter(c.RangeErrors),
		}

		if c.registerer == nil {
			return
		}

		// c.m is already set, so a registration panic leaves lists with working, if partially
		// unregistered, metrics.
		c.m.itemsAdded = c.register(c.m.itemsAdded)
		c.m.itemsRemoved = c.register(c.m.itemsRemoved)
		c.m.grows = c.register(c.m.grows)
		c.m.itemsCopied = c.register(c.m.itemsCopied)
		c.m.rangeErrors = c.register(c.m.rangeErrors)
	})

	return c.m
}

// register registers the counter, or returns the identical counter registered earlier by another
// config. Any other registration error panics, like [prometheus.Registerer.MustRegister] does.
func (c *PrometheusConfig) register(counter prometheus.Counter) prometheus.Counter {
	err := c.registerer.Register(counter)
	if err == nil {
		return counter
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
			return existing
		}
	}

	panic(err)
}
