package arraylist

import (
	"github.com/prometheus/client_golang/prometheus"
)

// All methods are no-ops on a nil *metrics, which is what lists without Prometheus get.
type metrics struct {
	itemsAdded   prometheus.Counter
	itemsRemoved prometheus.Counter
	grows        prometheus.Counter
	itemsCopied  prometheus.Counter
	rangeErrors  prometheus.Counter
}

func (m *metrics) added(n int) {
	if m == nil || n == 0 {
		return
	}
	m.itemsAdded.Add(float64(n))
}

func (m *metrics) removed(n int) {
	if m == nil || n == 0 {
		return
	}
	m.itemsRemoved.Add(float64(n))
}

func (m *metrics) grew(copied int) {
	if m == nil {
		return
	}
	m.grows.Inc()
	m.itemsCopied.Add(float64(copied))
}

func (m *metrics) outOfRange() {
	if m == nil {
		return
	}
	m.rangeErrors.Inc()
}
