// Package metrics provides small named-counter/gauge/histogram helpers
// backed by a package-level prometheus registry, in the style of
// vechain-thor/metrics: call Counter/Gauge/Histogram by name wherever an
// instrumentation point needs one, without threading a registry reference
// through every layer of the call stack.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	mu         sync.Mutex
	counters   = map[string]prometheus.Counter{}
	gauges     = map[string]prometheus.Gauge{}
	histograms = map[string]prometheus.Histogram{}
)

const namespace = "barctrie"

// Counter returns the named counter, registering it on first use.
func Counter(name string) prometheus.Counter {
	mu.Lock()
	defer mu.Unlock()
	if c, ok := counters[name]; ok {
		return c
	}
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
	})
	registry.MustRegister(c)
	counters[name] = c
	return c
}

// Gauge returns the named gauge, registering it on first use.
func Gauge(name string) prometheus.Gauge {
	mu.Lock()
	defer mu.Unlock()
	if g, ok := gauges[name]; ok {
		return g
	}
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
	})
	registry.MustRegister(g)
	gauges[name] = g
	return g
}

// Histogram returns the named histogram, registering it with buckets on
// first use. A nil buckets slice falls back to prometheus.DefBuckets.
func Histogram(name string, buckets []float64) prometheus.Histogram {
	mu.Lock()
	defer mu.Unlock()
	if h, ok := histograms[name]; ok {
		return h
	}
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	h := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      name,
		Buckets:   buckets,
	})
	registry.MustRegister(h)
	histograms[name] = h
	return h
}

// HTTPHandler exposes the registry for scraping at /metrics.
func HTTPHandler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
