package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the Prometheus registry, the /metrics HTTP server and the
// instruments the guide pipeline reports into.
type Metrics struct {
	Server   *http.Server
	Registry *prometheus.Registry

	guidesTotal       *prometheus.CounterVec
	retrievedPassages prometheus.Counter
	retrievalFailures prometheus.Counter
	imageCacheLookups *prometheus.CounterVec
	imageFailures     prometheus.Counter
	requestDuration   *prometheus.HistogramVec
}

// NewMetrics builds an isolated registry, registers the pipeline instruments
// (plus the default Go/process collectors when enabled) and prepares an HTTP
// server exposing them for scraping. Every metric carries a constant
// service label.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,

		guidesTotal: createCounterVec(
			"guides_generated_total",
			"Guides produced, labelled by the ladder tier that produced them (model or scaffold)",
			[]string{"tier"},
		),
		retrievedPassages: createCounter(
			"retrieval_passages_total",
			"Passages returned by the vector index across all requests",
		),
		retrievalFailures: createCounter(
			"retrieval_failures_total",
			"Retrieval attempts absorbed into empty context",
		),
		imageCacheLookups: createCounterVec(
			"image_cache_lookups_total",
			"Illustration cache lookups by result (hit or miss)",
			[]string{"result"},
		),
		imageFailures: createCounter(
			"image_generation_failures_total",
			"Illustration generations that failed and were recorded on the step",
		),
		requestDuration: createHistogramVec(
			"request_duration_seconds",
			"Duration of HTTP requests in seconds",
			[]string{"endpoint"},
			prometheus.DefBuckets,
		),
	}

	wrappedRegistry.MustRegister(
		m.guidesTotal,
		m.retrievedPassages,
		m.retrievalFailures,
		m.imageCacheLookups,
		m.imageFailures,
		m.requestDuration,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return m
}

// CountGuide records a produced guide and the ladder tier that produced it.
func (m *Metrics) CountGuide(tier string) {
	m.guidesTotal.WithLabelValues(tier).Inc()
}

// CountRetrievedPassages records how many passages a retrieval returned.
func (m *Metrics) CountRetrievedPassages(n int) {
	m.retrievedPassages.Add(float64(n))
}

// CountRetrievalFailure records a retrieval attempt that was absorbed.
func (m *Metrics) CountRetrievalFailure() {
	m.retrievalFailures.Inc()
}

// CountCacheHit records an illustration served from the cache.
func (m *Metrics) CountCacheHit() {
	m.imageCacheLookups.WithLabelValues("hit").Inc()
}

// CountCacheMiss records an illustration that had to be generated.
func (m *Metrics) CountCacheMiss() {
	m.imageCacheLookups.WithLabelValues("miss").Inc()
}

// CountImageFailure records an illustration generation failure.
func (m *Metrics) CountImageFailure() {
	m.imageFailures.Inc()
}

// RecordRequestDuration observes the elapsed time since start for an endpoint.
func (m *Metrics) RecordRequestDuration(start time.Time, endpoint string) {
	m.requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
