// Package metrics defines the Prometheus collectors for the index and
// exposes an HTTP handler for scraping. The Metrics type satisfies the
// library's Recorder interface, so instrumentation is wired with
// tfidf.WithRecorder(metrics.New()).
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the index.
type Metrics struct {
	DocsAddedTotal     prometheus.Counter
	DocsRemovedTotal   prometheus.Counter
	TermsIndexedTotal  prometheus.Counter
	SearchesTotal      prometheus.Counter
	SearchLatency      prometheus.Histogram
	SearchResultsCount prometheus.Histogram
	ModelDocuments     prometheus.Gauge
	ModelTerms         prometheus.Gauge
}

// New creates and registers all index metrics.
func New() *Metrics {
	m := &Metrics{
		DocsAddedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tfidf_docs_added_total",
				Help: "Total documents added to the index, including replacements.",
			},
		),
		DocsRemovedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tfidf_docs_removed_total",
				Help: "Total documents removed from the index.",
			},
		),
		TermsIndexedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tfidf_terms_indexed_total",
				Help: "Total term tokens processed by document additions.",
			},
		),
		SearchesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tfidf_searches_total",
				Help: "Total search queries executed.",
			},
		),
		SearchLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tfidf_search_latency_seconds",
				Help:    "Search latency in seconds.",
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
		SearchResultsCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tfidf_search_results_count",
				Help:    "Number of results returned per search query.",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 1000},
			},
		),
		ModelDocuments: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tfidf_model_documents",
				Help: "Documents currently in the index.",
			},
		),
		ModelTerms: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tfidf_model_terms",
				Help: "Distinct terms currently in the index.",
			},
		),
	}

	prometheus.MustRegister(
		m.DocsAddedTotal,
		m.DocsRemovedTotal,
		m.TermsIndexedTotal,
		m.SearchesTotal,
		m.SearchLatency,
		m.SearchResultsCount,
		m.ModelDocuments,
		m.ModelTerms,
	)

	return m
}

// DocAdded implements the library's Recorder interface.
func (m *Metrics) DocAdded(totalTerms int) {
	m.DocsAddedTotal.Inc()
	m.TermsIndexedTotal.Add(float64(totalTerms))
}

// DocRemoved implements the library's Recorder interface.
func (m *Metrics) DocRemoved() {
	m.DocsRemovedTotal.Inc()
}

// SearchCompleted implements the library's Recorder interface.
func (m *Metrics) SearchCompleted(queryTerms, results int, elapsed time.Duration) {
	m.SearchesTotal.Inc()
	m.SearchLatency.Observe(elapsed.Seconds())
	m.SearchResultsCount.Observe(float64(results))
}

// SetModelSize records the current document and distinct-term counts.
func (m *Metrics) SetModelSize(docs, terms int) {
	m.ModelDocuments.Set(float64(docs))
	m.ModelTerms.Set(float64(terms))
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
