// Package metrics exposes Prometheus collectors for the scoring service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	scores        *prometheus.CounterVec
	quality       prometheus.Histogram
	rejected      *prometheus.CounterVec
	lookups       *prometheus.CounterVec
	snapshotSize  prometheus.Gauge
	reloads       *prometheus.CounterVec
	lastReloadSec prometheus.Gauge
}

// New registers every collector on a fresh registry, alongside the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		scores: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sourcescore",
			Name:      "scores_total",
			Help:      "Sources scored, by database match kind.",
		}, []string{"match"}),
		quality: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sourcescore",
			Name:      "quality",
			Help:      "Distribution of final quality scores.",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sourcescore",
			Name:      "rejected_requests_total",
			Help:      "Score requests rejected before scoring, by reason.",
		}, []string{"reason"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sourcescore",
			Name:      "lookups_total",
			Help:      "Diagnostic database lookups, by match kind.",
		}, []string{"match"}),
		snapshotSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sourcescore",
			Name:      "snapshot_domains",
			Help:      "Domains in the active reliability snapshot.",
		}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sourcescore",
			Name:      "snapshot_reloads_total",
			Help:      "Reliability snapshot reload attempts, by result.",
		}, []string{"result"}),
		lastReloadSec: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sourcescore",
			Name:      "snapshot_last_reload_timestamp_seconds",
			Help:      "Unix time of the last successful snapshot reload.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.scores, m.quality, m.rejected, m.lookups,
		m.snapshotSize, m.reloads, m.lastReloadSec,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) ObserveScore(match string, quality int) {
	m.scores.WithLabelValues(match).Inc()
	m.quality.Observe(float64(quality))
}

func (m *Metrics) ObserveRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveLookup(match string) {
	m.lookups.WithLabelValues(match).Inc()
}

// ObserveReload records a reload attempt. size and unixTime are ignored when
// err is non-nil.
func (m *Metrics) ObserveReload(size int, unixTime int64, err error) {
	if err != nil {
		m.reloads.WithLabelValues("error").Inc()
		return
	}
	m.reloads.WithLabelValues("ok").Inc()
	m.snapshotSize.Set(float64(size))
	m.lastReloadSec.Set(float64(unixTime))
}
