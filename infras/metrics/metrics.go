// Package metrics exposes Prometheus collectors for the HTTP layer and the front desk.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hostel"

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

type Metrics interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
	ObserveTransition(operation, outcome string)
	ObserveCache(name string, hit bool)
	Handler() http.Handler
}

type metricsImpl struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	transitions *prometheus.CounterVec
	cache       *prometheus.CounterVec
}

// New registers collectors on a private registry so tests can build as many instances as they need.
func New() Metrics {
	registry := prometheus.NewRegistry()

	m := &metricsImpl{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "frontdesk",
			Name:      "transitions_total",
			Help:      "Front desk room transitions by operation and outcome.",
		}, []string{"operation", "outcome"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "In-memory cache lookups by cache name and result.",
		}, []string{"cache", "result"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.latency,
		m.transitions,
		m.cache,
	)

	return m
}

func (m *metricsImpl) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *metricsImpl) ObserveTransition(operation, outcome string) {
	m.transitions.WithLabelValues(operation, outcome).Inc()
}

func (m *metricsImpl) ObserveCache(name string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}

	m.cache.WithLabelValues(name, result).Inc()
}

func (m *metricsImpl) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
