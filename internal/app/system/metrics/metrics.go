// Package metrics exposes Prometheus counters for the HTTP API and the
// leaderboard regeneration step.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the application metrics. A nil *Collector is valid and
// records nothing, so callers that run without a registry (tests, the
// populate command) need no guard.
type Collector struct {
	requests        *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	regenerations   *prometheus.CounterVec
	regenLatency    prometheus.Histogram
	entries         prometheus.Gauge
	lastRegenerated prometheus.Gauge
}

// NewCollector creates the collectors and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "octofit",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "octofit",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		regenerations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "octofit",
			Subsystem: "leaderboard",
			Name:      "regenerations_total",
			Help:      "Leaderboard regenerations by result (ok, error).",
		}, []string{"result"}),
		regenLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "octofit",
			Subsystem: "leaderboard",
			Name:      "regeneration_duration_seconds",
			Help:      "Time spent regenerating the leaderboard.",
			Buckets:   prometheus.DefBuckets,
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "octofit",
			Subsystem: "leaderboard",
			Name:      "entries",
			Help:      "Entries written by the last successful regeneration.",
		}),
		lastRegenerated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "octofit",
			Subsystem: "leaderboard",
			Name:      "last_regenerated_timestamp_seconds",
			Help:      "Unix timestamp of the last successful regeneration.",
		}),
	}

	reg.MustRegister(
		c.requests,
		c.latency,
		c.regenerations,
		c.regenLatency,
		c.entries,
		c.lastRegenerated,
	)
	return c
}

// RecordRegeneration records one regeneration attempt.
func (c *Collector) RecordRegeneration(entries int, took time.Duration, at time.Time, err error) {
	if c == nil {
		return
	}
	c.regenLatency.Observe(took.Seconds())
	if err != nil {
		c.regenerations.WithLabelValues("error").Inc()
		return
	}
	c.regenerations.WithLabelValues("ok").Inc()
	c.entries.Set(float64(entries))
	c.lastRegenerated.Set(float64(at.Unix()))
}

// Middleware counts requests by chi route pattern. Mount it on the router so
// the pattern is resolved by the time the handler returns.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	if c == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		c.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		c.latency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the Prometheus text exposition for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
