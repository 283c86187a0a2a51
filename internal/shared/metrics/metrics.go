package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns the service's Prometheus collectors. A nil *Recorder is a
// valid no-op so callers can run with metrics disabled.
type Recorder struct {
	registry            *prometheus.Registry
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	statusChecksCreated prometheus.Counter
	storeErrors         *prometheus.CounterVec
}

// New registers collectors on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		statusChecksCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_status_checks_created_total",
			Help: "Total status checks persisted",
		}),
		storeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_status_store_errors_total",
			Help: "Status store operation failures",
		}, []string{"op"}),
	}
}

// ObserveRequest counts a finished request and records its latency.
func (r *Recorder) ObserveRequest(route string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// IncStatusCheckCreated increments the persisted status check counter.
func (r *Recorder) IncStatusCheckCreated() {
	if r == nil {
		return
	}
	r.statusChecksCreated.Inc()
}

// IncStoreError counts a failed store operation ("insert" or "list").
func (r *Recorder) IncStoreError(op string) {
	if r == nil {
		return
	}
	r.storeErrors.WithLabelValues(op).Inc()
}

// Gatherer exposes the registry, mostly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.registry
}

// Handler exposes metrics in Prometheus text format.
func (r *Recorder) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(r.Gatherer(), promhttp.HandlerOpts{}))
}
