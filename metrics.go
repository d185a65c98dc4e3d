package sunbreeze

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metricsPath is where the Prometheus endpoint is mounted when metrics are
// enabled.
const metricsPath = "/metrics"

// appMetrics records per-request counters and latency histograms and serves
// them at /metrics. Each App owns its own registry so multiple Apps in one
// process (common in tests) never collide on registration.
type appMetrics struct {
	handler http.Handler

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func newAppMetrics(namespace string) *appMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &appMetrics{
		handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of requests handled, by method and status.",
		}, []string{"method", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Request handling duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// observe records one completed request.
func (m *appMetrics) observe(method string, status int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
