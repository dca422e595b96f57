package telemetry

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StubMetrics — метрики HTTP-заглушки прокси.
type StubMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewStubMetrics регистрирует метрики в reg.
// Для глобального реестра передаётся prometheus.DefaultRegisterer.
func NewStubMetrics(reg prometheus.Registerer) *StubMetrics {
	factory := promauto.With(reg)

	return &StubMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kptest_stub_http_requests_total",
			Help: "Total HTTP requests handled by kptest_stub",
		}, []string{"route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kptest_stub_http_request_duration_seconds",
			Help:    "HTTP request latency of kptest_stub",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// Observe учитывает обработанный запрос.
func (m *StubMetrics) Observe(route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}
