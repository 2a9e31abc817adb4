package metrics

import (
	"context"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"esignatures-go/esignatures"
	"esignatures-go/internal/config"
)

// Recorder turns client call logs into prometheus series
type Recorder struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder returns nil when metrics are disabled.
func NewRecorder(cfg *config.Config) *Recorder {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return newRecorder()
}

func newRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "esignatures_api_requests_total",
				Help: "Number of requests sent to the eSignatures.io API",
			},
			[]string{"operation", "method", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "esignatures_api_request_duration_seconds",
				Help:    "Latency of requests sent to the eSignatures.io API",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}

	r.registry.MustRegister(
		r.requests,
		r.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) Save(_ context.Context, log *esignatures.CallLog) error {
	status := "error"
	if log.StatusCode != 0 {
		status = strconv.Itoa(log.StatusCode)
	}

	r.requests.WithLabelValues(log.Operation, log.Method, status).Inc()
	r.duration.WithLabelValues(log.Operation).Observe(log.Duration.Seconds())
	return nil
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
