package nucleus

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess        = "success"
	outcomeRemoteError    = "remote_error"
	outcomeTransportError = "transport_error"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newMetrics registers the client collectors on reg, reusing them when another client already did
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nucleus_client_requests_total",
		Help: "Nucleus API calls by operation and outcome",
	}, []string{"operation", "outcome"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nucleus_client_request_duration_seconds",
		Help:    "Nucleus API call latency by operation",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	if err := reg.Register(requests); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		requests = are.ExistingCollector.(*prometheus.CounterVec)
	}

	if err := reg.Register(duration); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		duration = are.ExistingCollector.(*prometheus.HistogramVec)
	}

	return &metrics{requests: requests, duration: duration}, nil
}

func (m *metrics) observe(op Operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(string(op), outcome).Inc()
	m.duration.WithLabelValues(string(op)).Observe(elapsed.Seconds())
}
