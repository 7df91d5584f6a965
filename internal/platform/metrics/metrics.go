package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the API.
type Metrics struct {
	Registry *prometheus.Registry

	PaymentAttempts *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		PaymentAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_attempts_total",
			Help: "Payment attempts by payment type and outcome.",
		}, []string{"type", "outcome"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method and status class.",
		}, []string{"method", "status"}),
	}
}

// ObservePayment records one payment attempt outcome.
func (m *Metrics) ObservePayment(paymentType string, success bool) {
	if m == nil {
		return
	}
	outcome := "failed"
	if success {
		outcome = "succeeded"
	}
	m.PaymentAttempts.WithLabelValues(paymentType, outcome).Inc()
}
