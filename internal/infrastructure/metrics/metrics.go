package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	RegistrationsSubmitted prometheus.Counter
	Transitions            *prometheus.CounterVec
	PaymentVerifications   *prometheus.CounterVec
	HTTPRequests           *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers every collector on reg. Pass prometheus.NewRegistry() in
// tests so repeated construction does not collide.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RegistrationsSubmitted: f.NewCounter(prometheus.CounterOpts{
			Name: "esep_registrations_submitted_total",
			Help: "Registrations accepted from the public form",
		}),
		Transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "esep_registration_transitions_total",
			Help: "Registration status changes by target status",
		}, []string{"to"}),
		PaymentVerifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "esep_payment_verifications_total",
			Help: "Payment verify and unverify actions",
		}, []string{"action"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "esep_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		gatherer: reg,
	}
}

// The helpers below are nil-safe so callers without metrics need no guard.

func (m *Metrics) IncSubmitted() {
	if m != nil {
		m.RegistrationsSubmitted.Inc()
	}
}

func (m *Metrics) IncTransition(to string) {
	if m != nil {
		m.Transitions.WithLabelValues(to).Inc()
	}
}

func (m *Metrics) IncVerification(action string) {
	if m != nil {
		m.PaymentVerifications.WithLabelValues(action).Inc()
	}
}

func (m *Metrics) IncHTTP(method, route, status string) {
	if m != nil {
		m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	}
}

// Handler exposes the registry in the text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
