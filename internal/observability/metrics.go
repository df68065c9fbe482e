// Package observability provides the Prometheus metrics recorded by the use cases.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	resultSuccess  = "success"
	resultFailure  = "failure"
	resultRotated  = "rotated"
	resultRejected = "rejected"

	kindSessions   = "sessions"
	kindRecoveries = "recoveries"
)

// Metrics holds the custom Prometheus counters together with the registry
// they are registered on.
type Metrics struct {
	registry *prometheus.Registry

	loginAttempts    *prometheus.CounterVec
	tokenRefreshes   *prometheus.CounterVec
	recoveryRequests prometheus.Counter
	passwordResets   prometheus.Counter
	sweptRows        *prometheus.CounterVec
}

// NewMetrics creates a dedicated registry to avoid polluting the global one,
// registers the standard Go and process collectors plus the custom counters,
// and returns the handle the use cases record against.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		loginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atelier_login_attempts_total",
				Help: "Total number of login attempts by outcome",
			},
			[]string{"result"},
		),
		tokenRefreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atelier_token_refreshes_total",
				Help: "Total number of refresh token exchanges by outcome",
			},
			[]string{"result"},
		),
		recoveryRequests: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "atelier_password_recovery_requests_total",
				Help: "Total number of password recovery requests accepted",
			},
		),
		passwordResets: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "atelier_password_resets_total",
				Help: "Total number of completed password resets",
			},
		),
		sweptRows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atelier_swept_rows_total",
				Help: "Total number of dead auth grant rows removed by the sweeper",
			},
			[]string{"kind"},
		),
	}

	registry.MustRegister(m.loginAttempts, m.tokenRefreshes, m.recoveryRequests, m.passwordResets, m.sweptRows)

	return m
}

// Handler returns the HTTP handler that serves the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// RecordLogin counts one login attempt by outcome.
func (m *Metrics) RecordLogin(success bool) {
	if success {
		m.loginAttempts.WithLabelValues(resultSuccess).Inc()
	} else {
		m.loginAttempts.WithLabelValues(resultFailure).Inc()
	}
}

// RecordRefresh counts one refresh exchange: rotated on success, rejected when
// the presented token did not match a live session.
func (m *Metrics) RecordRefresh(rotated bool) {
	if rotated {
		m.tokenRefreshes.WithLabelValues(resultRotated).Inc()
	} else {
		m.tokenRefreshes.WithLabelValues(resultRejected).Inc()
	}
}

// RecordRecoveryRequest counts one accepted password recovery request.
func (m *Metrics) RecordRecoveryRequest() {
	m.recoveryRequests.Inc()
}

// RecordPasswordReset counts one completed password reset.
func (m *Metrics) RecordPasswordReset() {
	m.passwordResets.Inc()
}

// RecordSweep counts the rows removed by one sweeper pass.
func (m *Metrics) RecordSweep(sessions, recoveries int64) {
	m.sweptRows.WithLabelValues(kindSessions).Add(float64(sessions))
	m.sweptRows.WithLabelValues(kindRecoveries).Add(float64(recoveries))
}
