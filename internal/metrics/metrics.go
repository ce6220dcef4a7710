package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scholars_connect_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	requestDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scholars_connect_request_decisions_total",
		Help: "Mentorship request decisions grouped by outcome.",
	}, []string{"outcome"})

	requestsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scholars_connect_requests_created_total",
		Help: "Number of mentorship requests created.",
	})

	messagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scholars_connect_messages_sent_total",
		Help: "Number of chat messages sent.",
	})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scholars_connect_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncRequestCreated increments the created-request counter.
func IncRequestCreated() {
	requestsCreated.Inc()
}

// IncRequestDecision increments the decision counter.
func IncRequestDecision(outcome string) {
	requestDecisions.WithLabelValues(outcome).Inc()
}

// IncMessageSent increments the sent-message counter.
func IncMessageSent() {
	messagesSent.Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
