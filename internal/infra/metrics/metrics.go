// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wardrobe"

// Outcome label values.
const (
	OutcomeSuccess         = "success"
	OutcomeFailure         = "failure"
	OutcomeDuplicate       = "duplicate"
	OutcomeExchangeError   = "exchange_error"
	OutcomeNetworkError    = "network_error"
	OutcomeInvalidIdentity = "invalid_identity"
	OutcomeInternalError   = "internal_error"
)

var (
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Password login attempts by outcome",
	}, []string{"outcome"})

	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Account registrations by outcome",
	}, []string{"outcome"})

	OAuthCallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "oauth_callbacks_total",
		Help:      "OAuth callback handling by provider and outcome",
	}, []string{"provider", "outcome"})

	RecommendationsServed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendations_served_total",
		Help:      "Recommendation results returned to callers",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)
