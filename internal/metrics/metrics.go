// Package metrics holds the Prometheus collectors exported by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careerguide_http_requests_total",
		Help: "The total number of HTTP requests by route, method and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "careerguide_http_request_duration_seconds",
		Help:    "The HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careerguide_login_attempts_total",
		Help: "The total number of login attempts by outcome",
	}, []string{"outcome"})

	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careerguide_generations_total",
		Help: "The total number of guidance generations by message type and outcome",
	}, []string{"msg_type", "outcome"})

	GeneratedTokensTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careerguide_generated_tokens_total",
		Help: "The total number of provider tokens consumed by message type",
	}, []string{"msg_type"})
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)
