// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ticketdesk"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by route and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	gatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_requests_total",
		Help:      "Calls to the remote ticket API, by operation and outcome.",
	}, []string{"operation", "outcome"})

	gatewayDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_request_duration_seconds",
		Help:      "Remote ticket API latency by operation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	storeOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_operations_total",
		Help:      "Local ticket store operations, by operation and outcome.",
	}, []string{"operation", "outcome"})

	storeTickets = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "store_tickets",
		Help:      "Tickets currently held by the local store.",
	})

	flashMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "flash_messages_total",
		Help:      "Flash messages written and consumed, by backend.",
	}, []string{"backend", "action"})
)

// Outcome labels.
const (
	OutcomeOK        = "ok"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
	OutcomeTransport = "transport_error"
)

func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func ObserveGateway(operation, outcome string, elapsed time.Duration) {
	gatewayRequests.WithLabelValues(operation, outcome).Inc()
	gatewayDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func ObserveStore(operation, outcome string) {
	storeOperations.WithLabelValues(operation, outcome).Inc()
}

func SetStoreSize(n int) {
	storeTickets.Set(float64(n))
}

func ObserveFlash(backend, action string) {
	flashMessages.WithLabelValues(backend, action).Inc()
}
