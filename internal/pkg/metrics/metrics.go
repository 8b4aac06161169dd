// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "crypto_sec_operations_total",
	Help: "The total number of cryptographic operations by operation and outcome",
}, []string{"operation", "outcome"})

var KeyGenDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "crypto_sec_keygen_duration_seconds",
	Help:    "Time spent generating fresh keypairs, including time queued for a worker",
	Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
}, []string{"algorithm"})

var KeyGenInFlight = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "crypto_sec_keygen_in_flight",
	Help: "Number of key generations currently holding a worker slot",
})

// ObserveOperation counts one operation outcome.
func ObserveOperation(operation string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	OperationsTotal.WithLabelValues(operation, outcome).Inc()
}
