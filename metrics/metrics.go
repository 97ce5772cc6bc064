package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for monitoring checkout health and provider performance
var (
	CheckoutAttemptsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_attempts_total",
			Help: "Total number of checkout payment attempts started",
		},
	)

	CheckoutSucceededTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_succeeded_total",
			Help: "Total number of checkout attempts that ended with a committed order",
		},
	)

	CheckoutDeclinedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_declined_total",
			Help: "Total number of checkout attempts declined by the card provider",
		},
	)

	CheckoutCommitFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_commit_failures_total",
			Help: "Total number of confirmed charges whose order commit failed and needs reconciliation",
		},
	)

	CardProviderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "card_provider_request_duration_seconds",
			Help:    "Duration of requests to the card payment provider",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(CheckoutAttemptsTotal)
	prometheus.MustRegister(CheckoutSucceededTotal)
	prometheus.MustRegister(CheckoutDeclinedTotal)
	prometheus.MustRegister(CheckoutCommitFailuresTotal)
	prometheus.MustRegister(CardProviderRequestDuration)
}
