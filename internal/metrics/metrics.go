package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Chain reads
	MulticallBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redactsync_multicall_batches_total",
			Help: "Multicall round trips by outcome",
		},
		[]string{"status"},
	)

	MulticallSubcallFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redactsync_multicall_subcall_failures_total",
			Help: "Failed sub-calls inside successful multicall batches",
		},
		[]string{"method"},
	)

	// Decryption
	DecryptRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redactsync_decrypt_requests_total",
			Help: "Decrypt requests by how they were served",
		},
		[]string{"outcome"},
	)

	OracleCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redactsync_oracle_calls_total",
			Help: "Unseal round trips to the decryption oracle",
		},
		[]string{"status"},
	)

	OracleLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "redactsync_oracle_latency_seconds",
			Help:    "Unseal round trip latency",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Claims
	ClaimsTracked = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "redactsync_claims_tracked",
			Help: "Claims held in the ledger by state",
		},
		[]string{"state"},
	)

	ClaimsPruned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redactsync_claims_pruned_total",
			Help: "Claims removed by the validation sweep",
		},
		[]string{"reason"},
	)

	// Scheduler
	SchedulerTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redactsync_scheduler_ticks_total",
			Help: "Scheduler ticks by job and outcome",
		},
		[]string{"job", "outcome"},
	)

	Confirmations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redactsync_confirmations_total",
			Help: "Transaction confirmations received",
		},
		[]string{"kind"},
	)
)
