// Package metrics exposes the server's Prometheus collectors. Collectors
// are package-level and registered on the default registry, so call sites
// anywhere in the server can record without threading a registry through
// every constructor. The /metrics route serves the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JobsClaimed counts successful queue claims, labelled by queue type.
	JobsClaimed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conductor_jobs_claimed_total",
		Help: "Jobs claimed from a queue by the preprocess step.",
	}, []string{"queue_type"})

	// JobsFinished counts terminal job transitions, labelled by outcome.
	JobsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conductor_jobs_finished_total",
		Help: "Job executions that reached a terminal status.",
	}, []string{"status"})

	// OrphansRecovered counts in-progress jobs returned to their queue by
	// orphan reconciliation.
	OrphansRecovered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "conductor_orphans_recovered_total",
		Help: "Orphaned jobs returned to a queue by preprocess.",
	})

	// HealthCheckFailures counts failed ping/ack round-trips.
	HealthCheckFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "conductor_health_check_failures_total",
		Help: "Health check pings that received no heartbeat in time.",
	})

	// AgentsOffline counts agents crossing the offline threshold.
	AgentsOffline = promauto.NewCounter(prometheus.CounterOpts{
		Name: "conductor_agents_marked_offline_total",
		Help: "Agents marked offline after consecutive ping failures.",
	})
)

// RegisterConnectedAgents registers a gauge backed by the stream registry's
// live session count. Called once from main after the manager exists.
func RegisterConnectedAgents(count func() int) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "conductor_connected_agents",
		Help: "Agents with a currently bound stream session.",
	}, func() float64 { return float64(count()) })
}
