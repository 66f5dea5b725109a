package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// routeRequestsTotal counts route requests by outcome: "found", a
	// pathfinder reason such as "disconnected", "throttled" or "bad_request"
	routeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "navmesh_route_requests_total",
		Help: "Total route requests by result",
	}, []string{"result"})

	routeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "navmesh_route_duration_seconds",
		Help:    "Path search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 14), // 10µs to ~80ms
	})

	routeExpansions = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "navmesh_route_expansions",
		Help:    "Cells finalized per search",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 500, 1000, 5000},
	})

	meshesLoadedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "navmesh_meshes_loaded_total",
		Help: "Meshes added to the registry",
	})
)

func observeRoute(result string, elapsed time.Duration, expansions int) {
	routeRequestsTotal.WithLabelValues(result).Inc()
	routeDuration.Observe(elapsed.Seconds())
	routeExpansions.Observe(float64(expansions))
}
