package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "cobweb"

var (
	// requestsTotal counts POST /route requests by outcome status.
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "route_requests_total",
			Help:      "Total number of /route requests by outcome status",
		},
		[]string{"status"},
	)

	// routeDuration observes wall-clock seconds spent resolving and
	// computing a single /route request (spec.md's handler-timing open
	// question: includes citydb name-resolution lookups).
	routeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "route_duration_seconds",
			Help:      "Time spent computing a single route",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// landmarkTableSize reports the number of landmarks in the most
	// recently built ALT table, set once after landmark.Build completes.
	landmarkTableSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "landmark_table_size",
			Help:      "Number of landmarks in the active ALT table",
		},
	)
)

// SetLandmarkTableSize records n as the current landmark table size.
// Called by cmd/cobweb after landmark.Build; a no-op gauge set (left
// at its zero value) is the correct signal for PolicyDijkstra and
// PolicyAStarHaversine, neither of which builds a table.
func SetLandmarkTableSize(n int) {
	landmarkTableSize.Set(float64(n))
}
