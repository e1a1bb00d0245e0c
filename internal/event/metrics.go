package event

import "github.com/prometheus/client_golang/prometheus"

var (
	publishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vendd",
			Subsystem: "broker",
			Name:      "events_published_total",
			Help:      "Total events accepted by Publish",
		},
		[]string{"type"},
	)

	deliveredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vendd",
			Subsystem: "broker",
			Name:      "events_delivered_total",
			Help:      "Total handler invocations performed",
		},
		[]string{"type"},
	)

	unroutedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vendd",
			Subsystem: "broker",
			Name:      "events_unrouted_total",
			Help:      "Events published with no registered subscribers",
		},
		[]string{"type"},
	)

	depthDropsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vendd",
			Subsystem: "broker",
			Name:      "cascade_depth_drops_total",
			Help:      "Nested events dropped by the cascade depth guard",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(publishedTotal, deliveredTotal, unroutedTotal, depthDropsTotal)
}
