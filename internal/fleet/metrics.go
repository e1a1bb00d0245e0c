package fleet

import "github.com/prometheus/client_golang/prometheus"

var (
	salesAppliedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vendd",
		Subsystem: "fleet",
		Name:      "sales_applied_total",
		Help:      "Sale events applied to a machine",
	})

	refillsAppliedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vendd",
		Subsystem: "fleet",
		Name:      "refills_applied_total",
		Help:      "Refill events applied to a machine",
	})

	lowStockWarningsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vendd",
		Subsystem: "fleet",
		Name:      "low_stock_warnings_total",
		Help:      "Low stock warnings handled",
	})

	stockRecoveriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vendd",
		Subsystem: "fleet",
		Name:      "stock_recoveries_total",
		Help:      "Stock level recoveries observed",
	})

	lookupMissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vendd",
			Subsystem: "fleet",
			Name:      "lookup_misses_total",
			Help:      "Events dropped because the machine id was unknown",
		},
		[]string{"event"},
	)

	stockLevel = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "vendd",
			Subsystem: "fleet",
			Name:      "stock_level",
			Help:      "Current stock level per machine",
		},
		[]string{"machine"},
	)
)

func init() {
	prometheus.MustRegister(
		salesAppliedTotal,
		refillsAppliedTotal,
		lowStockWarningsTotal,
		stockRecoveriesTotal,
		lookupMissesTotal,
		stockLevel,
	)
}
