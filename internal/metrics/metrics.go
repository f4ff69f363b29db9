package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	extensionChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rentline",
			Name:      "extension_checks_total",
			Help:      "Count of extension availability checks by outcome.",
		},
		[]string{"outcome"},
	)

	solutionsProposed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rentline",
			Name:      "solutions_proposed_total",
			Help:      "Count of conflict resolutions proposed by type.",
		},
		[]string{"type"},
	)

	extensionsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rentline",
			Name:      "extensions_submitted_total",
			Help:      "Count of rental extensions submitted.",
		},
	)

	stockMovements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rentline",
			Name:      "stock_movements_total",
			Help:      "Count of stock movements recorded by type.",
		},
		[]string{"type"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(extensionChecks, solutionsProposed, extensionsSubmitted, stockMovements)
	})
}

func IncExtensionCheck(outcome string) {
	extensionChecks.WithLabelValues(outcome).Inc()
}

func IncSolutionProposed(solutionType string) {
	solutionsProposed.WithLabelValues(solutionType).Inc()
}

func IncExtensionSubmitted() {
	extensionsSubmitted.Inc()
}

func IncStockMovement(movementType string) {
	stockMovements.WithLabelValues(movementType).Inc()
}
