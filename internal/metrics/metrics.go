package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bikeaccessories"

var (
	StorageWriteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_write_failures_total",
		Help:      "Persistence writes that failed and were dropped, by storage key.",
	}, []string{"key"})

	CartEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_events_total",
		Help:      "Cart mutations, by action.",
	}, []string{"action"})

	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Orders created at checkout.",
	})

	UnitsSold = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_units_sold_total",
		Help:      "Units moved from stock to sold.",
	})

	UnitsRestocked = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_units_restocked_total",
		Help:      "Units added to stock by restocking.",
	})
)

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler { return promhttp.Handler() }
