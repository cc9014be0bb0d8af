package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "event_finder"

//nolint:gochecknoglobals
var (
	searchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "catalog",
		Name:      "searches_total",
		Help:      "Nearest-events searches served.",
	})
	searchCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "catalog",
		Name:      "search_cache_hits_total",
		Help:      "Nearest-events searches answered from the search cache.",
	})
	eventsPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "catalog",
		Name:      "events_placed_total",
		Help:      "Events placed on the grid.",
	})
	ticketsSoldTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "catalog",
		Name:      "tickets_sold_total",
		Help:      "Tickets sold.",
	})
	purchaseConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "catalog",
		Name:      "purchase_conflicts_total",
		Help:      "Purchases rejected because the ticket was already sold.",
	})
	salesDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "catalog",
		Name:      "sales_dropped_total",
		Help:      "Sale notifications dropped because the sale feed was full.",
	})
)
