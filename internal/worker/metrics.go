package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "event_finder"
	metricsSubsystem = "inventory"
)

//nolint:gochecknoglobals
var (
	eventsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "events",
		Help:      "Registered events.",
	})
	placedEventsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "placed_events",
		Help:      "Events placed on the grid.",
	})
	soldOutEventsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "sold_out_events",
		Help:      "Placed events whose tickets are all sold.",
	})
	ticketsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "tickets",
		Help:      "Tickets ever issued.",
	})
	unsoldTicketsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "unsold_tickets",
		Help:      "Tickets still for sale.",
	})
)
