package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "car_maintenance_bookings_created_total",
		Help: "Bookings persisted in the Processing state.",
	})

	slotConflictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "car_maintenance_slot_conflicts_total",
		Help: "Booking attempts rejected because the mechanic's day is taken, by detection stage.",
	}, []string{"stage"})

	slotClaimTakeoversTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "car_maintenance_slot_claim_takeovers_total",
		Help: "Stale slot claims replaced by a new booking.",
	})

	bookingTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "car_maintenance_booking_transitions_total",
		Help: "Applied booking status transitions by target status.",
	}, []string{"status"})

	inferenceCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "car_maintenance_inference_calls_total",
		Help: "Inference requests by endpoint kind and outcome.",
	}, []string{"kind", "outcome"})

	reportPersistFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "car_maintenance_report_persist_failures_total",
		Help: "Scan results returned to the caller without a persisted report.",
	})
)
