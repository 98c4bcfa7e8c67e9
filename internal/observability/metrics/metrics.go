package metrics

import (
	"homeservice-booking/internal/domain/booking"

	"github.com/prometheus/client_golang/prometheus"
)

// BookingMetrics exposes counters for the wizard, verification and order intake.
type BookingMetrics struct {
	draftChanges    *prometheus.CounterVec
	stepTransitions *prometheus.CounterVec
	submits         *prometheus.CounterVec
	verifications   *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		draftChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "homeservice",
			Subsystem: "booking",
			Name:      "draft_changes_total",
			Help:      "Draft mutations by field",
		}, []string{"field"}),
		stepTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "homeservice",
			Subsystem: "booking",
			Name:      "step_transitions_total",
			Help:      "Wizard cursor moves",
		}, []string{"from", "to"}),
		submits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "homeservice",
			Subsystem: "booking",
			Name:      "submit_total",
			Help:      "Booking submissions by outcome",
		}, []string{"outcome"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "homeservice",
			Subsystem: "verification",
			Name:      "attempts_total",
			Help:      "Phone verification attempts by stage and outcome",
		}, []string{"stage", "outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.draftChanges, m.stepTransitions, m.submits, m.verifications)
	return m
}

func (m *BookingMetrics) DraftChanged(change booking.Change) {
	if m == nil {
		return
	}
	m.draftChanges.WithLabelValues(string(change.Field)).Inc()
	if change.From != change.To {
		m.stepTransitions.WithLabelValues(change.From.Name(), change.To.Name()).Inc()
	}
}

func (m *BookingMetrics) ObserveSubmit(outcome string) {
	if m == nil {
		return
	}
	m.submits.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveVerification(stage, outcome string) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(stage, outcome).Inc()
}
