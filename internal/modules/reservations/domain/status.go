package domain

import "strings"

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationStatusUnknown   ReservationStatus = ""
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
)

var knownReservationStatuses = map[string]ReservationStatus{
	string(ReservationStatusPending):   ReservationStatusPending,
	string(ReservationStatusConfirmed): ReservationStatusConfirmed,
	string(ReservationStatusCancelled): ReservationStatusCancelled,
	string(ReservationStatusCompleted): ReservationStatusCompleted,
}

// Transitions allowed for each state. Terminal states have no outgoing edges,
// so a reservation can never move backward once cancelled or completed.
var allowedTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCompleted, ReservationStatusCancelled},
}

// NormalizeReservationStatus returns the canonical ReservationStatus for the given input.
func NormalizeReservationStatus(value any) ReservationStatus {
	s, ok := value.(string)
	if !ok {
		return ReservationStatusUnknown
	}
	trimmed := strings.ToUpper(strings.TrimSpace(s))
	if trimmed == "" {
		return ReservationStatusUnknown
	}
	if status, ok := knownReservationStatuses[trimmed]; ok {
		return status
	}
	return ReservationStatusUnknown
}

// IsKnown reports whether the status is one of the four lifecycle states.
func (s ReservationStatus) IsKnown() bool {
	_, ok := knownReservationStatuses[string(s)]
	return ok
}

// IsTerminal reports whether the status admits no further transitions.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCancelled || s == ReservationStatusCompleted
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle edge.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, candidate := range allowedTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// AllowsReschedule reports whether date/time may still be changed in this state.
func (s ReservationStatus) AllowsReschedule() bool {
	return s == ReservationStatusPending || s == ReservationStatusConfirmed
}
