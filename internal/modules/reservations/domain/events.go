package domain

import (
	"strings"
	"time"
)

const reservationsEntity = "reservations"

// Event actions emitted after successful reservation mutations. The realtime
// channel and the broker both consume these.
const (
	EventActionCreated     = "created"
	EventActionUpdated     = "updated"
	EventActionCancelled   = "cancelled"
	EventActionCompleted   = "completed"
	EventActionRescheduled = "rescheduled"
)

// Event is the change notification fanned out to dashboards after a mutation.
type Event struct {
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	Topic      string            `json:"topic"`
	ResourceID string            `json:"resourceId"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// BuildReservationEvent projects a reservation into its change event.
func BuildReservationEvent(action string, reservation Reservation, at time.Time) Event {
	cleanAction := strings.TrimSpace(action)
	metadata := map[string]string{
		"reservationId": reservation.ID,
		"restaurantId":  reservation.RestaurantID,
		"userId":        reservation.UserID,
		"status":        string(reservation.Status),
	}
	return Event{
		Entity:     reservationsEntity,
		Action:     cleanAction,
		Topic:      reservationsEntity + "." + cleanAction,
		ResourceID: reservation.ID,
		Metadata:   metadata,
		Data:       reservation,
		Timestamp:  at.UTC(),
	}
}
