package port

import (
	"context"

	"mesaYaApi/internal/modules/reservations/domain"
)

// ReservationNotifier delivers transactional emails for reservation changes.
// Delivery is best-effort: the workflow never lets a notifier error affect the
// outcome of the mutation that triggered it.
type ReservationNotifier interface {
	NotifyReservation(ctx context.Context, kind string, recipient string, reservation domain.Reservation) error
}

// EventPublisher fans reservation change events out to the realtime channel
// and the broker.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event)
}
