package port

import (
	"context"

	"mesaYaApi/internal/modules/reservations/domain"
)

// ReservationRepository is the storage boundary for the reservation lifecycle.
// Implementations return domain.ErrNotFound for unknown ids and wrap opaque
// storage failures in domain.ErrBackend.
type ReservationRepository interface {
	Create(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error)
	GetByID(ctx context.Context, id string) (domain.Reservation, error)
	// ListByUser returns the user's reservations ordered by date then time,
	// most recent first, with restaurant display fields joined in.
	ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Reservation, error)
	// ListAll is the admin view, joined with requester and restaurant display fields.
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	// UpdateStatus mutates the status field only and returns the updated record.
	// It has no notification side effect; that is the workflow's responsibility.
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (domain.Reservation, error)
	// Reschedule mutates date and time, leaving status untouched.
	Reschedule(ctx context.Context, id, date, timeOfDay string) (domain.Reservation, error)
	// Cancel sets status to CANCELLED and records the reason, leaving date/time untouched.
	Cancel(ctx context.Context, id, reason string) (domain.Reservation, error)
	// CountPending counts PENDING reservations, restaurant-scoped when
	// restaurantID is non-empty, platform-wide otherwise.
	CountPending(ctx context.Context, restaurantID string) (int, error)
	// CountAtSlot counts non-cancelled reservations occupying the slot,
	// excluding excludeID when non-empty.
	CountAtSlot(ctx context.Context, slot domain.Slot, excludeID string) (int, error)
}
