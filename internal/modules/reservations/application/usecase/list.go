package usecase

import (
	"context"

	"mesaYaApi/internal/modules/reservations/domain"
	users "mesaYaApi/internal/modules/users/domain"
)

// ListForUser returns the actor's own reservations, most recent slot first.
func (w *ReservationWorkflow) ListForUser(ctx context.Context, actor Actor) ([]domain.Reservation, error) {
	return w.Repo.ListByUser(ctx, actor.UserID)
}

// ListForRestaurant returns a restaurant's incoming reservations, any status.
func (w *ReservationWorkflow) ListForRestaurant(ctx context.Context, actor Actor, restaurantID string) ([]domain.Reservation, error) {
	if !actor.CanViewRestaurant(restaurantID) {
		return nil, domain.ErrForbidden
	}
	return w.Repo.ListByRestaurant(ctx, restaurantID)
}

// ListAll is the admin view across the platform.
func (w *ReservationWorkflow) ListAll(ctx context.Context, actor Actor) ([]domain.Reservation, error) {
	if actor.Role != users.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return w.Repo.ListAll(ctx)
}

// PendingCount feeds the dashboard badge: restaurant-scoped for owners,
// platform-wide for admins when restaurantID is empty.
func (w *ReservationWorkflow) PendingCount(ctx context.Context, actor Actor, restaurantID string) (int, error) {
	if restaurantID == "" {
		if actor.Role != users.RoleAdmin {
			return 0, domain.ErrForbidden
		}
	} else if !actor.CanViewRestaurant(restaurantID) {
		return 0, domain.ErrForbidden
	}
	return w.Repo.CountPending(ctx, restaurantID)
}
