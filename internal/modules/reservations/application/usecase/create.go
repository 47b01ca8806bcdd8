package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mesaYaApi/internal/modules/reservations/domain"
	restaurants "mesaYaApi/internal/modules/restaurants/domain"
)

// Create validates the command, persists a PENDING reservation, then attempts
// the created email and publishes the change event.
func (w *ReservationWorkflow) Create(ctx context.Context, actor Actor, cmd domain.CreateReservationCommand) (domain.Reservation, error) {
	cmd.UserID = actor.UserID
	if err := cmd.Validate(w.clock()); err != nil {
		return domain.Reservation{}, err
	}

	restaurant, err := w.Restaurants.GetRestaurant(ctx, cmd.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurants.ErrRestaurantNotFound) {
			return domain.Reservation{}, fmt.Errorf("%w: restaurant %s", domain.ErrValidation, cmd.RestaurantID)
		}
		return domain.Reservation{}, fmt.Errorf("%w: %v", domain.ErrBackend, err)
	}
	if !restaurant.AcceptsReservations() {
		return domain.Reservation{}, restaurants.ErrRestaurantInactive
	}

	created, err := w.Repo.Create(ctx, domain.Reservation{
		UserID:         cmd.UserID,
		RestaurantID:   cmd.RestaurantID,
		Date:           cmd.Date,
		Time:           domain.NormalizeTimeOfDay(cmd.Time),
		PartySize:      cmd.PartySize,
		SpecialRequest: cmd.SpecialRequest,
		Status:         domain.ReservationStatusPending,
	})
	if err != nil {
		return domain.Reservation{}, err
	}
	created.RestaurantName = restaurant.Name
	created.RestaurantLogo = restaurant.Logo

	slog.Info("reservation created",
		slog.String("reservationId", created.ID),
		slog.String("restaurantId", created.RestaurantID),
		slog.String("userId", created.UserID),
		slog.String("slot", domain.FormatSlotLabel(created.Date, created.Time)),
	)

	w.notify(ctx, NotificationKindCreated, created)
	w.publish(ctx, domain.EventActionCreated, created)
	return created, nil
}
