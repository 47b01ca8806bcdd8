package usecase

import (
	"context"
	"log/slog"

	"mesaYaApi/internal/modules/reservations/domain"
)

// RescheduleResult carries the updated record plus a summary of which
// notification channels were handed the change.
type RescheduleResult struct {
	Reservation domain.Reservation
	Notified    []string
}

// Reschedule moves a pending or confirmed reservation to a new slot. The
// availability re-check excludes the reservation itself and is skipped entirely
// when the target slot is unchanged. Status is never touched.
func (w *ReservationWorkflow) Reschedule(ctx context.Context, actor Actor, cmd domain.RescheduleReservationCommand) (RescheduleResult, error) {
	if err := cmd.Validate(w.clock()); err != nil {
		return RescheduleResult{}, err
	}

	current, err := w.Repo.GetByID(ctx, cmd.ReservationID)
	if err != nil {
		return RescheduleResult{}, err
	}
	if !actor.canReschedule(current) {
		return RescheduleResult{}, domain.ErrForbidden
	}
	if !current.Status.AllowsReschedule() {
		return RescheduleResult{}, domain.ErrInvalidTransition
	}

	if !current.SameSlot(cmd.Date, cmd.Time) {
		availability, err := w.CheckAvailability(ctx, domain.Slot{
			RestaurantID: current.RestaurantID,
			Date:         cmd.Date,
			Time:         cmd.Time,
		}, current.ID)
		if err != nil {
			return RescheduleResult{}, err
		}
		if !availability.Available {
			return RescheduleResult{}, domain.ErrSlotUnavailable
		}
	}

	updated, err := w.Repo.Reschedule(ctx, cmd.ReservationID, cmd.Date, domain.NormalizeTimeOfDay(cmd.Time))
	if err != nil {
		return RescheduleResult{}, err
	}

	slog.Info("reservation rescheduled",
		slog.String("reservationId", updated.ID),
		slog.String("slot", domain.FormatSlotLabel(updated.Date, updated.Time)),
		slog.String("actor", actor.UserID),
	)

	result := RescheduleResult{Reservation: updated}
	if w.notify(ctx, NotificationKindRescheduled, updated) {
		result.Notified = append(result.Notified, "email")
	}
	w.publish(ctx, domain.EventActionRescheduled, updated)
	result.Notified = append(result.Notified, "realtime")
	return result, nil
}
