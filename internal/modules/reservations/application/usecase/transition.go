package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"mesaYaApi/internal/modules/reservations/domain"
)

// Transition applies a status change after checking the lifecycle edge and the
// actor's authority, then fires the matching email kind and change event.
func (w *ReservationWorkflow) Transition(ctx context.Context, actor Actor, cmd domain.TransitionCommand) (domain.Reservation, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Reservation{}, err
	}

	current, err := w.Repo.GetByID(ctx, cmd.ReservationID)
	if err != nil {
		return domain.Reservation{}, err
	}
	if !actor.canTransition(current, cmd.NextStatus) {
		return domain.Reservation{}, domain.ErrForbidden
	}
	if !current.Status.CanTransitionTo(cmd.NextStatus) {
		return domain.Reservation{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, cmd.NextStatus)
	}

	updated, err := w.Repo.UpdateStatus(ctx, cmd.ReservationID, cmd.NextStatus)
	if err != nil {
		return domain.Reservation{}, err
	}

	slog.Info("reservation status changed",
		slog.String("reservationId", updated.ID),
		slog.String("from", string(current.Status)),
		slog.String("to", string(updated.Status)),
		slog.String("actor", actor.UserID),
	)

	w.notify(ctx, notificationKindForStatus(updated.Status), updated)
	w.publish(ctx, eventActionForStatus(updated.Status), updated)
	return updated, nil
}

// Cancel sets CANCELLED with an optional reason. Date and time are untouched.
func (w *ReservationWorkflow) Cancel(ctx context.Context, actor Actor, cmd domain.CancelReservationCommand) (domain.Reservation, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Reservation{}, err
	}

	current, err := w.Repo.GetByID(ctx, cmd.ReservationID)
	if err != nil {
		return domain.Reservation{}, err
	}
	if !actor.canTransition(current, domain.ReservationStatusCancelled) {
		return domain.Reservation{}, domain.ErrForbidden
	}
	if !current.Status.CanTransitionTo(domain.ReservationStatusCancelled) {
		return domain.Reservation{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, domain.ReservationStatusCancelled)
	}

	cancelled, err := w.Repo.Cancel(ctx, cmd.ReservationID, cmd.Reason)
	if err != nil {
		return domain.Reservation{}, err
	}

	slog.Info("reservation cancelled",
		slog.String("reservationId", cancelled.ID),
		slog.String("actor", actor.UserID),
		slog.Bool("hasReason", cancelled.CancellationReason != ""),
	)

	w.notify(ctx, NotificationKindCancelled, cancelled)
	w.publish(ctx, domain.EventActionCancelled, cancelled)
	return cancelled, nil
}

func notificationKindForStatus(status domain.ReservationStatus) string {
	switch status {
	case domain.ReservationStatusConfirmed:
		return NotificationKindConfirmed
	case domain.ReservationStatusCancelled:
		return NotificationKindCancelled
	case domain.ReservationStatusCompleted:
		return NotificationKindCompleted
	default:
		return NotificationKindCreated
	}
}

func eventActionForStatus(status domain.ReservationStatus) string {
	switch status {
	case domain.ReservationStatusCancelled:
		return domain.EventActionCancelled
	case domain.ReservationStatusCompleted:
		return domain.EventActionCompleted
	default:
		return domain.EventActionUpdated
	}
}
