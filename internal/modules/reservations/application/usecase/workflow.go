package usecase

import (
	"context"
	"log/slog"
	"time"

	"mesaYaApi/internal/modules/reservations/application/port"
	"mesaYaApi/internal/modules/reservations/domain"
)

// Notification kinds attempted after reservation mutations. The mutate-then-notify
// contract is one-way: a failed send never rolls back or blocks the mutation.
const (
	NotificationKindCreated     = "created"
	NotificationKindConfirmed   = "confirmed"
	NotificationKindCancelled   = "cancelled"
	NotificationKindCompleted   = "completed"
	NotificationKindRescheduled = "rescheduled"
)

// DefaultSlotCapacity is the number of non-cancelled reservations a slot holds
// before the availability check reports it full.
const DefaultSlotCapacity = 5

// ReservationWorkflow orchestrates reservation mutations: repository first, then
// best-effort notification and realtime event fan-out.
type ReservationWorkflow struct {
	Repo        port.ReservationRepository
	Restaurants port.RestaurantDirectory
	Users       port.UserDirectory
	Notifier    port.ReservationNotifier
	Events      port.EventPublisher

	SlotCapacity int
	now          func() time.Time
}

// NewReservationWorkflow wires the workflow with its collaborators.
func NewReservationWorkflow(
	repo port.ReservationRepository,
	restaurants port.RestaurantDirectory,
	users port.UserDirectory,
	notifier port.ReservationNotifier,
	events port.EventPublisher,
	slotCapacity int,
) *ReservationWorkflow {
	if slotCapacity <= 0 {
		slotCapacity = DefaultSlotCapacity
	}
	return &ReservationWorkflow{
		Repo:         repo,
		Restaurants:  restaurants,
		Users:        users,
		Notifier:     notifier,
		Events:       events,
		SlotCapacity: slotCapacity,
		now:          time.Now,
	}
}

func (w *ReservationWorkflow) clock() time.Time {
	if w.now != nil {
		return w.now()
	}
	return time.Now()
}

// notify attempts a single transactional email for the reservation and reports
// whether delivery was handed off. Failures are logged and swallowed.
func (w *ReservationWorkflow) notify(ctx context.Context, kind string, reservation domain.Reservation) bool {
	if w.Notifier == nil {
		return false
	}
	recipient := reservation.CustomerEmail
	if recipient == "" && w.Users != nil {
		user, err := w.Users.GetUser(ctx, reservation.UserID)
		if err != nil {
			slog.Warn("notification recipient lookup failed", slog.String("kind", kind), slog.String("reservationId", reservation.ID), slog.Any("error", err))
			return false
		}
		recipient = user.Email
	}
	if recipient == "" {
		slog.Warn("notification skipped, no recipient", slog.String("kind", kind), slog.String("reservationId", reservation.ID))
		return false
	}
	if err := w.Notifier.NotifyReservation(ctx, kind, recipient, reservation); err != nil {
		slog.Warn("notification send failed", slog.String("kind", kind), slog.String("reservationId", reservation.ID), slog.Any("error", err))
		return false
	}
	return true
}

func (w *ReservationWorkflow) publish(ctx context.Context, action string, reservation domain.Reservation) {
	if w.Events == nil {
		return
	}
	w.Events.Publish(ctx, domain.BuildReservationEvent(action, reservation, w.clock()))
}
