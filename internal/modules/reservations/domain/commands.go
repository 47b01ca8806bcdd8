package domain

import (
	"fmt"
	"strings"
	"time"
)

// Platform-wide party size bounds, enforced before any storage call.
const (
	MinPartySize = 1
	MaxPartySize = 12
)

// CreateReservationCommand is the client payload for creating a reservation.
type CreateReservationCommand struct {
	UserID         string `json:"userId"`
	RestaurantID   string `json:"restaurantId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	PartySize      int    `json:"partySize"`
	SpecialRequest string `json:"specialRequest"`
}

// Validate checks the command shape without touching storage. Same-day
// reservations are allowed at creation; only past dates are rejected.
func (c CreateReservationCommand) Validate(now time.Time) error {
	if strings.TrimSpace(c.UserID) == "" {
		return fmt.Errorf("%w: missing user id", ErrValidation)
	}
	if strings.TrimSpace(c.RestaurantID) == "" {
		return fmt.Errorf("%w: missing restaurant id", ErrValidation)
	}
	date, ok := ParseDate(c.Date)
	if !ok {
		return fmt.Errorf("%w: invalid date %q", ErrValidation, c.Date)
	}
	if _, ok := ParseTimeOfDay(c.Time); !ok {
		return fmt.Errorf("%w: invalid time %q", ErrValidation, c.Time)
	}
	if c.PartySize < MinPartySize || c.PartySize > MaxPartySize {
		return fmt.Errorf("%w: party size %d out of range [%d,%d]", ErrValidation, c.PartySize, MinPartySize, MaxPartySize)
	}
	if date.Format(dateLayout) < now.Format(dateLayout) {
		return fmt.Errorf("%w: date %s is in the past", ErrValidation, c.Date)
	}
	return nil
}

// RescheduleReservationCommand mutates date/time of an existing reservation.
type RescheduleReservationCommand struct {
	ReservationID string `json:"reservationId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Reason        string `json:"reason"`
}

// Validate enforces the reschedule convention: the new slot must be tomorrow
// or later.
func (c RescheduleReservationCommand) Validate(now time.Time) error {
	if strings.TrimSpace(c.ReservationID) == "" {
		return fmt.Errorf("%w: missing reservation id", ErrValidation)
	}
	date, ok := ParseDate(c.Date)
	if !ok {
		return fmt.Errorf("%w: invalid date %q", ErrValidation, c.Date)
	}
	if _, ok := ParseTimeOfDay(c.Time); !ok {
		return fmt.Errorf("%w: invalid time %q", ErrValidation, c.Time)
	}
	tomorrow, _ := ParseDate(now.AddDate(0, 0, 1).Format(dateLayout))
	if date.Before(tomorrow) {
		return fmt.Errorf("%w: reschedule date %s must be tomorrow or later", ErrValidation, c.Date)
	}
	return nil
}

// CancelReservationCommand cancels a reservation with an optional reason.
type CancelReservationCommand struct {
	ReservationID string `json:"reservationId"`
	Reason        string `json:"reason"`
}

// Validate checks the command shape.
func (c CancelReservationCommand) Validate() error {
	if strings.TrimSpace(c.ReservationID) == "" {
		return fmt.Errorf("%w: missing reservation id", ErrValidation)
	}
	return nil
}

// TransitionCommand moves a reservation to a new lifecycle status.
type TransitionCommand struct {
	ReservationID string            `json:"reservationId"`
	NextStatus    ReservationStatus `json:"status"`
}

// Validate checks the command shape; edge legality is checked against the
// loaded reservation by the workflow.
func (c TransitionCommand) Validate() error {
	if strings.TrimSpace(c.ReservationID) == "" {
		return fmt.Errorf("%w: missing reservation id", ErrValidation)
	}
	if !c.NextStatus.IsKnown() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, string(c.NextStatus))
	}
	return nil
}
