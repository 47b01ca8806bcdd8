package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mesaYaApi/internal/modules/reservations/domain"
)

// availabilityTimeout bounds the slot check; it sits behind a user-facing
// debounce, so a slow answer is worse than "could not verify".
const availabilityTimeout = 10 * time.Second

// ErrAvailabilityUnverified signals that the slot could not be checked in time.
// Callers surface a warning and let the user proceed.
var ErrAvailabilityUnverified = errors.New("could not verify slot availability")

// CheckAvailability asks storage how many non-cancelled reservations occupy
// the slot, excluding excludeID, and derives the verdict against the capacity
// threshold. Read-only.
func (w *ReservationWorkflow) CheckAvailability(ctx context.Context, slot domain.Slot, excludeID string) (domain.Availability, error) {
	if slot.RestaurantID == "" {
		return domain.Availability{}, fmt.Errorf("%w: missing restaurant id", domain.ErrValidation)
	}
	if _, ok := domain.ParseDate(slot.Date); !ok {
		return domain.Availability{}, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, slot.Date)
	}
	if _, ok := domain.ParseTimeOfDay(slot.Time); !ok {
		return domain.Availability{}, fmt.Errorf("%w: invalid time %q", domain.ErrValidation, slot.Time)
	}

	ctx, cancel := context.WithTimeout(ctx, availabilityTimeout)
	defer cancel()

	slot.Time = domain.NormalizeTimeOfDay(slot.Time)
	existing, err := w.Repo.CountAtSlot(ctx, slot, excludeID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.Availability{}, fmt.Errorf("%w: %v", ErrAvailabilityUnverified, err)
		}
		return domain.Availability{}, err
	}
	return domain.BuildAvailability(existing, w.SlotCapacity), nil
}
