package domain

import "fmt"

// Availability is the outcome of a slot capacity check.
type Availability struct {
	Available            bool   `json:"available"`
	Message              string `json:"message"`
	ExistingReservations int    `json:"existing_reservations"`
}

// BuildAvailability derives the availability verdict from the number of
// non-cancelled reservations already occupying the slot.
func BuildAvailability(existing, capacity int) Availability {
	if capacity > 0 && existing >= capacity {
		return Availability{
			Available:            false,
			Message:              fmt.Sprintf("slot is full (%d of %d seats taken)", existing, capacity),
			ExistingReservations: existing,
		}
	}
	return Availability{
		Available:            true,
		Message:              "slot is available",
		ExistingReservations: existing,
	}
}
