package domain

import "time"

// Reservation is a booking linking a client to a restaurant for a date, time and
// party size. Restaurant and customer display fields are joined in at read time
// for dashboards; they are never part of the canonical record.
type Reservation struct {
	ID                 string            `json:"id"`
	UserID             string            `json:"userId"`
	RestaurantID       string            `json:"restaurantId"`
	Date               string            `json:"date"` // YYYY-MM-DD
	Time               string            `json:"time"` // HH:MM
	PartySize          int               `json:"partySize"`
	SpecialRequest     string            `json:"specialRequest,omitempty"`
	CancellationReason string            `json:"cancellationReason,omitempty"`
	Status             ReservationStatus `json:"status"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`

	RestaurantName string `json:"restaurantName,omitempty"`
	RestaurantLogo string `json:"restaurantLogo,omitempty"`
	CustomerName   string `json:"customerName,omitempty"`
	CustomerEmail  string `json:"customerEmail,omitempty"`
}

// ReservationList aggregates reservations with a total for dashboard pagination.
type ReservationList struct {
	Items []Reservation
	Total int
}

// Slot identifies a (restaurant, date, time) tuple whose capacity is checked
// for conflicts.
type Slot struct {
	RestaurantID string
	Date         string
	Time         string
}

// SameSlot reports whether the reservation already occupies the given date and time.
// Callers use this to skip the availability check for an unchanged reschedule target.
func (r Reservation) SameSlot(date, timeOfDay string) bool {
	return r.Date == date && NormalizeTimeOfDay(r.Time) == NormalizeTimeOfDay(timeOfDay)
}
