package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrRestaurantInactive marks restaurants that do not accept client reservations.
	ErrRestaurantInactive = errors.New("restaurant not accepting reservations")
)

// RestaurantStatus gates whether a restaurant is visible to the client-facing flow.
type RestaurantStatus string

const (
	RestaurantStatusActive    RestaurantStatus = "ACTIVE"
	RestaurantStatusPending   RestaurantStatus = "PENDING"
	RestaurantStatusSuspended RestaurantStatus = "SUSPENDED"
)

// NormalizeRestaurantStatus returns the canonical status for the given input.
func NormalizeRestaurantStatus(value string) RestaurantStatus {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(RestaurantStatusActive):
		return RestaurantStatusActive
	case string(RestaurantStatusPending):
		return RestaurantStatusPending
	case string(RestaurantStatusSuspended):
		return RestaurantStatusSuspended
	default:
		return RestaurantStatusPending
	}
}

// Restaurant is the host side of a reservation. Open and close times are
// display-only; slot capacity is enforced by the availability check, not here.
type Restaurant struct {
	ID        string
	OwnerID   string
	Name      string
	Logo      string
	Address   string
	OpenTime  string // HH:MM
	CloseTime string // HH:MM
	Status    RestaurantStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AcceptsReservations reports whether the client-facing flow may book here.
func (r Restaurant) AcceptsReservations() bool {
	return r.Status == RestaurantStatusActive
}

// MenuItem is a dish on a restaurant's published menu (read side of the
// owner's menu management).
type MenuItem struct {
	ID           string
	RestaurantID string
	Name         string
	Description  string
	PriceCents   int
	Category     string
	Available    bool
}
