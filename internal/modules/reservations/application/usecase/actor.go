package usecase

import (
	"mesaYaApi/internal/modules/reservations/domain"
	users "mesaYaApi/internal/modules/users/domain"
)

// Actor is the authenticated principal performing a workflow action.
type Actor struct {
	UserID       string
	Role         users.Role
	RestaurantID string // set for RESTAURANT accounts
}

// canTransition reports whether the actor may apply a status change to the
// reservation. Admins act platform-wide, restaurant accounts only on their own
// restaurant, clients only cancel their own pending reservations.
func (a Actor) canTransition(reservation domain.Reservation, next domain.ReservationStatus) bool {
	switch a.Role {
	case users.RoleAdmin:
		return true
	case users.RoleRestaurant:
		return a.RestaurantID != "" && a.RestaurantID == reservation.RestaurantID
	case users.RoleClient:
		return next == domain.ReservationStatusCancelled &&
			a.UserID == reservation.UserID &&
			reservation.Status == domain.ReservationStatusPending
	default:
		return false
	}
}

// canReschedule reports whether the actor may move the reservation to a new slot.
func (a Actor) canReschedule(reservation domain.Reservation) bool {
	switch a.Role {
	case users.RoleAdmin:
		return true
	case users.RoleClient:
		return a.UserID == reservation.UserID
	default:
		return false
	}
}

// CanViewRestaurant reports whether the actor may read a restaurant's queue.
// The websocket surface applies the same rule to dashboard sections.
func (a Actor) CanViewRestaurant(restaurantID string) bool {
	switch a.Role {
	case users.RoleAdmin:
		return true
	case users.RoleRestaurant:
		return a.RestaurantID != "" && a.RestaurantID == restaurantID
	default:
		return false
	}
}
