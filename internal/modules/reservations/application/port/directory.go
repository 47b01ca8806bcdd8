package port

import (
	"context"

	restaurants "mesaYaApi/internal/modules/restaurants/domain"
	users "mesaYaApi/internal/modules/users/domain"
)

// RestaurantDirectory resolves host restaurants for validation and display joins.
type RestaurantDirectory interface {
	GetRestaurant(ctx context.Context, id string) (restaurants.Restaurant, error)
}

// UserDirectory resolves requester profiles, mainly for notification recipients.
type UserDirectory interface {
	GetUser(ctx context.Context, id string) (users.UserProfile, error)
}
