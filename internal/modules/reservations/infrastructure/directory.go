package infrastructure

import (
	"context"

	"mesaYaApi/internal/modules/reservations/application/port"
	restaurantsport "mesaYaApi/internal/modules/restaurants/application/port"
	restaurants "mesaYaApi/internal/modules/restaurants/domain"
	usersport "mesaYaApi/internal/modules/users/application/port"
	users "mesaYaApi/internal/modules/users/domain"
)

// RestaurantDirectoryAdapter narrows the restaurant repository to the lookup
// the reservation workflow needs.
type RestaurantDirectoryAdapter struct {
	repo restaurantsport.RestaurantRepository
}

func NewRestaurantDirectoryAdapter(repo restaurantsport.RestaurantRepository) *RestaurantDirectoryAdapter {
	return &RestaurantDirectoryAdapter{repo: repo}
}

func (a *RestaurantDirectoryAdapter) GetRestaurant(ctx context.Context, id string) (restaurants.Restaurant, error) {
	return a.repo.GetByID(ctx, id)
}

// UserDirectoryAdapter narrows the user repository to recipient resolution.
type UserDirectoryAdapter struct {
	repo usersport.UserRepository
}

func NewUserDirectoryAdapter(repo usersport.UserRepository) *UserDirectoryAdapter {
	return &UserDirectoryAdapter{repo: repo}
}

func (a *UserDirectoryAdapter) GetUser(ctx context.Context, id string) (users.UserProfile, error) {
	return a.repo.GetByID(ctx, id)
}

var (
	_ port.RestaurantDirectory = (*RestaurantDirectoryAdapter)(nil)
	_ port.UserDirectory       = (*UserDirectoryAdapter)(nil)
)
