package usecase

import (
	"context"
	"fmt"

	"mesaYaApi/internal/modules/restaurants/application/port"
	"mesaYaApi/internal/modules/restaurants/domain"
)

// Catalog serves the public browsing surface: restaurant listing,
// detail and menus.
type Catalog struct {
	Repo port.RestaurantRepository
}

func NewCatalog(repo port.RestaurantRepository) *Catalog {
	return &Catalog{Repo: repo}
}

func (c *Catalog) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return c.Repo.ListActive(ctx)
}

func (c *Catalog) GetRestaurant(ctx context.Context, id string) (domain.Restaurant, error) {
	return c.Repo.GetByID(ctx, id)
}

func (c *Catalog) GetMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	if _, err := c.Repo.GetByID(ctx, restaurantID); err != nil {
		return nil, fmt.Errorf("menu for unknown restaurant: %w", err)
	}
	return c.Repo.ListMenu(ctx, restaurantID)
}
