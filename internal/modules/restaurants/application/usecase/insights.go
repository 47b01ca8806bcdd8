package usecase

import (
	"context"
	"fmt"

	"mesaYaApi/internal/modules/restaurants/application/port"
	users "mesaYaApi/internal/modules/users/domain"
)

// Insights gates access to the AI indicators of a restaurant. Only the
// owning restaurant account and admins may read them.
type Insights struct {
	Repo    port.RestaurantRepository
	Fetcher port.InsightsFetcher
}

func NewInsights(repo port.RestaurantRepository, fetcher port.InsightsFetcher) *Insights {
	return &Insights{Repo: repo, Fetcher: fetcher}
}

// Viewer is the authenticated principal asking for insights.
type Viewer struct {
	UserID       string
	Role         users.Role
	RestaurantID string
}

func (v Viewer) canView(restaurantID string) bool {
	switch v.Role {
	case users.RoleAdmin:
		return true
	case users.RoleRestaurant:
		return v.RestaurantID != "" && v.RestaurantID == restaurantID
	default:
		return false
	}
}

func (i *Insights) Fetch(ctx context.Context, viewer Viewer, restaurantID string) (map[string]any, error) {
	if !viewer.canView(restaurantID) {
		return nil, fmt.Errorf("%w: restaurant %s", port.ErrInsightsForbidden, restaurantID)
	}
	if _, err := i.Repo.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}
	return i.Fetcher.Fetch(ctx, restaurantID)
}
