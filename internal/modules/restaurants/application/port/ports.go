package port

import (
	"context"
	"errors"

	"mesaYaApi/internal/modules/restaurants/domain"
)

var (
	ErrInsightsNotFound  = errors.New("insights not available for restaurant")
	ErrInsightsForbidden = errors.New("insights access denied")
)

// RestaurantRepository is the storage boundary for restaurant discovery.
type RestaurantRepository interface {
	GetByID(ctx context.Context, id string) (domain.Restaurant, error)
	GetByOwner(ctx context.Context, ownerID string) (domain.Restaurant, error)
	// ListActive returns the restaurants visible to the client-facing flow.
	ListActive(ctx context.Context) ([]domain.Restaurant, error)
	ListMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
}

// InsightsFetcher retrieves precomputed demand/cancellation/economics
// indicators from the external AI service. Read-only.
type InsightsFetcher interface {
	Fetch(ctx context.Context, restaurantID string) (map[string]any, error)
}
