package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mesaYaApi/internal/modules/restaurants/application/port"
	"mesaYaApi/internal/modules/restaurants/domain"
)

// GormRestaurantRepository reads the restaurant directory from Postgres.
type GormRestaurantRepository struct {
	db *gorm.DB
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

func (r *GormRestaurantRepository) GetByID(ctx context.Context, id string) (domain.Restaurant, error) {
	var row restaurantRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.Restaurant{}, fmt.Errorf("%w: %s", domain.ErrRestaurantNotFound, id)
	case err != nil:
		return domain.Restaurant{}, fmt.Errorf("restaurant lookup: %w", err)
	}
	return toDomainRestaurant(row), nil
}

func (r *GormRestaurantRepository) GetByOwner(ctx context.Context, ownerID string) (domain.Restaurant, error) {
	var row restaurantRow
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Take(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.Restaurant{}, fmt.Errorf("%w: owner %s", domain.ErrRestaurantNotFound, ownerID)
	case err != nil:
		return domain.Restaurant{}, fmt.Errorf("restaurant lookup: %w", err)
	}
	return toDomainRestaurant(row), nil
}

func (r *GormRestaurantRepository) ListActive(ctx context.Context) ([]domain.Restaurant, error) {
	var rows []restaurantRow
	err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.RestaurantStatusActive)).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("restaurant list: %w", err)
	}
	restaurants := make([]domain.Restaurant, 0, len(rows))
	for _, row := range rows {
		restaurants = append(restaurants, toDomainRestaurant(row))
	}
	return restaurants, nil
}

func (r *GormRestaurantRepository) ListMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	var rows []menuItemRow
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND available = ?", restaurantID, true).
		Order("category ASC, name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("menu list: %w", err)
	}
	items := make([]domain.MenuItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toDomainMenuItem(row))
	}
	return items, nil
}

var _ port.RestaurantRepository = (*GormRestaurantRepository)(nil)
