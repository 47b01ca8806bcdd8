package infrastructure

import (
	"time"

	"mesaYaApi/internal/modules/restaurants/domain"
)

type restaurantRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	OwnerID   string `gorm:"size:36;index"`
	Name      string `gorm:"size:120"`
	Logo      string
	Address   string
	OpenTime  string `gorm:"size:8"`
	CloseTime string `gorm:"size:8"`
	Status    string `gorm:"size:16;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (restaurantRow) TableName() string { return "restaurants" }

type menuItemRow struct {
	ID           string `gorm:"primaryKey;size:36"`
	RestaurantID string `gorm:"size:36;index"`
	Name         string `gorm:"size:120"`
	Description  string
	PriceCents   int
	Category     string `gorm:"size:64"`
	Available    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (menuItemRow) TableName() string { return "menu_items" }

func toDomainRestaurant(row restaurantRow) domain.Restaurant {
	return domain.Restaurant{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Name:      row.Name,
		Logo:      row.Logo,
		Address:   row.Address,
		OpenTime:  row.OpenTime,
		CloseTime: row.CloseTime,
		Status:    domain.NormalizeRestaurantStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toDomainMenuItem(row menuItemRow) domain.MenuItem {
	return domain.MenuItem{
		ID:           row.ID,
		RestaurantID: row.RestaurantID,
		Name:         row.Name,
		Description:  row.Description,
		PriceCents:   row.PriceCents,
		Category:     row.Category,
		Available:    row.Available,
	}
}

// Migrations returns the models AutoMigrate needs for this module.
func Migrations() []any {
	return []any{&restaurantRow{}, &menuItemRow{}}
}
