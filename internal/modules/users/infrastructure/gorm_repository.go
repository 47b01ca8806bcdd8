package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"mesaYaApi/internal/modules/users/application/port"
	"mesaYaApi/internal/modules/users/domain"
)

type userRow struct {
	ID           string `gorm:"primaryKey;size:36"`
	Name         string `gorm:"size:120"`
	Email        string `gorm:"size:254;uniqueIndex"`
	Role         string `gorm:"size:16"`
	Status       string `gorm:"size:16"`
	RestaurantID string `gorm:"size:36;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRow) TableName() string { return "users" }

func toDomainUser(row userRow) domain.UserProfile {
	return domain.UserProfile{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		Role:         domain.NormalizeRole(row.Role),
		Status:       domain.UserStatus(row.Status),
		RestaurantID: row.RestaurantID,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func toUserRow(profile domain.UserProfile) userRow {
	return userRow{
		ID:           profile.ID,
		Name:         profile.Name,
		Email:        strings.ToLower(strings.TrimSpace(profile.Email)),
		Role:         string(profile.Role),
		Status:       string(profile.Status),
		RestaurantID: profile.RestaurantID,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}
}

// Migrations returns the models AutoMigrate needs for this module.
func Migrations() []any {
	return []any{&userRow{}}
}

// GormUserRepository stores platform accounts in Postgres.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, profile domain.UserProfile) (domain.UserProfile, error) {
	row := toUserRow(profile)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserProfile{}, fmt.Errorf("%w: %s", domain.ErrEmailTaken, row.Email)
		}
		return domain.UserProfile{}, fmt.Errorf("insert user: %w", err)
	}
	return toDomainUser(row), nil
}

func (r *GormUserRepository) GetByID(ctx context.Context, id string) (domain.UserProfile, error) {
	var row userRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.UserProfile{}, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	case err != nil:
		return domain.UserProfile{}, fmt.Errorf("user lookup: %w", err)
	}
	return toDomainUser(row), nil
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (domain.UserProfile, error) {
	var row userRow
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Take(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.UserProfile{}, fmt.Errorf("%w: %s", domain.ErrUserNotFound, email)
	case err != nil:
		return domain.UserProfile{}, fmt.Errorf("user lookup: %w", err)
	}
	return toDomainUser(row), nil
}

var _ port.UserRepository = (*GormUserRepository)(nil)
