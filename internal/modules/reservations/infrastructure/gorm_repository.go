package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mesaYaApi/internal/modules/reservations/application/port"
	"mesaYaApi/internal/modules/reservations/domain"
)

const displayColumns = "reservations.*, " +
	"restaurants.name AS restaurant_name, restaurants.logo AS restaurant_logo, " +
	"users.name AS customer_name, users.email AS customer_email"

// GormReservationRepository persists reservations in Postgres through GORM.
type GormReservationRepository struct {
	db *gorm.DB
}

func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

func (r *GormReservationRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("reservations").
		Select(displayColumns).
		Joins("LEFT JOIN restaurants ON restaurants.id = reservations.restaurant_id").
		Joins("LEFT JOIN users ON users.id = reservations.user_id")
}

func (r *GormReservationRepository) Create(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	row := toRow(reservation)
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		slog.Error("reservation insert failed", slog.String("restaurantId", row.RestaurantID), slog.Any("error", err))
		return domain.Reservation{}, fmt.Errorf("%w: %v", domain.ErrBackend, err)
	}
	return r.GetByID(ctx, row.ID)
}

func (r *GormReservationRepository) GetByID(ctx context.Context, id string) (domain.Reservation, error) {
	var row joinedReservationRow
	err := r.joined(ctx).Where("reservations.id = ?", id).Take(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.Reservation{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	case err != nil:
		return domain.Reservation{}, fmt.Errorf("%w: %v", domain.ErrBackend, err)
	}
	return toDomain(row), nil
}

func (r *GormReservationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	return r.list(r.joined(ctx).Where("reservations.user_id = ?", userID))
}

func (r *GormReservationRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Reservation, error) {
	return r.list(r.joined(ctx).Where("reservations.restaurant_id = ?", restaurantID))
}

func (r *GormReservationRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	return r.list(r.joined(ctx))
}

// list applies the dashboard ordering: date descending, then time descending.
// Same date+time rows keep storage-natural order.
func (r *GormReservationRepository) list(query *gorm.DB) ([]domain.Reservation, error) {
	var rows []joinedReservationRow
	if err := query.Order("reservations.date DESC, reservations.time DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackend, err)
	}
	reservations := make([]domain.Reservation, 0, len(rows))
	for _, row := range rows {
		reservations = append(reservations, toDomain(row))
	}
	return reservations, nil
}

func (r *GormReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (domain.Reservation, error) {
	return r.update(ctx, id, map[string]any{"status": string(status)})
}

func (r *GormReservationRepository) Reschedule(ctx context.Context, id, date, timeOfDay string) (domain.Reservation, error) {
	return r.update(ctx, id, map[string]any{
		"date": date,
		"time": domain.NormalizeTimeOfDay(timeOfDay),
	})
}

func (r *GormReservationRepository) Cancel(ctx context.Context, id, reason string) (domain.Reservation, error) {
	return r.update(ctx, id, map[string]any{
		"status":              string(domain.ReservationStatusCancelled),
		"cancellation_reason": reason,
	})
}

// update runs a single atomic field update; there is no version check, so
// concurrent writers follow last-write-wins.
func (r *GormReservationRepository) update(ctx context.Context, id string, fields map[string]any) (domain.Reservation, error) {
	result := r.db.WithContext(ctx).Model(&reservationRow{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		slog.Error("reservation update failed", slog.String("reservationId", id), slog.Any("error", result.Error))
		return domain.Reservation{}, fmt.Errorf("%w: %v", domain.ErrBackend, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.Reservation{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return r.GetByID(ctx, id)
}

func (r *GormReservationRepository) CountPending(ctx context.Context, restaurantID string) (int, error) {
	query := r.db.WithContext(ctx).Model(&reservationRow{}).
		Where("status = ?", string(domain.ReservationStatusPending))
	if restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrBackend, err)
	}
	return int(count), nil
}

func (r *GormReservationRepository) CountAtSlot(ctx context.Context, slot domain.Slot, excludeID string) (int, error) {
	query := r.db.WithContext(ctx).Model(&reservationRow{}).
		Where("restaurant_id = ?", slot.RestaurantID).
		Where("date = ?", slot.Date).
		Where("time = ?", domain.NormalizeTimeOfDay(slot.Time)).
		Where("status <> ?", string(domain.ReservationStatusCancelled))
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrBackend, err)
	}
	return int(count), nil
}

var _ port.ReservationRepository = (*GormReservationRepository)(nil)
