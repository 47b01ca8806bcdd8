package infrastructure

import (
	"time"

	"mesaYaApi/internal/modules/reservations/domain"
)

// reservationRow is the storage shape of a reservation. Times are kept at
// minute precision; display fields live on joinedReservationRow only.
type reservationRow struct {
	ID                 string `gorm:"primaryKey;size:36"`
	UserID             string `gorm:"size:36;index"`
	RestaurantID       string `gorm:"size:36;index"`
	Date               string `gorm:"size:10;index"`
	Time               string `gorm:"size:8"`
	PartySize          int
	SpecialRequest     string
	CancellationReason string
	Status             string `gorm:"size:16;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (reservationRow) TableName() string { return "reservations" }

// joinedReservationRow adds the read-time display columns joined from the
// restaurants and users tables.
type joinedReservationRow struct {
	reservationRow
	RestaurantName string
	RestaurantLogo string
	CustomerName   string
	CustomerEmail  string
}

func toDomain(row joinedReservationRow) domain.Reservation {
	return domain.Reservation{
		ID:                 row.ID,
		UserID:             row.UserID,
		RestaurantID:       row.RestaurantID,
		Date:               row.Date,
		Time:               domain.NormalizeTimeOfDay(row.Time),
		PartySize:          row.PartySize,
		SpecialRequest:     row.SpecialRequest,
		CancellationReason: row.CancellationReason,
		Status:             domain.NormalizeReservationStatus(row.Status),
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
		RestaurantName:     row.RestaurantName,
		RestaurantLogo:     row.RestaurantLogo,
		CustomerName:       row.CustomerName,
		CustomerEmail:      row.CustomerEmail,
	}
}

func toRow(reservation domain.Reservation) reservationRow {
	return reservationRow{
		ID:                 reservation.ID,
		UserID:             reservation.UserID,
		RestaurantID:       reservation.RestaurantID,
		Date:               reservation.Date,
		Time:               domain.NormalizeTimeOfDay(reservation.Time),
		PartySize:          reservation.PartySize,
		SpecialRequest:     reservation.SpecialRequest,
		CancellationReason: reservation.CancellationReason,
		Status:             string(reservation.Status),
	}
}

// Migrations returns the models AutoMigrate needs for this module.
func Migrations() []any {
	return []any{&reservationRow{}}
}
