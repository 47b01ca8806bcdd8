package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mesaYaApi/internal/modules/realtime/domain"
	reservationsport "mesaYaApi/internal/modules/reservations/application/port"
)

var (
	ErrMissingScope = errors.New("missing restaurant scope")
)

// ReservationFeed serves command-driven list refreshes over the websocket:
// a dashboard asks for the current queue and gets a fresh read back on the
// list topic.
type ReservationFeed struct {
	repo reservationsport.ReservationRepository
	now  func() time.Time
}

func NewReservationFeed(repo reservationsport.ReservationRepository) *ReservationFeed {
	return &ReservationFeed{repo: repo}
}

func (f *ReservationFeed) clock() time.Time {
	if f.now != nil {
		return f.now()
	}
	return time.Now()
}

// ListForRestaurant re-reads the restaurant's reservation queue and wraps it
// as a realtime list message.
func (f *ReservationFeed) ListForRestaurant(ctx context.Context, restaurantID string) (*domain.Message, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return nil, ErrMissingScope
	}
	reservations, err := f.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("refresh reservation list: %w", err)
	}
	return domain.BuildListMessage("reservations", restaurantID, reservations, len(reservations), f.clock()), nil
}
