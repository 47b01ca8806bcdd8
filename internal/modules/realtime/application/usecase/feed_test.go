package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	realtime "mesaYaApi/internal/modules/realtime/domain"
	"mesaYaApi/internal/modules/reservations/domain"
)

type fakeReservationReader struct {
	listByRestaurant func(ctx context.Context, restaurantID string) ([]domain.Reservation, error)
}

func (f *fakeReservationReader) Create(context.Context, domain.Reservation) (domain.Reservation, error) {
	panic("not used")
}

func (f *fakeReservationReader) GetByID(context.Context, string) (domain.Reservation, error) {
	panic("not used")
}

func (f *fakeReservationReader) ListByUser(context.Context, string) ([]domain.Reservation, error) {
	panic("not used")
}

func (f *fakeReservationReader) ListByRestaurant(ctx context.Context, restaurantID string) ([]domain.Reservation, error) {
	return f.listByRestaurant(ctx, restaurantID)
}

func (f *fakeReservationReader) ListAll(context.Context) ([]domain.Reservation, error) {
	panic("not used")
}

func (f *fakeReservationReader) UpdateStatus(context.Context, string, domain.ReservationStatus) (domain.Reservation, error) {
	panic("not used")
}

func (f *fakeReservationReader) Reschedule(context.Context, string, string, string) (domain.Reservation, error) {
	panic("not used")
}

func (f *fakeReservationReader) Cancel(context.Context, string, string) (domain.Reservation, error) {
	panic("not used")
}

func (f *fakeReservationReader) CountPending(context.Context, string) (int, error) {
	panic("not used")
}

func (f *fakeReservationReader) CountAtSlot(context.Context, domain.Slot, string) (int, error) {
	panic("not used")
}

func TestReservationFeedListBuildsMessage(t *testing.T) {
	t.Parallel()

	repo := &fakeReservationReader{
		listByRestaurant: func(_ context.Context, restaurantID string) ([]domain.Reservation, error) {
			if restaurantID != "rest-1" {
				t.Fatalf("unexpected restaurant scope: %s", restaurantID)
			}
			return []domain.Reservation{{ID: "res-1"}, {ID: "res-2"}}, nil
		},
	}

	feed := NewReservationFeed(repo)
	feed.now = func() time.Time { return time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC) }

	msg, err := feed.ListForRestaurant(context.Background(), "rest-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Topic != "reservations.list" {
		t.Fatalf("unexpected topic: %s", msg.Topic)
	}
	if msg.Metadata["count"] != "2" {
		t.Fatalf("unexpected count metadata: %v", msg.Metadata)
	}
	if msg.Metadata["sectionId"] != "rest-1" {
		t.Fatalf("list refresh must carry its section scope: %v", msg.Metadata)
	}
	if msg.ResourceID != "rest-1" {
		t.Fatalf("unexpected resource id: %s", msg.ResourceID)
	}
}

func TestReservationFeedRequiresScope(t *testing.T) {
	t.Parallel()

	feed := NewReservationFeed(&fakeReservationReader{})
	if _, err := feed.ListForRestaurant(context.Background(), "  "); !errors.Is(err, ErrMissingScope) {
		t.Fatalf("expected ErrMissingScope, got %v", err)
	}
}

func TestBroadcasterProjectsEvent(t *testing.T) {
	t.Parallel()

	var got *realtime.Message
	pub := publisherFunc(func(_ context.Context, msg *realtime.Message) { got = msg })

	at := time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)
	event := domain.BuildReservationEvent(domain.EventActionUpdated, domain.Reservation{
		ID:           "res-1",
		RestaurantID: "rest-1",
		UserID:       "user-1",
		Status:       domain.ReservationStatusConfirmed,
	}, at)

	NewBroadcaster(pub).Publish(context.Background(), event)
	if got == nil {
		t.Fatal("expected broadcast")
	}
	if got.Topic != event.Topic || got.ResourceID != "res-1" {
		t.Fatalf("unexpected message: %+v", got)
	}
	if got.Metadata["restaurantId"] != "rest-1" {
		t.Fatalf("unexpected metadata: %v", got.Metadata)
	}
}

type publisherFunc func(ctx context.Context, msg *realtime.Message)

func (f publisherFunc) Broadcast(ctx context.Context, msg *realtime.Message) { f(ctx, msg) }
