package domain

import "testing"

func TestFormatDateLabel(t *testing.T) {
	t.Parallel()

	if got := FormatDateLabel("2025-06-01"); got != "Sun, 01 Jun 2025" {
		t.Fatalf("unexpected label: %s", got)
	}
	if got := FormatDateLabel("not-a-date"); got != "not-a-date" {
		t.Fatalf("invalid input must pass through, got %s", got)
	}
}

func TestFormatTimeLabel(t *testing.T) {
	t.Parallel()

	if got := FormatTimeLabel("19:00:00"); got != "19:00" {
		t.Fatalf("seconds precision should collapse to minutes, got %s", got)
	}
	if got := FormatTimeLabel(" 08:30 "); got != "08:30" {
		t.Fatalf("unexpected label: %s", got)
	}
}

func TestFormatSlotLabel(t *testing.T) {
	t.Parallel()

	if got := FormatSlotLabel("2025-06-01", "19:00"); got != "Sun, 01 Jun 2025 at 19:00" {
		t.Fatalf("unexpected label: %s", got)
	}
}

func TestBuildReservationEvent(t *testing.T) {
	t.Parallel()

	reservation := Reservation{
		ID:           "res-1",
		UserID:       "user-1",
		RestaurantID: "rest-1",
		Status:       ReservationStatusConfirmed,
	}
	event := BuildReservationEvent(EventActionUpdated, reservation, testNow)

	if event.Topic != "reservations.updated" {
		t.Fatalf("unexpected topic: %s", event.Topic)
	}
	if event.ResourceID != "res-1" {
		t.Fatalf("unexpected resource id: %s", event.ResourceID)
	}
	if event.Metadata["restaurantId"] != "rest-1" {
		t.Fatalf("unexpected metadata: %v", event.Metadata)
	}
	if event.Metadata["status"] != "CONFIRMED" {
		t.Fatalf("unexpected status metadata: %v", event.Metadata)
	}
}
