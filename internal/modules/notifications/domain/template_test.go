package domain

import (
	"errors"
	"strings"
	"testing"
)

func sampleDetails() ReservationDetails {
	return ReservationDetails{
		ReservationID:  "res-1",
		RestaurantName: "Le Bistro",
		CustomerName:   "Ana",
		DateLabel:      "Sun, 01 Jun 2025",
		TimeLabel:      "19:00",
		PartySize:      2,
	}
}

func TestBuildReservationEmailSharedTemplate(t *testing.T) {
	t.Parallel()

	email, err := BuildReservationEmail(KindConfirmed, " ana@example.com ", sampleDetails())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email.To != "ana@example.com" {
		t.Fatalf("unexpected recipient: %q", email.To)
	}
	if email.Subject != "Your reservation is confirmed" {
		t.Fatalf("unexpected subject: %q", email.Subject)
	}
	for _, fragment := range []string{"Reservation confirmed", "Le Bistro", "Sun, 01 Jun 2025", "19:00", "Hello Ana"} {
		if !strings.Contains(email.HTML, fragment) {
			t.Fatalf("email body missing %q", fragment)
		}
	}
}

func TestBuildReservationEmailCancelledIncludesReason(t *testing.T) {
	t.Parallel()

	details := sampleDetails()
	details.CancelReason = "restaurant closed for renovation"
	email, err := BuildReservationEmail(KindCancelled, "ana@example.com", details)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(email.HTML, "restaurant closed for renovation") {
		t.Fatal("cancelled email must include the reason")
	}

	confirmed, err := BuildReservationEmail(KindConfirmed, "ana@example.com", details)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(confirmed.HTML, "restaurant closed for renovation") {
		t.Fatal("non-cancelled emails must ignore the cancellation reason")
	}
}

func TestBuildReservationEmailEscapesUserContent(t *testing.T) {
	t.Parallel()

	details := sampleDetails()
	details.SpecialRequest = `<script>alert("x")</script>`
	email, err := BuildReservationEmail(KindCreated, "ana@example.com", details)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(email.HTML, "<script>") {
		t.Fatal("user content must be escaped")
	}
}

func TestBuildReservationEmailUnknownKind(t *testing.T) {
	t.Parallel()

	if _, err := BuildReservationEmail("seated", "ana@example.com", sampleDetails()); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
