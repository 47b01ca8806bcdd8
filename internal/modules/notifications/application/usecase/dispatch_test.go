package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mesaYaApi/internal/modules/notifications/application/port"
	"mesaYaApi/internal/modules/notifications/domain"
	reservations "mesaYaApi/internal/modules/reservations/domain"
)

type fakeMailer struct {
	sent []domain.Email
	errs []error
}

func (f *fakeMailer) Send(_ context.Context, email domain.Email) error {
	f.sent = append(f.sent, email)
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

func newTestDispatcher(mailer *fakeMailer) *Dispatcher {
	d := NewDispatcher(mailer)
	d.sleep = func(time.Duration) {}
	return d
}

func sampleReservation() reservations.Reservation {
	return reservations.Reservation{
		ID:             "res-1",
		RestaurantName: "Le Bistro",
		CustomerName:   "Ana",
		Date:           "2025-06-01",
		Time:           "19:00",
		PartySize:      2,
	}
}

func TestDispatcherSendsReservationEmail(t *testing.T) {
	t.Parallel()

	mailer := &fakeMailer{}
	d := newTestDispatcher(mailer)

	if err := d.NotifyReservation(context.Background(), "created", "ana@example.com", sampleReservation()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one send, got %d", len(mailer.sent))
	}
	if mailer.sent[0].To != "ana@example.com" {
		t.Fatalf("unexpected recipient: %s", mailer.sent[0].To)
	}
}

func TestDispatcherRetriesTransientFailures(t *testing.T) {
	t.Parallel()

	mailer := &fakeMailer{errs: []error{port.ErrMailUnavailable, port.ErrMailUnavailable}}
	d := newTestDispatcher(mailer)

	if err := d.NotifyReservation(context.Background(), "confirmed", "ana@example.com", sampleReservation()); err != nil {
		t.Fatalf("expected third attempt to succeed, got %v", err)
	}
	if len(mailer.sent) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(mailer.sent))
	}
}

func TestDispatcherStopsOnRejection(t *testing.T) {
	t.Parallel()

	mailer := &fakeMailer{errs: []error{port.ErrMailRejected}}
	d := newTestDispatcher(mailer)

	err := d.NotifyReservation(context.Background(), "confirmed", "ana@example.com", sampleReservation())
	if !errors.Is(err, port.ErrMailRejected) {
		t.Fatalf("expected ErrMailRejected, got %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("rejection must not be retried, got %d attempts", len(mailer.sent))
	}
}

func TestDispatcherDedupesDoubleSubmission(t *testing.T) {
	t.Parallel()

	mailer := &fakeMailer{}
	d := newTestDispatcher(mailer)

	if err := d.NotifyReservation(context.Background(), "confirmed", "ana@example.com", sampleReservation()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.NotifyReservation(context.Background(), "confirmed", "ana@example.com", sampleReservation()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("duplicate (reservation, kind) within the window must be suppressed, got %d sends", len(mailer.sent))
	}

	// A different kind for the same reservation is a distinct notification.
	if err := d.NotifyReservation(context.Background(), "cancelled", "ana@example.com", sampleReservation()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("expected the cancelled email to go out, got %d sends", len(mailer.sent))
	}
}

func TestDispatcherDedupeWindowExpires(t *testing.T) {
	t.Parallel()

	mailer := &fakeMailer{}
	d := newTestDispatcher(mailer)
	current := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return current }

	if err := d.NotifyReservation(context.Background(), "confirmed", "ana@example.com", sampleReservation()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	current = current.Add(time.Minute)
	if err := d.NotifyReservation(context.Background(), "confirmed", "ana@example.com", sampleReservation()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("expired window must allow resend, got %d sends", len(mailer.sent))
	}
}

func TestDispatcherSendsWelcome(t *testing.T) {
	t.Parallel()

	mailer := &fakeMailer{}
	d := newTestDispatcher(mailer)

	if err := d.SendWelcome(context.Background(), "ana@example.com", "Ana"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one send, got %d", len(mailer.sent))
	}
	if mailer.sent[0].Subject != "Welcome to MesaYa" {
		t.Fatalf("unexpected subject: %s", mailer.sent[0].Subject)
	}
}
