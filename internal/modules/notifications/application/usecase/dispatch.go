package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"mesaYaApi/internal/modules/notifications/application/port"
	"mesaYaApi/internal/modules/notifications/domain"
	reservations "mesaYaApi/internal/modules/reservations/domain"
)

const (
	defaultMaxAttempts = 3
	defaultBackoff     = 500 * time.Millisecond
	dedupeWindow       = 30 * time.Second
)

// Dispatcher composes reservation emails and hands them to the mailer.
// Delivery is best-effort: errors are returned for logging but callers treat
// them as non-fatal. A short dedupe window on (reservationId, kind) absorbs
// UI double-submission; transient failures are retried with backoff.
type Dispatcher struct {
	mailer      port.Mailer
	maxAttempts int
	backoff     time.Duration
	sleep       func(time.Duration)

	mu       sync.Mutex
	recently map[string]time.Time
	now      func() time.Time
}

func NewDispatcher(mailer port.Mailer) *Dispatcher {
	return &Dispatcher{
		mailer:      mailer,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
		sleep:       time.Sleep,
		recently:    make(map[string]time.Time),
		now:         time.Now,
	}
}

// NotifyReservation builds the email for the given kind and delivers it.
// Implements the reservations workflow notifier port.
func (d *Dispatcher) NotifyReservation(ctx context.Context, kind, recipient string, reservation reservations.Reservation) error {
	email, err := domain.BuildReservationEmail(kind, recipient, domain.ReservationDetails{
		ReservationID:  reservation.ID,
		RestaurantName: reservation.RestaurantName,
		CustomerName:   reservation.CustomerName,
		DateLabel:      reservations.FormatDateLabel(reservation.Date),
		TimeLabel:      reservations.FormatTimeLabel(reservation.Time),
		PartySize:      reservation.PartySize,
		SpecialRequest: reservation.SpecialRequest,
		CancelReason:   reservation.CancellationReason,
	})
	if err != nil {
		return err
	}

	dedupeKey := reservation.ID + ":" + kind
	if d.seenRecently(dedupeKey) {
		slog.Debug("duplicate email suppressed", slog.String("key", dedupeKey))
		return nil
	}
	return d.deliver(ctx, email, dedupeKey)
}

// SendWelcome delivers the account welcome email; no reservation details apply.
func (d *Dispatcher) SendWelcome(ctx context.Context, recipient, name string) error {
	email, err := domain.BuildReservationEmail(domain.KindWelcome, recipient, domain.ReservationDetails{CustomerName: name})
	if err != nil {
		return err
	}
	return d.deliver(ctx, email, "welcome:"+email.To)
}

func (d *Dispatcher) deliver(ctx context.Context, email domain.Email, dedupeKey string) error {
	var lastErr error
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		lastErr = d.mailer.Send(ctx, email)
		if lastErr == nil {
			d.markSent(dedupeKey)
			return nil
		}
		// A definitive rejection will not improve with retries.
		if errors.Is(lastErr, port.ErrMailRejected) {
			break
		}
		if attempt < d.maxAttempts {
			slog.Warn("email delivery retry",
				slog.String("to", email.To),
				slog.String("subject", email.Subject),
				slog.Int("attempt", attempt),
				slog.Any("error", lastErr),
			)
			d.sleep(d.backoff * time.Duration(attempt))
		}
	}
	slog.Error("email delivery failed",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
		slog.Any("error", lastErr),
	)
	return lastErr
}

func (d *Dispatcher) seenRecently(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	sentAt, ok := d.recently[key]
	if !ok {
		return false
	}
	if d.now().Sub(sentAt) > dedupeWindow {
		delete(d.recently, key)
		return false
	}
	return true
}

func (d *Dispatcher) markSent(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for existing, sentAt := range d.recently {
		if d.now().Sub(sentAt) > dedupeWindow {
			delete(d.recently, existing)
		}
	}
	d.recently[key] = d.now()
}
