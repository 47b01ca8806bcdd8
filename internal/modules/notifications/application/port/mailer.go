package port

import (
	"context"
	"errors"

	"mesaYaApi/internal/modules/notifications/domain"
)

var (
	// ErrMailRejected marks a definitive refusal (4xx); retrying will not help.
	ErrMailRejected = errors.New("mail endpoint rejected message")
	// ErrMailUnavailable marks a transient delivery failure worth retrying.
	ErrMailUnavailable = errors.New("mail endpoint unavailable")
)

// Mailer posts a fully composed email to the delivery endpoint.
type Mailer interface {
	Send(ctx context.Context, email domain.Email) error
}
