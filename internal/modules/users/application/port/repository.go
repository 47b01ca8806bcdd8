package port

import (
	"context"

	"mesaYaApi/internal/modules/users/domain"
)

// UserRepository is the storage boundary for platform accounts.
type UserRepository interface {
	Create(ctx context.Context, profile domain.UserProfile) (domain.UserProfile, error)
	GetByID(ctx context.Context, id string) (domain.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (domain.UserProfile, error)
}

// WelcomeMailer greets newly registered accounts. Failures must not block
// registration.
type WelcomeMailer interface {
	SendWelcome(ctx context.Context, recipient, name string) error
}
