package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"mesaYaApi/internal/modules/users/application/port"
	"mesaYaApi/internal/modules/users/domain"
)

// Registrar handles account creation and the welcome greeting.
type Registrar struct {
	Repo   port.UserRepository
	Mailer port.WelcomeMailer

	now func() time.Time
}

func NewRegistrar(repo port.UserRepository, mailer port.WelcomeMailer) *Registrar {
	return &Registrar{Repo: repo, Mailer: mailer}
}

func (r *Registrar) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

// Register validates the payload, persists the account and fires a
// best-effort welcome email. A failed greeting never fails registration.
func (r *Registrar) Register(ctx context.Context, cmd domain.RegisterUserCommand) (domain.UserProfile, error) {
	if err := cmd.Validate(); err != nil {
		return domain.UserProfile{}, err
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if _, err := r.Repo.GetByEmail(ctx, email); err == nil {
		return domain.UserProfile{}, fmt.Errorf("%w: %s", domain.ErrEmailTaken, email)
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.UserProfile{}, fmt.Errorf("email lookup: %w", err)
	}

	role := domain.NormalizeRole(cmd.Role)
	if role == domain.RoleUnknown {
		role = domain.RoleClient
	}

	now := r.clock()
	profile := domain.UserProfile{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(cmd.Name),
		Email:     email,
		Role:      role,
		Status:    domain.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := r.Repo.Create(ctx, profile)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("create user: %w", err)
	}

	slog.Info("user registered",
		slog.String("userId", created.ID),
		slog.String("role", string(created.Role)),
	)

	if r.Mailer != nil {
		if err := r.Mailer.SendWelcome(ctx, created.Email, created.Name); err != nil {
			slog.Warn("welcome email failed",
				slog.String("userId", created.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	return created, nil
}

// GetProfile looks up an account by id.
func (r *Registrar) GetProfile(ctx context.Context, id string) (domain.UserProfile, error) {
	return r.Repo.GetByID(ctx, id)
}
