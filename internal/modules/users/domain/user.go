package domain

import (
	"errors"
	"strings"
	"time"
)

// Role determines which reservation workflow branch applies to a user.
type Role string

const (
	RoleUnknown    Role = ""
	RoleClient     Role = "CLIENT"
	RoleRestaurant Role = "RESTAURANT"
	RoleAdmin      Role = "ADMIN"
)

// UserStatus gates platform access.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUserValidation = errors.New("invalid user input")
	ErrEmailTaken     = errors.New("email already registered")
)

// UserProfile is the platform account record.
type UserProfile struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	Status       UserStatus
	RestaurantID string // set for RESTAURANT accounts
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeRole returns the canonical Role for the given input.
func NormalizeRole(value string) Role {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(RoleClient):
		return RoleClient
	case string(RoleRestaurant):
		return RoleRestaurant
	case string(RoleAdmin):
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

// RoleFromClaims resolves the first recognized role from a JWT roles claim,
// defaulting to CLIENT when none matches.
func RoleFromClaims(roles []string) Role {
	for _, raw := range roles {
		if role := NormalizeRole(raw); role != RoleUnknown {
			return role
		}
	}
	return RoleClient
}

// RegisterUserCommand is the payload for account registration.
type RegisterUserCommand struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Validate checks the registration payload shape.
func (c RegisterUserCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrUserValidation
	}
	email := strings.TrimSpace(c.Email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrUserValidation
	}
	return nil
}
