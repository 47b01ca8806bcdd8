package domain

import "errors"

// Sentinel errors for the reservation workflow. Transport layers map these to HTTP
// statuses; retry logic may only target ErrBackend.
var (
	ErrNotFound          = errors.New("reservation not found")
	ErrValidation        = errors.New("invalid reservation input")
	ErrBackend           = errors.New("reservation storage failure")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrSlotUnavailable   = errors.New("slot unavailable")
	ErrForbidden         = errors.New("action not permitted for this user")
)
