package domain

import (
	"errors"
	"strings"
)

// Email kinds for the transactional reservation flow plus account welcome.
const (
	KindCreated     = "created"
	KindConfirmed   = "confirmed"
	KindCancelled   = "cancelled"
	KindCompleted   = "completed"
	KindRescheduled = "rescheduled"
	KindWelcome     = "welcome"
)

var knownKinds = map[string]struct{}{
	KindCreated:     {},
	KindConfirmed:   {},
	KindCancelled:   {},
	KindCompleted:   {},
	KindRescheduled: {},
	KindWelcome:     {},
}

var ErrUnknownKind = errors.New("unknown email kind")

// IsKnownKind reports whether kind is one of the supported email kinds.
func IsKnownKind(kind string) bool {
	_, ok := knownKinds[strings.ToLower(strings.TrimSpace(kind))]
	return ok
}

// Email is the payload posted to the mail endpoint.
type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// ReservationDetails carries the display values the templates render.
type ReservationDetails struct {
	ReservationID  string
	RestaurantName string
	CustomerName   string
	DateLabel      string
	TimeLabel      string
	PartySize      int
	SpecialRequest string
	CancelReason   string
}
