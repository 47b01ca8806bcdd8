package domain

import (
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// NormalizeTimeOfDay reduces a stored time-of-day to minute precision.
// Storage keeps seconds ("19:00:00"); every consumer works with "19:00".
func NormalizeTimeOfDay(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) >= 5 && strings.Count(trimmed, ":") == 2 {
		return trimmed[:5]
	}
	return trimmed
}

// ParseDate parses a calendar date in storage format.
func ParseDate(value string) (time.Time, bool) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// ParseTimeOfDay parses a time-of-day at minute precision, accepting an
// optional seconds component.
func ParseTimeOfDay(value string) (time.Time, bool) {
	parsed, err := time.Parse(timeLayout, NormalizeTimeOfDay(value))
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// FormatDateLabel renders a calendar date as a display-ready label,
// e.g. "Mon, 02 Jun 2025". Invalid input is returned unchanged.
func FormatDateLabel(date string) string {
	parsed, ok := ParseDate(date)
	if !ok {
		return strings.TrimSpace(date)
	}
	return parsed.Format("Mon, 02 Jan 2006")
}

// FormatTimeLabel renders a time-of-day at minute precision, e.g. "19:00".
func FormatTimeLabel(timeOfDay string) string {
	parsed, ok := ParseTimeOfDay(timeOfDay)
	if !ok {
		return strings.TrimSpace(timeOfDay)
	}
	return parsed.Format(timeLayout)
}

// FormatSlotLabel combines date and time into a single display label.
func FormatSlotLabel(date, timeOfDay string) string {
	dateLabel := FormatDateLabel(date)
	timeLabel := FormatTimeLabel(timeOfDay)
	if dateLabel == "" {
		return timeLabel
	}
	if timeLabel == "" {
		return dateLabel
	}
	return dateLabel + " at " + timeLabel
}
