package domain

import (
	"strconv"
	"strings"
	"time"
)

// Message is the envelope pushed to websocket subscribers.
type Message struct {
	Topic      string            `json:"topic"`
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// ListTopic is the topic carrying command-driven list refreshes for an entity.
func ListTopic(entity string) string {
	return strings.TrimSpace(entity) + ".list"
}

// ErrorTopic is the topic carrying command failures back to the caller.
func ErrorTopic(entity string) string {
	return strings.TrimSpace(entity) + ".error"
}

// BuildListMessage wraps a refreshed collection for push delivery. The
// resource id doubles as the section scope so the hub only delivers the
// snapshot to connections attached to that section.
func BuildListMessage(entity, resourceID string, items any, count int, at time.Time) *Message {
	entity = strings.TrimSpace(entity)
	resourceID = strings.TrimSpace(resourceID)
	metadata := map[string]string{"count": strconv.Itoa(count)}
	if resourceID != "" {
		metadata["sectionId"] = resourceID
	}
	return &Message{
		Topic:      ListTopic(entity),
		Entity:     entity,
		Action:     "list",
		ResourceID: resourceID,
		Metadata:   metadata,
		Data:       items,
		Timestamp:  at.UTC(),
	}
}
