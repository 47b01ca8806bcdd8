package port

import (
	"context"

	"mesaYaApi/internal/modules/realtime/domain"
)

// Publisher pushes messages to connected websocket subscribers.
type Publisher interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}

// TopicHandler reacts to one broker topic's messages.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, msg *domain.Message) error
}
