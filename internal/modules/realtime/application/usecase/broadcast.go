package usecase

import (
	"context"

	"mesaYaApi/internal/modules/realtime/application/port"
	"mesaYaApi/internal/modules/realtime/domain"
	reservations "mesaYaApi/internal/modules/reservations/domain"
)

// Broadcaster projects reservation change events onto the websocket channel.
// It satisfies the reservation workflow's publisher boundary so mutations
// reach open dashboards without the workflow knowing about websockets.
type Broadcaster struct {
	pub port.Publisher
}

func NewBroadcaster(pub port.Publisher) *Broadcaster {
	return &Broadcaster{pub: pub}
}

func (b *Broadcaster) Publish(ctx context.Context, event reservations.Event) {
	if b == nil || b.pub == nil {
		return
	}
	msg := &domain.Message{
		Topic:      event.Topic,
		Entity:     event.Entity,
		Action:     event.Action,
		ResourceID: event.ResourceID,
		Metadata:   event.Metadata,
		Data:       event.Data,
		Timestamp:  event.Timestamp,
	}
	b.pub.Broadcast(ctx, msg)
}
