package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"mesaYaApi/internal/modules/reservations/application/port"
	"mesaYaApi/internal/modules/reservations/domain"
)

// KafkaPublisher emits reservation change events to the broker so sibling
// services (and other instances of this one) can react. Publishing is
// best-effort: a broker outage is logged, never surfaced to the workflow.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	if len(brokers) == 0 {
		return nil
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			WriteTimeout:           5 * time.Second,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) {
	if p == nil || p.writer == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("kafka publish marshal error", slog.Any("error", err))
		return
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: event.Topic,
		Key:   []byte(event.ResourceID),
		Value: payload,
	})
	if err != nil {
		slog.Warn("kafka publish failed",
			slog.String("topic", event.Topic),
			slog.String("resourceId", event.ResourceID),
			slog.Any("error", err),
		)
		return
	}
	slog.Debug("kafka event published", slog.String("topic", event.Topic), slog.String("resourceId", event.ResourceID))
}

func (p *KafkaPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// FanoutPublisher delivers each event to every configured publisher, skipping
// nil entries so optional channels (broker, websocket) can be wired
// independently.
type FanoutPublisher struct {
	targets []port.EventPublisher
}

func NewFanoutPublisher(targets ...port.EventPublisher) *FanoutPublisher {
	kept := make([]port.EventPublisher, 0, len(targets))
	for _, target := range targets {
		if target != nil {
			kept = append(kept, target)
		}
	}
	return &FanoutPublisher{targets: kept}
}

func (f *FanoutPublisher) Publish(ctx context.Context, event domain.Event) {
	for _, target := range f.targets {
		target.Publish(ctx, event)
	}
}

var (
	_ port.EventPublisher = (*KafkaPublisher)(nil)
	_ port.EventPublisher = (*FanoutPublisher)(nil)
)
