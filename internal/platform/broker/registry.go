package broker

import (
	"context"

	"mesaYaApi/internal/modules/realtime/domain"
	"mesaYaApi/internal/modules/realtime/infrastructure"
)

// StartKafkaConsumers launches one consumer goroutine per topic, dispatching
// into the handler registry. With no brokers configured the broker layer is
// disabled entirely.
func StartKafkaConsumers(
	ctx context.Context,
	registry *infrastructure.HandlerRegistry,
	brokers []string,
	groupID string,
	topics []string,
) {
	if len(brokers) == 0 {
		return
	}
	for _, topic := range topics {
		go func(tp string) {
			consumer := NewKafkaConsumer(brokers, groupID, tp)
			_ = consumer.Consume(ctx, func(msg *domain.Message) error {
				return registry.Dispatch(ctx, msg)
			})
		}(topic)
	}
}
