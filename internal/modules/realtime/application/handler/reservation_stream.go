package handler

import (
	"context"
	"log/slog"
	"strings"

	"mesaYaApi/internal/modules/realtime/application/port"
	"mesaYaApi/internal/modules/realtime/application/usecase"
	"mesaYaApi/internal/modules/realtime/domain"
)

// ReservationStreamHandler forwards reservation events consumed from the
// broker to websocket subscribers and pushes a refreshed queue to the
// affected restaurant's list topic.
type ReservationStreamHandler struct {
	kafkaTopic     string
	allowedActions map[string]struct{}
	pub            port.Publisher
	feed           *usecase.ReservationFeed
}

func NewReservationStreamHandler(kafkaTopic string, allowedActions []string, pub port.Publisher, feed *usecase.ReservationFeed) *ReservationStreamHandler {
	actionSet := make(map[string]struct{}, len(allowedActions))
	for _, a := range allowedActions {
		if v := strings.TrimSpace(strings.ToLower(a)); v != "" {
			actionSet[v] = struct{}{}
		}
	}
	return &ReservationStreamHandler{
		kafkaTopic:     kafkaTopic,
		allowedActions: actionSet,
		pub:            pub,
		feed:           feed,
	}
}

func (h *ReservationStreamHandler) Topic() string { return h.kafkaTopic }

func (h *ReservationStreamHandler) Handle(ctx context.Context, msg *domain.Message) error {
	if len(h.allowedActions) > 0 {
		if _, ok := h.allowedActions[strings.ToLower(msg.Action)]; !ok {
			return nil
		}
	}
	if msg.Topic == "" && msg.Entity != "" && msg.Action != "" {
		msg.Topic = msg.Entity + "." + msg.Action
	}
	h.pub.Broadcast(ctx, msg)
	h.refreshList(ctx, msg)
	return nil
}

func (h *ReservationStreamHandler) refreshList(ctx context.Context, msg *domain.Message) {
	if h.feed == nil {
		return
	}
	restaurantID := ""
	if msg.Metadata != nil {
		restaurantID = strings.TrimSpace(msg.Metadata["restaurantId"])
	}
	if restaurantID == "" {
		return
	}
	list, err := h.feed.ListForRestaurant(ctx, restaurantID)
	if err != nil {
		slog.Warn("reservation stream refresh failed", slog.String("restaurantId", restaurantID), slog.Any("error", err))
		return
	}
	h.pub.Broadcast(ctx, list)
}

var _ port.TopicHandler = (*ReservationStreamHandler)(nil)
