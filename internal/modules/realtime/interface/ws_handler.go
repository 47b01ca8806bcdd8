package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"mesaYaApi/internal/modules/realtime/application/usecase"
	"mesaYaApi/internal/modules/realtime/domain"
	"mesaYaApi/internal/modules/realtime/infrastructure"
	reservations "mesaYaApi/internal/modules/reservations/application/usecase"
	restaurantsport "mesaYaApi/internal/modules/restaurants/application/port"
	users "mesaYaApi/internal/modules/users/domain"
	"mesaYaApi/internal/shared/auth"
	"mesaYaApi/internal/shared/normalization"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const sendBuffer = 8

// reservationActions are the change topics every reservation subscriber gets.
var reservationActions = []string{"created", "updated", "cancelled", "completed", "rescheduled"}

// NewWebsocketHandler exposes /ws/:entity/:section. The section is the
// restaurant scope for dashboard connections; the token comes from the query
// string or the Authorization header and is validated locally. Connections
// are authorized against the section with the same rule the REST queue
// endpoints apply: admins anywhere, restaurant accounts only on their own
// restaurant.
func NewWebsocketHandler(
	hub *infrastructure.Hub,
	feed *usecase.ReservationFeed,
	validator auth.TokenValidator,
	directory restaurantsport.RestaurantRepository,
) func(echo.Context) error {
	return func(c echo.Context) error {
		entity := normalization.NormalizeEntity(c.Param("entity"))
		if entity == "" {
			entity = "reservations"
		}
		if !normalization.IsValidEntity(entity) {
			slog.Warn("ws handler entity not integrated", slog.String("entity", entity))
			return echo.NewHTTPError(http.StatusNotFound, "entity "+entity+" is not integrated")
		}

		section := strings.TrimSpace(c.Param("section"))
		if section == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "missing section")
		}

		token := auth.ExtractToken(c.Request(), "token")
		claims, err := validator.Validate(token)
		if err != nil {
			status := http.StatusUnauthorized
			message := "invalid token"
			if errors.Is(err, auth.ErrMissingToken) {
				status = http.StatusBadRequest
				message = "missing token"
			}
			slog.Warn("ws handler auth failed", slog.String("entity", entity), slog.String("section", section), slog.Any("error", err))
			return echo.NewHTTPError(status, message)
		}

		userID := claims.RegisteredClaims.Subject
		sessionID := claims.SessionID

		actor := reservations.Actor{UserID: userID, Role: users.RoleFromClaims(claims.Roles)}
		if actor.Role == users.RoleRestaurant && directory != nil {
			if owned, err := directory.GetByOwner(c.Request().Context(), userID); err == nil {
				actor.RestaurantID = owned.ID
			}
		}
		if !actor.CanViewRestaurant(section) {
			slog.Warn("ws handler section denied",
				slog.String("entity", entity),
				slog.String("sectionId", section),
				slog.String("userId", userID),
				slog.String("role", string(actor.Role)),
			)
			return echo.NewHTTPError(http.StatusForbidden, "section not permitted")
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("ws handler upgrade failed", slog.String("entity", entity), slog.Any("error", err))
			return err
		}

		client := infrastructure.NewClient(hub, conn, userID, sessionID, entity, section, sendBuffer, newReservationCommandHandler(entity, section, feed))

		topics := buildTopics(entity)
		hub.AttachClient(client, topics)

		go client.WritePump()
		go client.ReadPump()

		connected := &domain.Message{
			Topic:  "system.connected",
			Entity: "system",
			Action: "connected",
			Metadata: map[string]string{
				"userId":    userID,
				"sessionId": sessionID,
				"sectionId": section,
			},
			Data: map[string]any{
				"entity":        entity,
				"sectionId":     section,
				"allowedTopics": topics,
				"roles":         claims.Roles,
			},
			Timestamp: time.Now().UTC(),
		}
		client.SendMessage(connected)
		slog.Info("ws connected",
			slog.String("entity", entity),
			slog.String("sectionId", section),
			slog.String("userId", userID),
			slog.String("sessionId", sessionID),
		)

		return nil
	}
}

func buildTopics(entity string) []string {
	entity = strings.TrimSpace(entity)
	topics := []string{domain.ListTopic(entity), domain.ErrorTopic(entity)}
	seen := map[string]struct{}{topics[0]: {}, topics[1]: {}}
	for _, action := range reservationActions {
		topic := entity + "." + action
		if _, exists := seen[topic]; exists {
			continue
		}
		topics = append(topics, topic)
		seen[topic] = struct{}{}
	}
	return topics
}

func sendCommandError(client *infrastructure.Client, entity, section, action, reason string) {
	metadata := map[string]string{
		"sectionId": section,
		"action":    action,
	}
	if strings.TrimSpace(reason) != "" {
		metadata["reason"] = reason
	}
	message := &domain.Message{
		Topic:      domain.ErrorTopic(entity),
		Entity:     entity,
		Action:     "error",
		ResourceID: section,
		Metadata:   metadata,
		Data:       map[string]string{"error": reason},
		Timestamp:  time.Now().UTC(),
	}
	client.SendMessage(message)
}

// newReservationCommandHandler serves command-driven refreshes: a "list"
// command re-reads the restaurant queue scoped by the connection's section.
func newReservationCommandHandler(entity, section string, feed *usecase.ReservationFeed) infrastructure.CommandHandler {
	return func(cmdCtx context.Context, client *infrastructure.Client, cmd infrastructure.Command) {
		action := strings.ToLower(strings.TrimSpace(cmd.Action))
		switch action {
		case "list", "list_reservations", "fetch_all":
			if feed == nil {
				sendCommandError(client, entity, section, "list", "refresh unavailable")
				return
			}
			message, err := feed.ListForRestaurant(cmdCtx, section)
			if err != nil {
				slog.Warn("ws reservation list failed", slog.String("entity", entity), slog.String("sectionId", section), slog.Any("error", err))
				sendCommandError(client, entity, section, "list", err.Error())
				return
			}
			client.SendMessage(message)
		default:
			slog.Debug("ws unknown action", slog.String("entity", entity), slog.String("sectionId", section), slog.String("action", cmd.Action))
			sendCommandError(client, entity, section, "unknown", "unsupported action")
		}
	}
}
