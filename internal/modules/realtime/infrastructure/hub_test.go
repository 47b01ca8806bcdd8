package infrastructure

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"mesaYaApi/internal/modules/realtime/domain"
)

func TestHubBroadcastReachesTopicSubscribers(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	client := NewClient(hub, nil, "user-1", "sess-1", "reservations", "rest-1", 4, nil)
	hub.AttachClient(client, []string{"reservations.created"})

	if got := hub.SubscriberCount("reservations.created"); got != 1 {
		t.Fatalf("expected 1 subscriber, got %d", got)
	}

	msg := &domain.Message{
		Topic:     "reservations.created",
		Entity:    "reservations",
		Action:    "created",
		Timestamp: time.Now().UTC(),
	}
	hub.Broadcast(context.Background(), msg)

	select {
	case data := <-client.send:
		var decoded domain.Message
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("decode broadcast: %v", err)
		}
		if decoded.Topic != "reservations.created" {
			t.Fatalf("unexpected topic: %s", decoded.Topic)
		}
	default:
		t.Fatal("expected queued broadcast")
	}
}

func TestHubBroadcastSkipsOtherTopics(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	client := NewClient(hub, nil, "user-1", "sess-1", "reservations", "rest-1", 4, nil)
	hub.AttachClient(client, []string{"reservations.created"})

	hub.Broadcast(context.Background(), &domain.Message{Topic: "reservations.cancelled"})

	select {
	case <-client.send:
		t.Fatal("client should not receive unrelated topics")
	default:
	}
}

func TestHubTargetedBroadcastFiltersByUser(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	alice := NewClient(hub, nil, "alice", "sess-1", "reservations", "rest-1", 4, nil)
	bob := NewClient(hub, nil, "bob", "sess-2", "reservations", "rest-1", 4, nil)
	hub.AttachClient(alice, []string{"reservations.updated"})
	hub.AttachClient(bob, []string{"reservations.updated"})

	hub.Broadcast(context.Background(), &domain.Message{
		Topic:    "reservations.updated",
		Metadata: map[string]string{"targetUserId": "alice"},
	})

	select {
	case <-alice.send:
	default:
		t.Fatal("targeted user should receive the message")
	}
	select {
	case <-bob.send:
		t.Fatal("other users should not receive targeted messages")
	default:
	}
}

func TestHubSectionScopedBroadcast(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ownerA := NewClient(hub, nil, "owner-a", "sess-1", "reservations", "rest-a", 4, nil)
	ownerB := NewClient(hub, nil, "owner-b", "sess-2", "reservations", "rest-b", 4, nil)
	admin := NewClient(hub, nil, "admin-1", "sess-3", "reservations", "-", 4, nil)
	hub.AttachClient(ownerA, []string{"reservations.list"})
	hub.AttachClient(ownerB, []string{"reservations.list"})
	hub.AttachClient(admin, []string{"reservations.list"})

	hub.Broadcast(context.Background(), &domain.Message{
		Topic:    "reservations.list",
		Metadata: map[string]string{"sectionId": "rest-a"},
	})

	select {
	case <-ownerA.send:
	default:
		t.Fatal("owner of the section must receive its list refresh")
	}
	select {
	case <-ownerB.send:
		t.Fatal("other restaurants must not receive foreign list refreshes")
	default:
	}
	select {
	case <-admin.send:
	default:
		t.Fatal("platform-wide admin stream must receive every section")
	}
}

func TestHubBroadcastAfterDetachDoesNotPanic(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	client := NewClient(hub, nil, "user-1", "sess-1", "reservations", "rest-1", 4, nil)
	hub.AttachClient(client, []string{"reservations.created"})

	client.close()
	hub.Broadcast(context.Background(), &domain.Message{Topic: "reservations.created"})
	client.SendMessage(&domain.Message{Topic: "reservations.created"})
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	client := NewClient(hub, nil, "user-1", "sess-1", "reservations", "rest-1", 4, nil)
	hub.AttachClient(client, []string{"reservations.created"})
	hub.unsubscribe(client, "reservations.created")

	if got := hub.SubscriberCount("reservations.created"); got != 0 {
		t.Fatalf("expected 0 subscribers, got %d", got)
	}
}
