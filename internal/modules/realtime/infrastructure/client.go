package infrastructure

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"mesaYaApi/internal/modules/realtime/domain"
)

const (
	pingInterval  = 30 * time.Second
	pongWait      = 60 * time.Second
	writeDeadline = 5 * time.Second
	maxFrameSize  = 1 << 16
)

// Client is one websocket subscription bound to an authenticated user. The
// section pins the connection to one restaurant scope; the hub skips it for
// messages belonging to other sections.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	userID     string
	sessionID  string
	entity     string
	section    string
	commands   *CommandProcessor
	subscribed map[string]struct{}

	sendMu    sync.Mutex
	closed    bool
	closeOnce sync.Once
}

// NewClient wires a websocket connection into the hub with a bounded send buffer.
func NewClient(hub *Hub, conn *websocket.Conn, userID, sessionID, entity, section string, buf int, commandFn CommandHandler) *Client {
	client := &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, buf),
		userID:     userID,
		sessionID:  sessionID,
		entity:     strings.TrimSpace(entity),
		section:    strings.TrimSpace(section),
		subscribed: make(map[string]struct{}),
	}
	client.commands = NewCommandProcessor(hub, commandFn)
	return client
}

func (c *Client) key() string {
	return c.userID + ":" + c.sessionID
}

// inSection reports whether the client's scope covers the given section.
// Section "-" is the platform-wide admin stream.
func (c *Client) inSection(section string) bool {
	return c.section == "" || c.section == "-" || c.section == section
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		c.sendMu.Lock()
		c.closed = true
		close(c.send)
		c.sendMu.Unlock()
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

// trySend queues data without blocking. It reports false when the client is
// already detached or its buffer is full; the channel is only closed while
// sendMu is held, so this never races into a closed channel.
func (c *Client) trySend(data []byte) bool {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// SendMessage queues a message for delivery, detaching the client when the
// buffer is full.
func (c *Client) SendMessage(msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("websocket marshal error", slog.Any("error", err))
		return
	}
	if !c.trySend(data) {
		slog.Warn("websocket send buffer full", slog.String("userId", c.userID), slog.String("sessionId", c.sessionID), slog.String("entity", c.entity))
		go c.hub.detachClient(c)
	}
}

func (c *Client) WritePump() {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Warn("websocket write error", slog.Any("error", err))
				return
			}
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeDeadline)); err != nil {
				slog.Warn("websocket ping error", slog.Any("error", err))
				return
			}
		}
	}
}

func (c *Client) ReadPump() {
	c.conn.SetReadLimit(maxFrameSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	defer c.hub.detachClient(c)
	for {
		var cmd Command
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read error", slog.String("userId", c.userID), slog.String("sessionId", c.sessionID), slog.String("entity", c.entity), slog.Any("error", err))
			}
			return
		}
		if c.commands != nil {
			c.commands.Process(c, cmd)
		}
	}
}
