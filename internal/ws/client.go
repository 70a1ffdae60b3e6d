package ws

import (
	"sync"
	"time"

	"life-reloaded/internal/chat"
	"life-reloaded/internal/domain/simulation"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

type inbound struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type outbound struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type snapshotPayload struct {
	chat.Snapshot
	Player simulation.Summary `json:"player"`
}

// Client is one websocket connection and the chat session it owns.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	session  *chat.Session
	playerID uuid.UUID
	logger   *zap.Logger

	mu     sync.Mutex
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, playerID uuid.UUID, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		playerID: playerID,
		logger:   logger,
	}
}

// Attach binds the chat session; its events are queued to the socket.
func (c *Client) Attach(newSession func(chat.Listener) *chat.Session) {
	c.session = newSession(c.onEvent)
}

func (c *Client) SendSnapshot(summary simulation.Summary) {
	if c.session == nil {
		return
	}
	c.enqueue(outbound{Type: "snapshot", Data: snapshotPayload{Snapshot: c.session.Snapshot(), Player: summary}})
}

func (c *Client) onEvent(evt chat.Event) {
	switch evt.Type {
	case chat.EventMessage:
		c.enqueue(outbound{Type: "message", Data: evt.Message})
	case chat.EventTyping:
		c.enqueue(outbound{Type: "typing", Data: map[string]bool{"typing": evt.Typing}})
	case chat.EventMonth:
		c.enqueue(outbound{Type: "month", Data: map[string]chat.Month{"month": evt.Month}})
	}
}

func (c *Client) enqueue(msg outbound) {
	b, err := json.Marshal(msg)
	if err != nil {
		c.logger.Warn("ws encode failed", zap.Error(err))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- b:
	default:
		c.logger.Warn("ws send dropped", zap.String("reason", "buffer_full"), zap.String("type", msg.Type))
	}
}

// teardown closes the session before the send queue, so no event is ever
// queued on a closed channel.
func (c *Client) teardown() {
	if c.session != nil {
		c.session.Close()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("ws read error", zap.Error(err))
			}
			return
		}

		var in inbound
		if err := json.Unmarshal(raw, &in); err != nil {
			c.enqueue(outbound{Type: "error", Data: map[string]string{"message": "invalid message"}})
			continue
		}

		switch in.Type {
		case "say":
			c.session.Send(in.Text)
		case "advance_month":
			c.session.AdvanceMonth()
		default:
			c.enqueue(outbound{Type: "error", Data: map[string]string{"message": "unknown message type"}})
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
