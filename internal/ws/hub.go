package ws

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Hub tracks live game connections and tears their chat sessions down on
// disconnect or shutdown.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves registrations until ctx ends. Once it returns, Register and
// Unregister no longer block and tear the client down directly.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.shutdown()
			return nil

		case client := <-h.register:
			if client == nil || client.isClosed() {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Info("ws connected",
				zap.String("player_id", client.playerID.String()),
				zap.Int("total_clients", total))

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			_, ok := h.clients[client]
			delete(h.clients, client)
			total := len(h.clients)
			h.mutex.Unlock()
			client.teardown()
			if !ok {
				continue
			}
			h.logger.Info("ws disconnected",
				zap.String("player_id", client.playerID.String()),
				zap.Int("total_clients", total))
		}
	}
}

func (h *Hub) shutdown() {
	h.mutex.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[*Client]bool)
	h.mutex.Unlock()

	for _, c := range clients {
		c.teardown()
	}
	for {
		select {
		case c := <-h.register:
			if c != nil {
				c.teardown()
			}
		case c := <-h.unregister:
			if c != nil {
				c.teardown()
			}
		default:
			return
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.register <- client:
	case <-h.done:
		if client != nil {
			client.teardown()
		}
	}
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
		if client != nil {
			client.teardown()
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
