package ws

import (
	"context"
	"net/http"
	"time"

	"life-reloaded/internal/chat"
	"life-reloaded/internal/delivery/http/middleware"
	"life-reloaded/internal/domain/simulation"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// SimulationLoader reads the player's persisted setup for the sidebar.
type SimulationLoader interface {
	LoadSimulation(ctx context.Context, playerID uuid.UUID) (*simulation.Config, simulation.Summary, error)
}

type Handler struct {
	hub        *Hub
	loader     SimulationLoader
	narrator   chat.Narrator
	replyDelay time.Duration
	logger     *zap.Logger
}

func NewHandler(hub *Hub, loader SimulationLoader, narrator chat.Narrator, replyDelay time.Duration, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{hub: hub, loader: loader, narrator: narrator, replyDelay: replyDelay, logger: logger}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/game", h.HandleGameWS)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) HandleGameWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	summary := simulation.Summarize(nil, time.Now())
	if h.loader != nil {
		if _, s, err := h.loader.LoadSimulation(c.Context(), playerID); err != nil {
			h.logger.Warn("loading simulation for chat failed", zap.String("player_id", playerID.String()), zap.Error(err))
		} else {
			summary = s
		}
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("ws upgrade error", zap.Error(err))
			return
		}

		client := NewClient(h.hub, conn, playerID, h.logger)
		client.Attach(func(l chat.Listener) *chat.Session {
			return chat.NewSession(h.narrator,
				chat.WithReplyDelay(h.replyDelay),
				chat.WithLogger(h.logger),
				chat.WithListener(l),
			)
		})
		client.SendSnapshot(summary)

		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
