package app

import (
	"fmt"
	"strings"

	"life-reloaded/internal/chat"
	"life-reloaded/internal/config"
	"life-reloaded/internal/delivery/http/handler"
	"life-reloaded/internal/delivery/http/middleware"
	"life-reloaded/internal/delivery/http/routes"
	v1 "life-reloaded/internal/delivery/http/routes/v1"
	"life-reloaded/internal/pkg/jwt"
	"life-reloaded/internal/usecase/player"
	"life-reloaded/internal/usecase/setup"
	"life-reloaded/internal/ws"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

func New(c *Container) *App {
	cfg := c.Config
	logger := c.Logger

	f := fiber.New(fiber.Config{
		AppName:     cfg.App.AppName,
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	registerGlobalMiddleware(f, logger)

	tokens := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.AccessExpiresIn)
	setupUC := setup.NewService(c.Store, logger.Named("setup"))
	playerUC := player.NewService(tokens)

	hub := ws.NewHub(logger.Named("ws"))
	wsHandler := ws.NewHandler(hub, setupUC, chat.PlaceholderNarrator{}, cfg.Game.ReplyDelay, logger.Named("chat"))

	var pinger handler.Pinger
	if p, ok := c.Store.(handler.Pinger); ok {
		pinger = p
	}

	registry := routes.NewRegistry(
		handler.NewHealthHandler(pinger),
		v1.Handlers{
			Auth:       middleware.NewAuthMiddleware(tokens),
			Player:     handler.NewPlayerHandler(playerUC),
			Area:       handler.NewAreaHandler(),
			Setup:      handler.NewSetupHandler(setupUC),
			Simulation: handler.NewSimulationHandler(setupUC),
		},
		wsHandler,
	)
	registry.Register(f)

	return &App{Fiber: f, Hub: hub}
}

func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	accessLog := middleware.NewAccessLogMiddleware(logger.Named("http"))
	app.Use(accessLog.Middleware())

	errMw := middleware.NewErrorMiddleware(logger.Named("http"))
	app.Use(errMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
