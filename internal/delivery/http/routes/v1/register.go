package v1

import (
	"life-reloaded/internal/delivery/http/handler"
	"life-reloaded/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth       *middleware.AuthMiddleware
	Player     *handler.PlayerHandler
	Area       *handler.AreaHandler
	Setup      *handler.SetupHandler
	Simulation *handler.SimulationHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Player != nil {
		h.Player.RegisterRoutes(r.Group("/players"))
	}
	if h.Area != nil {
		h.Area.RegisterRoutes(r.Group("/areas"))
	}

	if h.Auth == nil {
		return
	}
	authMw := h.Auth.Middleware()

	if h.Setup != nil {
		h.Setup.RegisterRoutes(r.Group("/setup", authMw))
	}
	if h.Simulation != nil {
		h.Simulation.RegisterRoutes(r.Group("/simulation", authMw))
	}
}
