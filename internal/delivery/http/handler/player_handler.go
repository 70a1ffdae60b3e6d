package handler

import (
	"life-reloaded/internal/delivery/http/middleware"
	"life-reloaded/internal/pkg/response"
	"life-reloaded/internal/usecase/player"

	"github.com/gofiber/fiber/v3"
)

type PlayerHandler struct {
	uc player.Usecase
}

func NewPlayerHandler(uc player.Usecase) *PlayerHandler {
	return &PlayerHandler{uc: uc}
}

func (h *PlayerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Register)
}

func (h *PlayerHandler) Register(c fiber.Ctx) error {
	reg, err := h.uc.Register(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusCreated, "player registered", reg)
}
