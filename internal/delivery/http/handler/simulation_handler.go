package handler

import (
	"life-reloaded/internal/delivery/http/dto"
	"life-reloaded/internal/delivery/http/middleware"
	"life-reloaded/internal/pkg/response"
	"life-reloaded/internal/usecase/setup"

	"github.com/gofiber/fiber/v3"
)

type SimulationHandler struct {
	uc setup.Usecase
}

func NewSimulationHandler(uc setup.Usecase) *SimulationHandler {
	return &SimulationHandler{uc: uc}
}

func (h *SimulationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Get)
}

// Get never fails on a missing or unreadable config; the summary falls back
// to defaults instead.
func (h *SimulationHandler) Get(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	cfg, summary, err := h.uc.LoadSimulation(c.Context(), playerID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SimulationResponse{Config: cfg, Summary: summary})
}
