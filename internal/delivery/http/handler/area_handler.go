package handler

import (
	"life-reloaded/internal/delivery/http/dto"
	"life-reloaded/internal/domain/area"
	"life-reloaded/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AreaHandler struct{}

func NewAreaHandler() *AreaHandler {
	return &AreaHandler{}
}

func (h *AreaHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
}

func (h *AreaHandler) List(c fiber.Ctx) error {
	areas := area.All()
	res := make([]dto.AreaResponse, 0, len(areas))
	for _, a := range areas {
		res = append(res, dto.AreaResponse{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Defaults:    area.Default(a.ID),
			Options:     area.Options(a.ID),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
