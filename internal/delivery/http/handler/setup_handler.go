package handler

import (
	"errors"
	"net/url"

	"life-reloaded/internal/delivery/http/middleware"
	"life-reloaded/internal/domain/area"
	"life-reloaded/internal/domain/simulation"
	"life-reloaded/internal/domain/wizard"
	"life-reloaded/internal/pkg/response"
	"life-reloaded/internal/usecase/setup"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SetupHandler struct {
	uc setup.Usecase
}

type profileRequest struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	City        string `json:"city"`
}

type editRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

type hobbyRequest struct {
	Hobby string `json:"hobby"`
}

func NewSetupHandler(uc setup.Usecase) *SetupHandler {
	return &SetupHandler{uc: uc}
}

func (h *SetupHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Start)
	r.Get("/", h.State)
	r.Put("/profile", h.UpdateProfile)
	r.Post("/continue", h.Continue)
	r.Post("/back", h.Back)
	r.Post("/areas/:area/open", h.OpenArea)
	r.Patch("/draft", h.EditDraft)
	r.Post("/draft/people", h.AddPerson)
	r.Patch("/draft/people/:id", h.UpdatePerson)
	r.Delete("/draft/people/:id", h.RemovePerson)
	r.Post("/draft/hobbies", h.AddHobby)
	r.Delete("/draft/hobbies/:hobby", h.RemoveHobby)
	r.Post("/draft/save", h.SaveDraft)
	r.Post("/draft/cancel", h.CancelDraft)
	r.Post("/finish", h.Finish)
}

func (h *SetupHandler) Start(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	st, err := h.uc.Start(c.Context(), playerID)
	if err != nil {
		return mapSetupError(err, st)
	}
	return response.Success(c, fiber.StatusCreated, "setup started", st)
}

func (h *SetupHandler) State(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	st, err := h.uc.State(c.Context(), playerID)
	return respondState(c, st, err)
}

func (h *SetupHandler) UpdateProfile(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	var req profileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	st, err := h.uc.UpdateProfile(c.Context(), playerID, simulation.Profile{
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
		City:        req.City,
	})
	return respondState(c, st, err)
}

func (h *SetupHandler) Continue(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	st, err := h.uc.Continue(c.Context(), playerID)
	return respondState(c, st, err)
}

func (h *SetupHandler) Back(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	st, err := h.uc.Back(c.Context(), playerID)
	return respondState(c, st, err)
}

func (h *SetupHandler) OpenArea(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	st, err := h.uc.OpenArea(c.Context(), playerID, c.Params("area"))
	return respondState(c, st, err)
}

func (h *SetupHandler) EditDraft(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	var req editRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	st, err := h.uc.EditDraft(c.Context(), playerID, req.Field, req.Value)
	return respondState(c, st, err)
}

func (h *SetupHandler) AddPerson(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	p, st, err := h.uc.AddPerson(c.Context(), playerID)
	if err != nil {
		return mapSetupError(err, st)
	}
	data := map[string]any{
		"person": p,
		"state":  st,
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, data)
}

func (h *SetupHandler) UpdatePerson(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	var req editRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	st, err := h.uc.UpdatePerson(c.Context(), playerID, c.Params("id"), req.Field, req.Value)
	return respondState(c, st, err)
}

func (h *SetupHandler) RemovePerson(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	st, err := h.uc.RemovePerson(c.Context(), playerID, c.Params("id"))
	return respondState(c, st, err)
}

func (h *SetupHandler) AddHobby(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	var req hobbyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	st, err := h.uc.AddHobby(c.Context(), playerID, req.Hobby)
	return respondState(c, st, err)
}

func (h *SetupHandler) RemoveHobby(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	hobby, err := url.PathUnescape(c.Params("hobby"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid hobby", nil, err)
	}
	st, err := h.uc.RemoveHobby(c.Context(), playerID, hobby)
	return respondState(c, st, err)
}

func (h *SetupHandler) SaveDraft(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	st, err := h.uc.SaveDraft(c.Context(), playerID)
	return respondState(c, st, err)
}

func (h *SetupHandler) CancelDraft(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	st, err := h.uc.CancelDraft(c.Context(), playerID)
	return respondState(c, st, err)
}

func (h *SetupHandler) Finish(c fiber.Ctx) error {
	playerID, err := requirePlayer(c)
	if err != nil {
		return err
	}
	res, err := h.uc.Finish(c.Context(), playerID)
	if err != nil {
		return mapSetupError(err, res.State)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func requirePlayer(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.PlayerID(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

func respondState(c fiber.Ctx, st wizard.State, err error) error {
	if err != nil {
		return mapSetupError(err, st)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}

func mapSetupError(err error, st wizard.State) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, setup.ErrSessionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Setup not started", nil, err)
	case errors.Is(err, wizard.ErrValidationFailed):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", st, err)
	case errors.Is(err, wizard.ErrUnknownArea), errors.Is(err, wizard.ErrPersonNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), st, err)
	case errors.Is(err, wizard.ErrWrongStep),
		errors.Is(err, wizard.ErrNoActiveDraft),
		errors.Is(err, wizard.ErrNotRelationships),
		errors.Is(err, wizard.ErrNotPersonal):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), st, err)
	case errors.Is(err, area.ErrUnknownField),
		errors.Is(err, area.ErrInvalidValue),
		errors.Is(err, setup.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), st, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
