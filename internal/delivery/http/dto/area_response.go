package dto

import (
	"life-reloaded/internal/domain/area"
	"life-reloaded/internal/domain/simulation"
)

type AreaResponse struct {
	ID          area.ID                  `json:"id"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Defaults    area.Draft               `json:"defaults"`
	Options     map[string][]area.Option `json:"options"`
}

type SimulationResponse struct {
	Config  *simulation.Config `json:"config"`
	Summary simulation.Summary `json:"summary"`
}
