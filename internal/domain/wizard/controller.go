package wizard

import (
	"errors"

	"life-reloaded/internal/domain/area"
	"life-reloaded/internal/domain/simulation"
)

type Step string

const (
	StepBasic Step = "basic"
	StepAreas Step = "areas"
)

var ErrWrongStep = errors.New("operation not allowed in current step")

// Controller carries the whole setup flow: the step, the basic profile, the
// committed area configs and the active draft slot. It is not safe for
// concurrent use.
type Controller struct {
	step    Step
	profile simulation.Profile
	configs area.Configs
	drafts  Drafts
}

func New() *Controller {
	return &Controller{step: StepBasic, configs: area.Configs{}}
}

func (c *Controller) Step() Step {
	return c.step
}

func (c *Controller) Profile() simulation.Profile {
	return c.profile
}

func (c *Controller) SetProfile(p simulation.Profile) {
	c.profile = p
}

// Continue moves from basic to areas once the profile is valid. It reports
// whether the wizard is on the areas step afterwards.
func (c *Controller) Continue() bool {
	if c.step == StepAreas {
		return true
	}
	if !c.profile.Valid() {
		return false
	}
	c.step = StepAreas
	return true
}

// Back returns to the basic step. Profile and committed configs are kept;
// an open draft is discarded.
func (c *Controller) Back() {
	c.drafts.Clear()
	c.step = StepBasic
}

func (c *Controller) Configured() int {
	return len(c.configs)
}

func (c *Controller) Progress() float64 {
	return float64(len(c.configs)) / float64(area.Count())
}

func (c *Controller) CanFinish() bool {
	return c.configs.Complete()
}

// Committed returns a deep copy of the committed draft for id.
func (c *Controller) Committed(id area.ID) (area.Draft, bool) {
	d, ok := c.configs[id]
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

func (c *Controller) Drafts() *Drafts {
	return &c.drafts
}

func (c *Controller) Open(id area.ID) (area.Draft, error) {
	if c.step != StepAreas {
		return nil, ErrWrongStep
	}
	return c.drafts.Open(c.configs, id)
}

// Save commits the active draft. On ErrValidationFailed the draft stays open
// for correction.
func (c *Controller) Save() error {
	d, ok := c.drafts.Active()
	if !ok {
		return ErrNoActiveDraft
	}
	if err := Commit(c.configs, d.Area(), d); err != nil {
		return err
	}
	c.drafts.Clear()
	return nil
}

func (c *Controller) Cancel() {
	c.drafts.Clear()
}

// Finish builds the simulation config when every area is committed and the
// profile is valid. Otherwise it does nothing and reports false.
func (c *Controller) Finish() (simulation.Config, bool) {
	if c.step != StepAreas || !c.CanFinish() || !c.profile.Valid() {
		return simulation.Config{}, false
	}
	return simulation.Config{Profile: c.profile, AreaConfigs: c.configs.Clone()}, true
}

type State struct {
	Step       Step               `json:"step"`
	Profile    simulation.Profile `json:"profile"`
	ProfileOK  bool               `json:"profileValid"`
	Configs    area.Configs       `json:"areaConfigs"`
	Configured int                `json:"configured"`
	Total      int                `json:"total"`
	Progress   float64            `json:"progress"`
	CanFinish  bool               `json:"canFinish"`
	ActiveArea *area.ID           `json:"activeArea"`
	Draft      area.Draft         `json:"draft"`
}

// State snapshots the controller. The snapshot shares no mutable data.
func (c *Controller) State() State {
	s := State{
		Step:       c.step,
		Profile:    c.profile,
		ProfileOK:  c.profile.Valid(),
		Configs:    c.configs.Clone(),
		Configured: c.Configured(),
		Total:      area.Count(),
		Progress:   c.Progress(),
		CanFinish:  c.CanFinish(),
	}
	if d, ok := c.drafts.Active(); ok {
		id := d.Area()
		s.ActiveArea = &id
		s.Draft = d.Clone()
	}
	return s
}
