package setup

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"life-reloaded/internal/domain/area"
	"life-reloaded/internal/domain/simulation"
	"life-reloaded/internal/domain/wizard"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("setup session not found")
	ErrInvalidInput    = errors.New("invalid input")
)

// GameScreenPath is where a finished setup sends the player.
const GameScreenPath = "/game-screen"

type FinishResult struct {
	Finished bool         `json:"finished"`
	Next     string       `json:"next,omitempty"`
	State    wizard.State `json:"state"`
}

type Usecase interface {
	Start(ctx context.Context, playerID uuid.UUID) (wizard.State, error)
	State(ctx context.Context, playerID uuid.UUID) (wizard.State, error)
	UpdateProfile(ctx context.Context, playerID uuid.UUID, p simulation.Profile) (wizard.State, error)
	Continue(ctx context.Context, playerID uuid.UUID) (wizard.State, error)
	Back(ctx context.Context, playerID uuid.UUID) (wizard.State, error)
	OpenArea(ctx context.Context, playerID uuid.UUID, rawArea string) (wizard.State, error)
	EditDraft(ctx context.Context, playerID uuid.UUID, field string, value any) (wizard.State, error)
	AddPerson(ctx context.Context, playerID uuid.UUID) (area.Person, wizard.State, error)
	UpdatePerson(ctx context.Context, playerID uuid.UUID, personID, field string, value any) (wizard.State, error)
	RemovePerson(ctx context.Context, playerID uuid.UUID, personID string) (wizard.State, error)
	AddHobby(ctx context.Context, playerID uuid.UUID, hobby string) (wizard.State, error)
	RemoveHobby(ctx context.Context, playerID uuid.UUID, hobby string) (wizard.State, error)
	SaveDraft(ctx context.Context, playerID uuid.UUID) (wizard.State, error)
	CancelDraft(ctx context.Context, playerID uuid.UUID) (wizard.State, error)
	Finish(ctx context.Context, playerID uuid.UUID) (FinishResult, error)
	LoadSimulation(ctx context.Context, playerID uuid.UUID) (*simulation.Config, simulation.Summary, error)
}

type session struct {
	mu  sync.Mutex
	wiz *wizard.Controller
}

// Service keeps one wizard per player in memory. Each wizard is only ever
// touched under its own lock, so requests from one player are serialized.
type Service struct {
	store  simulation.Store
	logger *zap.Logger
	now    func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

func NewService(store simulation.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*session),
	}
}

func (s *Service) bridge(playerID uuid.UUID) *simulation.Bridge {
	return simulation.NewBridge(simulation.Scoped(s.store, playerID.String()), s.logger)
}

func (s *Service) Start(_ context.Context, playerID uuid.UUID) (wizard.State, error) {
	sess := &session{wiz: wizard.New()}

	s.mu.Lock()
	s.sessions[playerID] = sess
	s.mu.Unlock()

	s.logger.Info("setup started", zap.String("player_id", playerID.String()))
	return sess.wiz.State(), nil
}

func (s *Service) State(_ context.Context, playerID uuid.UUID) (wizard.State, error) {
	return s.with(playerID, func(*wizard.Controller) error { return nil })
}

func (s *Service) UpdateProfile(_ context.Context, playerID uuid.UUID, p simulation.Profile) (wizard.State, error) {
	return s.with(playerID, func(w *wizard.Controller) error {
		w.SetProfile(p)
		return nil
	})
}

// Continue is a no-op while the profile is invalid; the returned state
// still shows the basic step.
func (s *Service) Continue(_ context.Context, playerID uuid.UUID) (wizard.State, error) {
	return s.with(playerID, func(w *wizard.Controller) error {
		w.Continue()
		return nil
	})
}

func (s *Service) Back(_ context.Context, playerID uuid.UUID) (wizard.State, error) {
	return s.with(playerID, func(w *wizard.Controller) error {
		w.Back()
		return nil
	})
}

func (s *Service) OpenArea(_ context.Context, playerID uuid.UUID, rawArea string) (wizard.State, error) {
	id, ok := area.Parse(rawArea)
	if !ok {
		return wizard.State{}, fmt.Errorf("%w: %q", wizard.ErrUnknownArea, rawArea)
	}
	return s.with(playerID, func(w *wizard.Controller) error {
		_, err := w.Open(id)
		return err
	})
}

func (s *Service) EditDraft(_ context.Context, playerID uuid.UUID, field string, value any) (wizard.State, error) {
	if field == "" {
		return wizard.State{}, ErrInvalidInput
	}
	return s.with(playerID, func(w *wizard.Controller) error {
		return w.Drafts().Edit(field, value)
	})
}

func (s *Service) AddPerson(_ context.Context, playerID uuid.UUID) (area.Person, wizard.State, error) {
	var p area.Person
	st, err := s.with(playerID, func(w *wizard.Controller) error {
		var err error
		p, err = w.Drafts().AddPerson()
		return err
	})
	return p, st, err
}

func (s *Service) UpdatePerson(_ context.Context, playerID uuid.UUID, personID, field string, value any) (wizard.State, error) {
	if personID == "" || field == "" {
		return wizard.State{}, ErrInvalidInput
	}
	return s.with(playerID, func(w *wizard.Controller) error {
		_, err := w.Drafts().UpdatePerson(personID, field, value)
		return err
	})
}

func (s *Service) RemovePerson(_ context.Context, playerID uuid.UUID, personID string) (wizard.State, error) {
	return s.with(playerID, func(w *wizard.Controller) error {
		return w.Drafts().RemovePerson(personID)
	})
}

func (s *Service) AddHobby(_ context.Context, playerID uuid.UUID, hobby string) (wizard.State, error) {
	return s.with(playerID, func(w *wizard.Controller) error {
		_, err := w.Drafts().AddHobby(hobby)
		return err
	})
}

func (s *Service) RemoveHobby(_ context.Context, playerID uuid.UUID, hobby string) (wizard.State, error) {
	return s.with(playerID, func(w *wizard.Controller) error {
		_, err := w.Drafts().RemoveHobby(hobby)
		return err
	})
}

// SaveDraft returns wizard.ErrValidationFailed together with the state that
// still holds the open, invalid draft.
func (s *Service) SaveDraft(_ context.Context, playerID uuid.UUID) (wizard.State, error) {
	return s.with(playerID, func(w *wizard.Controller) error {
		return w.Save()
	})
}

func (s *Service) CancelDraft(_ context.Context, playerID uuid.UUID) (wizard.State, error) {
	return s.with(playerID, func(w *wizard.Controller) error {
		w.Cancel()
		return nil
	})
}

// Finish persists the simulation config and ends the wizard. When the wizard
// cannot finish yet nothing is written and Finished is false.
func (s *Service) Finish(ctx context.Context, playerID uuid.UUID) (FinishResult, error) {
	sess, err := s.session(playerID)
	if err != nil {
		return FinishResult{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	cfg, ok := sess.wiz.Finish()
	if !ok {
		return FinishResult{Finished: false, State: sess.wiz.State()}, nil
	}

	if err := s.bridge(playerID).Save(ctx, cfg); err != nil {
		s.logger.Error("saving simulation config failed", zap.String("player_id", playerID.String()), zap.Error(err))
		return FinishResult{}, err
	}

	s.mu.Lock()
	if s.sessions[playerID] == sess {
		delete(s.sessions, playerID)
	}
	s.mu.Unlock()

	s.logger.Info("setup finished", zap.String("player_id", playerID.String()))
	return FinishResult{Finished: true, Next: GameScreenPath, State: sess.wiz.State()}, nil
}

func (s *Service) LoadSimulation(ctx context.Context, playerID uuid.UUID) (*simulation.Config, simulation.Summary, error) {
	cfg, err := s.bridge(playerID).Load(ctx)
	if err != nil {
		return nil, simulation.Summary{}, err
	}
	return cfg, simulation.Summarize(cfg, s.now()), nil
}

func (s *Service) session(playerID uuid.UUID) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[playerID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Service) with(playerID uuid.UUID, fn func(w *wizard.Controller) error) (wizard.State, error) {
	sess, err := s.session(playerID)
	if err != nil {
		return wizard.State{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	err = fn(sess.wiz)
	return sess.wiz.State(), err
}
