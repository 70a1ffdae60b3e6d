package player

import (
	"context"
	"errors"
	"time"

	"life-reloaded/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrInternal = errors.New("internal error")

type Registration struct {
	PlayerID    uuid.UUID `json:"player_id"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type Usecase interface {
	Register(ctx context.Context) (Registration, error)
}

// Service hands out anonymous player identities. A player id plays the part
// a browser profile plays for local storage.
type Service struct {
	tokens jwt.Service
}

func NewService(tokens jwt.Service) *Service {
	return &Service{tokens: tokens}
}

func (s *Service) Register(_ context.Context) (Registration, error) {
	id := uuid.New()
	tok, exp, err := s.tokens.GeneratePlayerToken(id)
	if err != nil {
		return Registration{}, ErrInternal
	}
	return Registration{PlayerID: id, AccessToken: tok, ExpiresAt: exp}, nil
}
