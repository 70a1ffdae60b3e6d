package setup

import (
	"context"
	"testing"

	"life-reloaded/internal/domain/area"
	"life-reloaded/internal/domain/simulation"
	"life-reloaded/internal/domain/wizard"
	"life-reloaded/internal/infrastructure/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profile = simulation.Profile{Name: "Alex", DateOfBirth: "1990-05-17", City: "Lisbon"}

func started(t *testing.T) (*Service, uuid.UUID) {
	t.Helper()
	svc := NewService(memory.NewStore(), nil)
	id := uuid.New()
	_, err := svc.Start(context.Background(), id)
	require.NoError(t, err)
	_, err = svc.UpdateProfile(context.Background(), id, profile)
	require.NoError(t, err)
	st, err := svc.Continue(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, wizard.StepAreas, st.Step)
	return svc, id
}

func edits(id area.ID) map[string]any {
	switch id {
	case area.Career:
		return map[string]any{"status": "employed"}
	case area.Education:
		return map[string]any{"status": "completed"}
	case area.Social:
		return map[string]any{"socialFrequency": "weekly"}
	case area.Living:
		return map[string]any{"housingType": "house"}
	case area.Health:
		return map[string]any{"exerciseFrequency": "daily", "dietQuality": "good", "sleepQuality": "good"}
	default:
		return nil
	}
}

func configureAll(t *testing.T, svc *Service, id uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	for _, a := range area.All() {
		_, err := svc.OpenArea(ctx, id, string(a.ID))
		require.NoError(t, err)
		for field, value := range edits(a.ID) {
			_, err := svc.EditDraft(ctx, id, field, value)
			require.NoError(t, err)
		}
		if a.ID == area.Personal {
			_, err := svc.AddHobby(ctx, id, "chess")
			require.NoError(t, err)
		}
		_, err = svc.SaveDraft(ctx, id)
		require.NoError(t, err, a.ID)
	}
}

func TestService_UnknownSession(t *testing.T) {
	svc := NewService(memory.NewStore(), nil)
	_, err := svc.State(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Finish(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_ContinueInvalidProfileIsNoop(t *testing.T) {
	svc := NewService(memory.NewStore(), nil)
	id := uuid.New()
	_, err := svc.Start(context.Background(), id)
	require.NoError(t, err)

	st, err := svc.Continue(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepBasic, st.Step)
	assert.False(t, st.ProfileOK)
}

func TestService_OpenUnknownArea(t *testing.T) {
	svc, id := started(t)
	_, err := svc.OpenArea(context.Background(), id, "astrology")
	assert.ErrorIs(t, err, wizard.ErrUnknownArea)
}

func TestService_SaveInvalidReturnsState(t *testing.T) {
	svc, id := started(t)
	ctx := context.Background()

	_, err := svc.OpenArea(ctx, id, "career")
	require.NoError(t, err)
	st, err := svc.SaveDraft(ctx, id)
	assert.ErrorIs(t, err, wizard.ErrValidationFailed)
	require.NotNil(t, st.ActiveArea)
	assert.Equal(t, area.Career, *st.ActiveArea)
	assert.Equal(t, 0, st.Configured)
}

func TestService_People(t *testing.T) {
	svc, id := started(t)
	ctx := context.Background()

	_, err := svc.OpenArea(ctx, id, "relationships")
	require.NoError(t, err)
	p, st, err := svc.AddPerson(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)
	assert.Len(t, st.Draft.(*area.RelationshipsDraft).People, 1)

	_, err = svc.UpdatePerson(ctx, id, "1", "name", "Mom")
	require.NoError(t, err)
	_, err = svc.UpdatePerson(ctx, id, "", "name", "Mom")
	assert.ErrorIs(t, err, ErrInvalidInput)

	st, err = svc.RemovePerson(ctx, id, "1")
	require.NoError(t, err)
	assert.Empty(t, st.Draft.(*area.RelationshipsDraft).People)
}

func TestService_FinishNotReady(t *testing.T) {
	svc, id := started(t)
	res, err := svc.Finish(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, res.Finished)
	assert.Empty(t, res.Next)

	_, err = svc.State(context.Background(), id)
	assert.NoError(t, err)
}

func TestService_FinishPersistsAndLoads(t *testing.T) {
	svc, id := started(t)
	ctx := context.Background()
	configureAll(t, svc, id)

	res, err := svc.Finish(ctx, id)
	require.NoError(t, err)
	assert.True(t, res.Finished)
	assert.Equal(t, GameScreenPath, res.Next)

	_, err = svc.State(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	cfg, summary, err := svc.LoadSimulation(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, cfg.Complete())
	assert.Equal(t, "Alex", summary.Name)
	assert.Equal(t, "Lisbon", summary.City)

	other, summary, err := svc.LoadSimulation(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, other)
	assert.Equal(t, simulation.DefaultName, summary.Name)
}
