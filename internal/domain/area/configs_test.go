package area

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigs_Complete(t *testing.T) {
	c := Configs{}
	for i, a := range All() {
		assert.False(t, c.Complete(), "after %d areas", i)
		c[a.ID] = Default(a.ID)
	}
	assert.True(t, c.Complete())
}

func TestConfigs_CloneIsDeep(t *testing.T) {
	c := Configs{Personal: &PersonalDraft{Hobbies: []string{"chess"}, WeeklyHours: 2}}
	cp := c.Clone()
	cp[Personal].(*PersonalDraft).Hobbies[0] = "go"
	delete(cp, Personal)

	require.True(t, c.Has(Personal))
	assert.Equal(t, []string{"chess"}, c[Personal].(*PersonalDraft).Hobbies)
}

func TestConfigs_JSONRoundTrip(t *testing.T) {
	in := Configs{
		Finance:       &FinanceDraft{StartingCash: 5000, MonthlyIncome: 3000, MonthlyExpenses: 2000, SavingsGoal: 10000},
		Relationships: &RelationshipsDraft{People: []Person{{ID: "1", Name: "Mom", Relationship: "parent", Quality: 8}}},
		Personal:      &PersonalDraft{Hobbies: []string{"chess"}, WeeklyHours: 5, MainGoals: "learn Go"},
	}

	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out Configs
	require.NoError(t, json.Unmarshal(b, &out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("configs mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigs_UnmarshalDropsUnknownAndFillsDefaults(t *testing.T) {
	var out Configs
	err := json.Unmarshal([]byte(`{"astrology":{"sign":"leo"},"career":{"status":"employed"},"relationships":{"people":null}}`), &out)
	require.NoError(t, err)

	assert.False(t, out.Has("astrology"))
	assert.Equal(t, &CareerDraft{Status: "employed", Satisfaction: 5}, out[Career])
	assert.NotNil(t, out[Relationships].(*RelationshipsDraft).People)
}

func TestConfigs_UnmarshalMalformedEntry(t *testing.T) {
	var out Configs
	err := json.Unmarshal([]byte(`{"finance":{"startingCash":"lots"}}`), &out)
	assert.Error(t, err)
}

func TestConfigs_MarshalEmpty(t *testing.T) {
	b, err := json.Marshal(Configs{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))

	b, err = json.Marshal(Configs{Living: Default(Living)})
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Len(t, raw, 1)
	assert.Contains(t, raw, string(Living))
}
