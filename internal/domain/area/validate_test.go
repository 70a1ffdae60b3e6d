package area

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		id   ID
		d    Draft
		want bool
	}{
		{"finance default", Finance, Default(Finance), true},
		{"finance zero", Finance, &FinanceDraft{}, true},
		{"finance negative cash", Finance, &FinanceDraft{StartingCash: -1, MonthlyIncome: 1}, false},
		{"finance negative income", Finance, &FinanceDraft{StartingCash: 1, MonthlyIncome: -0.5}, false},
		{"finance NaN", Finance, &FinanceDraft{StartingCash: math.NaN()}, false},
		{"finance negative expenses allowed", Finance, &FinanceDraft{MonthlyExpenses: -5}, true},

		{"relationships empty", Relationships, Default(Relationships), true},
		{"relationships nameless person", Relationships, &RelationshipsDraft{People: []Person{{ID: "1"}}}, true},

		{"career missing status", Career, Default(Career), false},
		{"career blank status", Career, &CareerDraft{Status: "  ", Satisfaction: 5}, false},
		{"career ok", Career, &CareerDraft{Status: "employed", Satisfaction: 5}, true},
		{"career satisfaction high", Career, &CareerDraft{Status: "employed", Satisfaction: 11}, false},
		{"career satisfaction low", Career, &CareerDraft{Status: "employed", Satisfaction: -1}, false},
		{"career satisfaction bounds", Career, &CareerDraft{Status: "employed", Satisfaction: 10}, true},

		{"education ok", Education, &EducationDraft{Status: "graduate", Satisfaction: 0}, true},
		{"education missing status", Education, Default(Education), false},

		{"social missing", Social, Default(Social), false},
		{"social ok", Social, &SocialDraft{SocialFrequency: "weekly"}, true},

		{"living missing", Living, Default(Living), false},
		{"living ok", Living, &LivingDraft{HousingType: "house", Satisfaction: 5}, true},

		{"health partial", Health, &HealthDraft{ExerciseFrequency: "daily", DietQuality: "good"}, false},
		{"health ok", Health, &HealthDraft{ExerciseFrequency: "daily", DietQuality: "good", SleepQuality: "good"}, true},

		{"personal no hobbies", Personal, Default(Personal), false},
		{"personal ok", Personal, &PersonalDraft{Hobbies: []string{"chess"}, WeeklyHours: 5}, true},
		{"personal hours max", Personal, &PersonalDraft{Hobbies: []string{"chess"}, WeeklyHours: 40}, true},
		{"personal hours over", Personal, &PersonalDraft{Hobbies: []string{"chess"}, WeeklyHours: 41}, false},

		{"variant mismatch", Career, &SocialDraft{SocialFrequency: "weekly"}, false},
		{"nil draft", Finance, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Validate(tc.id, tc.d))
		})
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	d := &PersonalDraft{Hobbies: []string{" chess "}, WeeklyHours: 5}
	before := d.Clone()

	Validate(Personal, d)
	Validate(Personal, d)

	assert.Equal(t, before, Draft(d))
}
