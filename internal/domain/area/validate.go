package area

import (
	"math"
	"strings"
)

const (
	MinSatisfaction = 0
	MaxSatisfaction = 10
	MaxWeeklyHours  = 40
)

// Validate reports whether d is a committable draft for id. It has no side
// effects and never inspects anything but its arguments.
func Validate(id ID, d Draft) bool {
	if d == nil || d.Area() != id {
		return false
	}

	switch v := d.(type) {
	case *FinanceDraft:
		return nonNegative(v.StartingCash) && nonNegative(v.MonthlyIncome)
	case *RelationshipsDraft:
		return true
	case *CareerDraft:
		return filled(v.Status) && satisfaction(v.Satisfaction)
	case *EducationDraft:
		return filled(v.Status) && satisfaction(v.Satisfaction)
	case *SocialDraft:
		return filled(v.SocialFrequency)
	case *LivingDraft:
		return filled(v.HousingType) && satisfaction(v.Satisfaction)
	case *HealthDraft:
		return filled(v.ExerciseFrequency) && filled(v.DietQuality) && filled(v.SleepQuality)
	case *PersonalDraft:
		return len(v.Hobbies) > 0 && v.WeeklyHours >= 0 && v.WeeklyHours <= MaxWeeklyHours
	default:
		return false
	}
}

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}

func nonNegative(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}

func satisfaction(v int) bool {
	return v >= MinSatisfaction && v <= MaxSatisfaction
}
