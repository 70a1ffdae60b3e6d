package area

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")
)

// Draft is the per-area configuration form. Each area has exactly one
// concrete variant; the set is closed to this package.
type Draft interface {
	Area() ID
	Clone() Draft
	Set(field string, value any) error

	isDraft()
}

type FinanceDraft struct {
	StartingCash    float64 `json:"startingCash"`
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	SavingsGoal     float64 `json:"savingsGoal"`
}

type Person struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Quality      int    `json:"quality"`
}

type RelationshipsDraft struct {
	People []Person `json:"people"`
}

type CareerDraft struct {
	Status       string `json:"status"`
	CompanyName  string `json:"companyName"`
	Position     string `json:"position"`
	Satisfaction int    `json:"satisfaction"`
}

type EducationDraft struct {
	Status          string `json:"status"`
	InstitutionName string `json:"institutionName"`
	FieldOfStudy    string `json:"fieldOfStudy"`
	Satisfaction    int    `json:"satisfaction"`
}

type SocialDraft struct {
	SocialFrequency string `json:"socialFrequency"`
	MainActivities  string `json:"mainActivities"`
}

type LivingDraft struct {
	HousingType  string `json:"housingType"`
	LivingWith   string `json:"livingWith"`
	Satisfaction int    `json:"satisfaction"`
}

type HealthDraft struct {
	ExerciseFrequency string `json:"exerciseFrequency"`
	DietQuality       string `json:"dietQuality"`
	SleepQuality      string `json:"sleepQuality"`
}

type PersonalDraft struct {
	Hobbies     []string `json:"hobbies"`
	WeeklyHours int      `json:"weeklyHours"`
	MainGoals   string   `json:"mainGoals"`
}

const (
	DefaultQuality = 5
	MinQuality     = 0
	MaxQuality     = 10
)

// Default returns a fresh draft for id, or nil for an unknown area.
func Default(id ID) Draft {
	switch id {
	case Finance:
		return &FinanceDraft{StartingCash: 5000, MonthlyIncome: 3000, MonthlyExpenses: 2000, SavingsGoal: 10000}
	case Relationships:
		return &RelationshipsDraft{People: []Person{}}
	case Career:
		return &CareerDraft{Satisfaction: 5}
	case Education:
		return &EducationDraft{Satisfaction: 5}
	case Social:
		return &SocialDraft{}
	case Living:
		return &LivingDraft{Satisfaction: 5}
	case Health:
		return &HealthDraft{}
	case Personal:
		return &PersonalDraft{Hobbies: []string{}, WeeklyHours: 5}
	default:
		return nil
	}
}

func (*FinanceDraft) Area() ID       { return Finance }
func (*RelationshipsDraft) Area() ID { return Relationships }
func (*CareerDraft) Area() ID        { return Career }
func (*EducationDraft) Area() ID     { return Education }
func (*SocialDraft) Area() ID        { return Social }
func (*LivingDraft) Area() ID        { return Living }
func (*HealthDraft) Area() ID        { return Health }
func (*PersonalDraft) Area() ID      { return Personal }

func (*FinanceDraft) isDraft()       {}
func (*RelationshipsDraft) isDraft() {}
func (*CareerDraft) isDraft()        {}
func (*EducationDraft) isDraft()     {}
func (*SocialDraft) isDraft()        {}
func (*LivingDraft) isDraft()        {}
func (*HealthDraft) isDraft()        {}
func (*PersonalDraft) isDraft()      {}

func (d *FinanceDraft) Clone() Draft { cp := *d; return &cp }

func (d *RelationshipsDraft) Clone() Draft {
	people := make([]Person, len(d.People))
	copy(people, d.People)
	return &RelationshipsDraft{People: people}
}

func (d *CareerDraft) Clone() Draft    { cp := *d; return &cp }
func (d *EducationDraft) Clone() Draft { cp := *d; return &cp }
func (d *SocialDraft) Clone() Draft    { cp := *d; return &cp }
func (d *LivingDraft) Clone() Draft    { cp := *d; return &cp }
func (d *HealthDraft) Clone() Draft    { cp := *d; return &cp }

func (d *PersonalDraft) Clone() Draft {
	cp := *d
	cp.Hobbies = make([]string, len(d.Hobbies))
	copy(cp.Hobbies, d.Hobbies)
	return &cp
}

func (d *FinanceDraft) Set(field string, value any) error {
	var target *float64
	switch field {
	case "startingCash":
		target = &d.StartingCash
	case "monthlyIncome":
		target = &d.MonthlyIncome
	case "monthlyExpenses":
		target = &d.MonthlyExpenses
	case "savingsGoal":
		target = &d.SavingsGoal
	default:
		return unknownField(Finance, field)
	}
	v, err := asFloat(value)
	if err != nil {
		return err
	}
	*target = v
	return nil
}

// Set on relationships rejects every field: people are managed through
// the person operations of the draft store.
func (d *RelationshipsDraft) Set(field string, _ any) error {
	return unknownField(Relationships, field)
}

func (d *CareerDraft) Set(field string, value any) error {
	switch field {
	case "status":
		return setString(&d.Status, value)
	case "companyName":
		return setString(&d.CompanyName, value)
	case "position":
		return setString(&d.Position, value)
	case "satisfaction":
		return setInt(&d.Satisfaction, value)
	default:
		return unknownField(Career, field)
	}
}

func (d *EducationDraft) Set(field string, value any) error {
	switch field {
	case "status":
		return setString(&d.Status, value)
	case "institutionName":
		return setString(&d.InstitutionName, value)
	case "fieldOfStudy":
		return setString(&d.FieldOfStudy, value)
	case "satisfaction":
		return setInt(&d.Satisfaction, value)
	default:
		return unknownField(Education, field)
	}
}

func (d *SocialDraft) Set(field string, value any) error {
	switch field {
	case "socialFrequency":
		return setString(&d.SocialFrequency, value)
	case "mainActivities":
		return setString(&d.MainActivities, value)
	default:
		return unknownField(Social, field)
	}
}

func (d *LivingDraft) Set(field string, value any) error {
	switch field {
	case "housingType":
		return setString(&d.HousingType, value)
	case "livingWith":
		return setString(&d.LivingWith, value)
	case "satisfaction":
		return setInt(&d.Satisfaction, value)
	default:
		return unknownField(Living, field)
	}
}

func (d *HealthDraft) Set(field string, value any) error {
	switch field {
	case "exerciseFrequency":
		return setString(&d.ExerciseFrequency, value)
	case "dietQuality":
		return setString(&d.DietQuality, value)
	case "sleepQuality":
		return setString(&d.SleepQuality, value)
	default:
		return unknownField(Health, field)
	}
}

func (d *PersonalDraft) Set(field string, value any) error {
	switch field {
	case "weeklyHours":
		return setInt(&d.WeeklyHours, value)
	case "mainGoals":
		return setString(&d.MainGoals, value)
	case "hobbies":
		raw, ok := value.([]any)
		if !ok {
			if ss, ok := value.([]string); ok {
				raw = make([]any, len(ss))
				for i, s := range ss {
					raw[i] = s
				}
			} else {
				return fmt.Errorf("%w: hobbies must be a list", ErrInvalidValue)
			}
		}
		hobbies := make([]string, 0, len(raw))
		for _, item := range raw {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("%w: hobbies must be strings", ErrInvalidValue)
			}
			hobbies = appendHobby(hobbies, s)
		}
		d.Hobbies = hobbies
		return nil
	default:
		return unknownField(Personal, field)
	}
}

// AddHobby appends a trimmed hobby. Blank and duplicate hobbies are ignored.
func (d *PersonalDraft) AddHobby(hobby string) bool {
	before := len(d.Hobbies)
	d.Hobbies = appendHobby(d.Hobbies, hobby)
	return len(d.Hobbies) != before
}

func (d *PersonalDraft) RemoveHobby(hobby string) bool {
	out := d.Hobbies[:0:0]
	for _, h := range d.Hobbies {
		if h != hobby {
			out = append(out, h)
		}
	}
	removed := len(out) != len(d.Hobbies)
	d.Hobbies = out
	return removed
}

func appendHobby(hobbies []string, hobby string) []string {
	hobby = strings.TrimSpace(hobby)
	if hobby == "" {
		return hobbies
	}
	for _, h := range hobbies {
		if h == hobby {
			return hobbies
		}
	}
	return append(hobbies, hobby)
}

func (p *Person) Set(field string, value any) error {
	switch field {
	case "name":
		return setString(&p.Name, value)
	case "relationship":
		return setString(&p.Relationship, value)
	case "quality":
		q := p.Quality
		if err := setInt(&q, value); err != nil {
			return err
		}
		if q < MinQuality || q > MaxQuality {
			return fmt.Errorf("%w: quality must be within [%d,%d]", ErrInvalidValue, MinQuality, MaxQuality)
		}
		p.Quality = q
		return nil
	default:
		return fmt.Errorf("%w: person.%s", ErrUnknownField, field)
	}
}

func unknownField(id ID, field string) error {
	return fmt.Errorf("%w: %s.%s", ErrUnknownField, id, field)
}

func setString(dst *string, value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: expected string, got %T", ErrInvalidValue, value)
	}
	*dst = s
	return nil
}

func setInt(dst *int, value any) error {
	f, err := asFloat(value)
	if err != nil {
		return err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("%w: expected integer, got %v", ErrInvalidValue, value)
	}
	*dst = int(f)
	return nil
}

// asFloat accepts JSON numbers and the numeric strings that form inputs send.
// NaN and infinities are rejected; they cannot be encoded back to JSON.
func asFloat(value any) (float64, error) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, v)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("%w: expected number, got %T", ErrInvalidValue, value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v is not a finite number", ErrInvalidValue, value)
	}
	return f, nil
}
