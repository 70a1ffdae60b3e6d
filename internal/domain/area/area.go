package area

import "strings"

type ID string

const (
	Finance       ID = "finance"
	Relationships ID = "relationships"
	Career        ID = "career"
	Education     ID = "education"
	Social        ID = "social"
	Living        ID = "living"
	Health        ID = "health"
	Personal      ID = "personal"
)

type Area struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var catalog = []Area{
	{ID: Finance, Title: "Finance", Description: "Money, investments, and financial decisions"},
	{ID: Relationships, Title: "Relationships", Description: "Love, family, and personal connections"},
	{ID: Career, Title: "Career", Description: "Work, professional growth, and ambitions"},
	{ID: Education, Title: "Education", Description: "Learning, skills, and knowledge"},
	{ID: Social, Title: "Social Life", Description: "Friends, community, and social activities"},
	{ID: Living, Title: "Living Situation", Description: "Home, location, and lifestyle choices"},
	{ID: Health, Title: "Health & Fitness", Description: "Physical and mental wellbeing"},
	{ID: Personal, Title: "Personal Growth", Description: "Hobbies, passions, and self-development"},
}

// All returns the catalog in display order. The slice is a copy.
func All() []Area {
	out := make([]Area, len(catalog))
	copy(out, catalog)
	return out
}

func Count() int {
	return len(catalog)
}

func Lookup(id ID) (Area, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Area{}, false
}

func Parse(raw string) (ID, bool) {
	id := ID(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := Lookup(id); !ok {
		return "", false
	}
	return id, true
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var options = map[ID]map[string][]Option{
	Relationships: {
		"relationship": {
			{"parent", "Parent"},
			{"sibling", "Sibling"},
			{"partner", "Partner/Spouse"},
			{"child", "Child"},
			{"friend", "Friend"},
			{"colleague", "Colleague"},
			{"mentor", "Mentor"},
			{"other", "Other"},
		},
	},
	Career: {
		"status": {
			{"employed", "Employed Full-time"},
			{"part-time", "Employed Part-time"},
			{"self-employed", "Self-employed"},
			{"unemployed", "Unemployed"},
			{"student", "Student"},
		},
	},
	Education: {
		"status": {
			{"high-school", "High School Student"},
			{"undergraduate", "Undergraduate Student"},
			{"graduate", "Graduate Student"},
			{"completed", "Completed Education"},
			{"not-studying", "Not Currently Studying"},
		},
	},
	Social: {
		"socialFrequency": {
			{"daily", "Daily - Very social"},
			{"weekly", "Several times a week"},
			{"biweekly", "Once or twice a week"},
			{"monthly", "A few times a month"},
			{"rarely", "Rarely - Prefer solitude"},
		},
	},
	Living: {
		"housingType": {
			{"apartment", "Apartment/Flat"},
			{"house", "House"},
			{"dorm", "Dormitory"},
			{"shared", "Shared Housing"},
			{"parents", "Living with Parents"},
		},
	},
	Health: {
		"exerciseFrequency": {
			{"daily", "Daily"},
			{"4-6-week", "4-6 times per week"},
			{"2-3-week", "2-3 times per week"},
			{"once-week", "Once a week"},
			{"rarely", "Rarely/Never"},
		},
		"dietQuality": {
			{"excellent", "Excellent - Very healthy"},
			{"good", "Good - Mostly healthy"},
			{"average", "Average - Mixed"},
			{"poor", "Poor - Mostly unhealthy"},
			{"very-poor", "Very Poor"},
		},
		"sleepQuality": {
			{"excellent", "Excellent - 8+ hours, restful"},
			{"good", "Good - 7-8 hours, decent"},
			{"average", "Average - 6-7 hours"},
			{"poor", "Poor - Less than 6 hours"},
			{"very-poor", "Very Poor - Insomnia/issues"},
		},
	},
}

// Options lists the suggested values for enumerated fields of an area.
// They are presentation hints; Validate does not restrict values to them.
func Options(id ID) map[string][]Option {
	src := options[id]
	out := make(map[string][]Option, len(src))
	for field, opts := range src {
		cp := make([]Option, len(opts))
		copy(cp, opts)
		out[field] = cp
	}
	return out
}
