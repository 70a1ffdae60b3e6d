package chat

import (
	"context"
	"fmt"
	"time"
)

type Kind string

const (
	KindSystem Kind = "system"
	KindPlayer Kind = "player"
)

type Message struct {
	ID        string    `json:"id"`
	Type      Kind      `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type Stats struct {
	Cash          int `json:"cash"`
	Investments   int `json:"investments"`
	Studies       int `json:"studies"`
	Health        int `json:"health"`
	Relationships int `json:"relationships"`
	Career        int `json:"career"`
	Social        int `json:"social"`
	Living        int `json:"living"`
	Personal      int `json:"personal"`
	Motivation    int `json:"motivation"`
}

func DefaultStats() Stats {
	return Stats{
		Cash:          5000,
		Investments:   0,
		Studies:       50,
		Health:        70,
		Relationships: 60,
		Career:        40,
		Social:        55,
		Living:        50,
		Personal:      45,
		Motivation:    80,
	}
}

type Month struct {
	Month time.Month
	Year  int
}

var StartMonth = Month{Month: time.January, Year: 2008}

func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Month: time.January, Year: m.Year + 1}
	}
	return Month{Month: m.Month + 1, Year: m.Year}
}

func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Turn is what a narrator sees when the player acts.
type Turn struct {
	Action string
	Stats  Stats
	Month  Month
}

type Narrator interface {
	Respond(ctx context.Context, turn Turn) (string, error)
}

const PlaceholderReply = "Interesting choice. Your decision will have consequences as the month unfolds. The world around you continues to shift..."

// PlaceholderNarrator answers every action with the same line.
type PlaceholderNarrator struct{}

func (PlaceholderNarrator) Respond(context.Context, Turn) (string, error) {
	return PlaceholderReply, nil
}

var welcomeMessages = []string{
	"Welcome back to January 2008. You're standing at the beginning of a journey you've already lived once. But this time, you have the wisdom of hindsight. What will you do differently?",
	"The world is on the brink of a financial crisis. Social media is just beginning to reshape society. Your choices this month will set the tone for everything that follows.",
}

func monthChangeText(m Month) string {
	return fmt.Sprintf("Time moves forward. It's now %s. What happened this month has shaped your path...", m)
}
