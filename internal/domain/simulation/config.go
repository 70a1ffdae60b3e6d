package simulation

import (
	"strings"
	"time"

	"life-reloaded/internal/domain/area"
)

// Config is the setup result handed to the game screen.
type Config struct {
	Profile
	AreaConfigs area.Configs `json:"areaConfigs"`
}

func (c Config) Complete() bool {
	return c.Profile.Valid() && c.AreaConfigs.Complete()
}

const (
	DefaultName = "John Doe"
	DefaultAge  = 25
	DefaultCity = "New York"
)

// Summary is the player card shown beside the chat.
type Summary struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	City string `json:"city"`
}

// Summarize tolerates a nil or partial config by falling back to defaults
// field by field.
func Summarize(cfg *Config, now time.Time) Summary {
	s := Summary{Name: DefaultName, Age: DefaultAge, City: DefaultCity}
	if cfg == nil {
		return s
	}
	if name := strings.TrimSpace(cfg.Name); name != "" {
		s.Name = name
	}
	if city := strings.TrimSpace(cfg.City); city != "" {
		s.City = city
	}
	if dob, ok := cfg.BirthDate(); ok {
		s.Age = now.Year() - dob.Year()
	}
	return s
}
