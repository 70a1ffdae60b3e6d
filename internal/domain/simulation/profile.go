package simulation

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// LatestBirthDate is the last date of birth the simulation accepts.
var LatestBirthDate = time.Date(2008, time.December, 31, 0, 0, 0, 0, time.UTC)

type Profile struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	City        string `json:"city"`
}

func (p Profile) Valid() bool {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.City) == "" {
		return false
	}
	dob, ok := p.BirthDate()
	if !ok {
		return false
	}
	return !dob.After(LatestBirthDate)
}

func (p Profile) BirthDate() (time.Time, bool) {
	raw := strings.TrimSpace(p.DateOfBirth)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
