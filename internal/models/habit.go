package models

import (
	"fmt"
	"strings"
	"time"
)

// TimePreference is the part of the day a habit is meant to be done in
type TimePreference string

const (
	TimeMorning TimePreference = "morning"
	TimeEvening TimePreference = "evening"
	TimeAnytime TimePreference = "anytime"
)

// TimePreferences lists the preferences in display order
var TimePreferences = []TimePreference{TimeMorning, TimeAnytime, TimeEvening}

// Valid reports whether p is one of the known preferences
func (p TimePreference) Valid() bool {
	switch p {
	case TimeMorning, TimeEvening, TimeAnytime:
		return true
	}
	return false
}

// Label returns the capitalized name shown in headings
func (p TimePreference) Label() string {
	switch p {
	case TimeMorning:
		return "Morning"
	case TimeEvening:
		return "Evening"
	case TimeAnytime:
		return "Anytime"
	}
	return string(p)
}

// ParseTimePreference parses a preference name case-insensitively.
// An empty string yields TimeAnytime.
func ParseTimePreference(s string) (TimePreference, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TimeAnytime, nil
	}
	p := TimePreference(s)
	if !p.Valid() {
		return "", fmt.Errorf("invalid time preference %q (expected morning, evening or anytime)", s)
	}
	return p, nil
}

// Habit represents a recurring practice to track
type Habit struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	TimePreference TimePreference `json:"timePreference"`
	CreatedAt      time.Time      `json:"createdAt"`
	UserID         string         `json:"userId,omitempty"`
}

// HabitUpdate carries the fields to merge into an existing habit. Nil fields are left alone.
type HabitUpdate struct {
	Name           *string
	TimePreference *TimePreference
}

// HabitStatus is a habit augmented with values derived from the completion ledger.
// It is never persisted.
type HabitStatus struct {
	Habit
	IsCompleted bool `json:"isCompleted"`
	Streak      int  `json:"streak"`
}
