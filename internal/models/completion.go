package models

import "time"

// HabitCompletion is the completion state of one habit on one day
type HabitCompletion struct {
	ID          string     `json:"id"`
	HabitID     string     `json:"habitId"`
	Date        string     `json:"date"` // YYYY-MM-DD format
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	UserID      string     `json:"userId,omitempty"`
}
