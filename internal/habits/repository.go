// Package habits holds the habit and completion sets and the pure functions that
// derive streaks and day stats from them. Nothing here touches storage; callers
// persist the snapshots returned by List and All after each mutation.
package habits

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitkit/internal/models"
)

// Repository owns the ordered set of habit definitions
type Repository struct {
	habits []models.Habit
}

// NewRepository starts a repository from previously stored habits.
func NewRepository(habits []models.Habit) *Repository {
	return &Repository{habits: append([]models.Habit(nil), habits...)}
}

// Add appends a new habit with a fresh id. The name is not validated here.
func (r *Repository) Add(name string, pref models.TimePreference, userID string, now time.Time) models.Habit {
	habit := models.Habit{
		ID:             uuid.New().String(),
		Name:           name,
		TimePreference: pref,
		CreatedAt:      now,
		UserID:         userID,
	}
	r.habits = append(r.habits, habit)
	return habit
}

// Update merges the non-nil fields of upd into the habit with the given id.
// It reports whether a habit was found.
func (r *Repository) Update(id string, upd models.HabitUpdate) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	if upd.Name != nil {
		r.habits[i].Name = *upd.Name
	}
	if upd.TimePreference != nil {
		r.habits[i].TimePreference = *upd.TimePreference
	}
	return true
}

// Remove deletes the habit with the given id and reports whether it existed.
// Completions are purged separately through Ledger.Purge.
func (r *Repository) Remove(id string) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	r.habits = append(r.habits[:i:i], r.habits[i+1:]...)
	return true
}

func (r *Repository) Get(id string) (models.Habit, bool) {
	i := r.index(id)
	if i < 0 {
		return models.Habit{}, false
	}
	return r.habits[i], true
}

// List returns a copy of the habits in insertion order.
func (r *Repository) List() []models.Habit {
	return append([]models.Habit{}, r.habits...)
}

func (r *Repository) Len() int {
	return len(r.habits)
}

func (r *Repository) index(id string) int {
	for i, h := range r.habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}
