// Package tracker assembles the habit repository, the completion ledger and the
// derivation functions into the operations the CLI and TUI call.
//
// A Tracker reads the store once when it is created and writes the full changed set
// back after every mutation. The in-memory state is the source of truth for the
// session: a failed write is logged and leaves the tracker unsynced, never rolled
// back. Tracker is not safe for concurrent use.
package tracker

import (
	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/habits"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/internal/utils"
)

type Tracker struct {
	adapter *storage.Adapter
	habits  *habits.Repository
	ledger  *habits.Ledger
	clock   utils.Clock
	userID  string
	synced  bool
}

// New loads habits and completions from store. Unreadable records load as empty.
func New(store storage.Provider, clock utils.Clock) *Tracker {
	adapter := storage.NewAdapter(store)
	storedHabits, _ := storage.Load[[]models.Habit](adapter, constants.KeyHabits)
	storedCompletions, _ := storage.Load[[]models.HabitCompletion](adapter, constants.KeyCompletions)

	logger.Debug("Tracker loaded", "habits", len(storedHabits), "completions", len(storedCompletions))

	return &Tracker{
		adapter: adapter,
		habits:  habits.NewRepository(storedHabits),
		ledger:  habits.NewLedger(storedCompletions),
		clock:   clock,
		synced:  true,
	}
}

// SetUser stamps userID on habits and completions created from now on.
func (t *Tracker) SetUser(userID string) {
	t.userID = userID
}

// Today returns the current calendar date according to the tracker's clock.
func (t *Tracker) Today() string {
	return utils.DateString(t.clock())
}

// Synced reports whether every mutation so far reached the store.
func (t *Tracker) Synced() bool {
	return t.synced
}

func (t *Tracker) saveHabits() {
	if !t.adapter.Set(constants.KeyHabits, t.habits.List()) {
		t.synced = false
	}
}

func (t *Tracker) saveCompletions() {
	if !t.adapter.Set(constants.KeyCompletions, t.ledger.All()) {
		t.synced = false
	}
}

// Habits returns the stored habits without derived fields, in insertion order.
func (t *Tracker) Habits() []models.Habit {
	return t.habits.List()
}

// Habit looks up a habit by id.
func (t *Tracker) Habit(id string) (models.Habit, bool) {
	return t.habits.Get(id)
}

// Completions returns every completion record.
func (t *Tracker) Completions() []models.HabitCompletion {
	return t.ledger.All()
}

// ListHabitsWithStatus returns every habit with today's completion and its current streak.
func (t *Tracker) ListHabitsWithStatus() []models.HabitStatus {
	today := t.Today()
	list := t.habits.List()
	out := make([]models.HabitStatus, len(list))
	for i, h := range list {
		out[i] = t.status(h, today)
	}
	return out
}

func (t *Tracker) status(h models.Habit, today string) models.HabitStatus {
	return models.HabitStatus{
		Habit:       h,
		IsCompleted: t.completedOn(h.ID, today),
		Streak:      habits.CalculateStreak(t.ledger.CompletedDates(h.ID), today),
	}
}

func (t *Tracker) completedOn(habitID, date string) bool {
	c, ok := t.ledger.Get(habitID, date)
	return ok && c.Completed
}

// AddHabit creates a habit. Callers validate the name first.
func (t *Tracker) AddHabit(name string, pref models.TimePreference) models.Habit {
	habit := t.habits.Add(name, pref, t.userID, t.clock())
	logger.Debug("Habit added", "id", habit.ID, "name", habit.Name)
	t.saveHabits()
	return habit
}

// UpdateHabit merges upd into the habit. A missing id is a no-op that returns false.
func (t *Tracker) UpdateHabit(id string, upd models.HabitUpdate) bool {
	if !t.habits.Update(id, upd) {
		return false
	}
	t.saveHabits()
	return true
}

// DeleteHabit removes the habit and all of its completions. A missing id is a no-op
// that returns false.
func (t *Tracker) DeleteHabit(id string) bool {
	if !t.habits.Remove(id) {
		return false
	}
	purged := t.ledger.Purge(id)
	logger.Debug("Habit deleted", "id", id, "completions", purged)
	t.saveHabits()
	t.saveCompletions()
	return true
}

// ToggleCompletion flips today's completion for the habit. It returns false without
// touching the ledger when the habit does not exist.
func (t *Tracker) ToggleCompletion(habitID string) (models.HabitCompletion, bool) {
	if _, ok := t.habits.Get(habitID); !ok {
		return models.HabitCompletion{}, false
	}
	now := t.clock()
	c := t.ledger.Toggle(habitID, utils.DateString(now), t.userID, now)
	logger.Debug("Completion toggled", "habit", habitID, "date", c.Date, "completed", c.Completed)
	t.saveCompletions()
	return c, true
}

// GetCompletion returns the record for habitID on date, if one exists.
func (t *Tracker) GetCompletion(habitID, date string) (models.HabitCompletion, bool) {
	return t.ledger.Get(habitID, date)
}

// IsCompletedToday reports whether the habit is marked completed today.
func (t *Tracker) IsCompletedToday(habitID string) bool {
	return t.completedOn(habitID, t.Today())
}

// HabitStreak returns the habit's current streak, ending today.
func (t *Tracker) HabitStreak(habitID string) int {
	return habits.CalculateStreak(t.ledger.CompletedDates(habitID), t.Today())
}

// Repair removes completions whose habit no longer exists, rewrites the completion
// set (which also drops the duplicate records collapsed at load) and returns how many
// orphans were removed.
func (t *Tracker) Repair() int {
	orphaned := make(map[string]bool)
	for _, c := range t.ledger.All() {
		if _, ok := t.habits.Get(c.HabitID); !ok {
			orphaned[c.HabitID] = true
		}
	}
	removed := 0
	for id := range orphaned {
		removed += t.ledger.Purge(id)
	}
	logger.Info("Repaired completions", "orphans", removed)
	t.saveCompletions()
	return removed
}
