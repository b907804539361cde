package tracker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/internal/utils"
)

// 2024-03-15 is a Friday
var testNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func newTestTracker(t *testing.T) (*Tracker, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return New(store, utils.FixedClock(testNow)), store
}

func seed(t *testing.T, store storage.Provider, habits []models.Habit, completions []models.HabitCompletion) {
	t.Helper()
	a := storage.NewAdapter(store)
	if !a.Set(constants.KeyHabits, habits) {
		t.Fatal("failed to seed habits")
	}
	if !a.Set(constants.KeyCompletions, completions) {
		t.Fatal("failed to seed completions")
	}
}

func TestToggleRoundTrip(t *testing.T) {
	tr, _ := newTestTracker(t)
	h := tr.AddHabit("Drink water", models.TimeAnytime)

	if _, ok := tr.ToggleCompletion(h.ID); !ok {
		t.Fatal("ToggleCompletion() returned false for existing habit")
	}
	statuses := tr.ListHabitsWithStatus()
	if len(statuses) != 1 {
		t.Fatalf("got %d habits, want 1", len(statuses))
	}
	if !statuses[0].IsCompleted || statuses[0].Streak != 1 {
		t.Errorf("after first toggle: completed=%v streak=%d, want true 1",
			statuses[0].IsCompleted, statuses[0].Streak)
	}

	c, _ := tr.ToggleCompletion(h.ID)
	if c.Completed || c.CompletedAt != nil {
		t.Errorf("second toggle = %+v, want completed=false without timestamp", c)
	}
	statuses = tr.ListHabitsWithStatus()
	if statuses[0].IsCompleted || statuses[0].Streak != 0 {
		t.Errorf("after second toggle: completed=%v streak=%d, want false 0",
			statuses[0].IsCompleted, statuses[0].Streak)
	}

	// Un-completion keeps the record.
	if got := len(tr.Completions()); got != 1 {
		t.Errorf("completion records = %d, want 1", got)
	}
}

func TestToggleUnknownHabit(t *testing.T) {
	tr, _ := newTestTracker(t)
	if _, ok := tr.ToggleCompletion("missing"); ok {
		t.Error("ToggleCompletion() on unknown habit returned true")
	}
	if got := len(tr.Completions()); got != 0 {
		t.Errorf("completion records = %d, want 0", got)
	}
}

func TestStreakFromHistory(t *testing.T) {
	store := storage.NewMemoryStore()
	habit := models.Habit{ID: "h1", Name: "Read", TimePreference: models.TimeEvening, CreatedAt: testNow}
	seed(t, store, []models.Habit{habit}, []models.HabitCompletion{
		{ID: "c1", HabitID: "h1", Date: "2024-03-13", Completed: true},
		{ID: "c2", HabitID: "h1", Date: "2024-03-14", Completed: true},
		{ID: "c3", HabitID: "h1", Date: "2024-03-15", Completed: true},
		{ID: "c4", HabitID: "h1", Date: "2024-03-11", Completed: true},
	})
	tr := New(store, utils.FixedClock(testNow))

	if got := tr.HabitStreak("h1"); got != 3 {
		t.Errorf("HabitStreak() = %d, want 3", got)
	}
	if !tr.IsCompletedToday("h1") {
		t.Error("IsCompletedToday() = false, want true")
	}

	// Un-completing today breaks the streak even with prior days intact.
	tr.ToggleCompletion("h1")
	if got := tr.HabitStreak("h1"); got != 0 {
		t.Errorf("HabitStreak() after un-completing today = %d, want 0", got)
	}
}

func TestDeleteCascades(t *testing.T) {
	tr, store := newTestTracker(t)
	keep := tr.AddHabit("Stretch", models.TimeMorning)
	drop := tr.AddHabit("Journal", models.TimeEvening)
	tr.ToggleCompletion(keep.ID)
	tr.ToggleCompletion(drop.ID)

	if !tr.DeleteHabit(drop.ID) {
		t.Fatal("DeleteHabit() = false for existing habit")
	}
	if tr.DeleteHabit(drop.ID) {
		t.Error("second DeleteHabit() = true, want false")
	}
	for _, c := range tr.Completions() {
		if c.HabitID == drop.ID {
			t.Errorf("completion %s for deleted habit survived", c.ID)
		}
	}
	if got := tr.DayStats(tr.Today()); got.Completed != 1 || got.Total != 1 {
		t.Errorf("DayStats() = %+v, want 1/1", got)
	}

	// The persisted set matches memory.
	reopened := New(store, utils.FixedClock(testNow))
	if diff := cmp.Diff(tr.Completions(), reopened.Completions()); diff != "" {
		t.Errorf("persisted completions mismatch (-memory +store):\n%s", diff)
	}
}

func TestDayStatsRate(t *testing.T) {
	tr, _ := newTestTracker(t)
	a := tr.AddHabit("One", models.TimeAnytime)
	tr.AddHabit("Two", models.TimeAnytime)
	tr.AddHabit("Three", models.TimeAnytime)
	tr.ToggleCompletion(a.ID)

	want := models.DayStats{Date: "2024-03-15", Completed: 1, Total: 3, CompletionRate: 33}
	if diff := cmp.Diff(want, tr.DayStats("2024-03-15")); diff != "" {
		t.Errorf("DayStats() mismatch (-want +got):\n%s", diff)
	}

	empty, _ := newTestTracker(t)
	if got := empty.DayStats("2024-03-15"); got.CompletionRate != 0 || got.Total != 0 {
		t.Errorf("DayStats() with no habits = %+v, want zero rate", got)
	}
}

func TestUpdateHabit(t *testing.T) {
	tr, _ := newTestTracker(t)
	h := tr.AddHabit("Walk", models.TimeMorning)

	name := "Walk the dog"
	if !tr.UpdateHabit(h.ID, models.HabitUpdate{Name: &name}) {
		t.Fatal("UpdateHabit() = false for existing habit")
	}
	got, _ := tr.Habit(h.ID)
	if got.Name != name || got.TimePreference != models.TimeMorning {
		t.Errorf("updated habit = %+v, want renamed with preference kept", got)
	}
	if tr.UpdateHabit("missing", models.HabitUpdate{Name: &name}) {
		t.Error("UpdateHabit() on missing id = true")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	tr, store := newTestTracker(t)
	tr.SetUser("user-1")
	h := tr.AddHabit("Meditate", models.TimeMorning)
	tr.ToggleCompletion(h.ID)

	reopened := New(store, utils.FixedClock(testNow))
	if diff := cmp.Diff(tr.Habits(), reopened.Habits()); diff != "" {
		t.Errorf("habits mismatch (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(tr.ListHabitsWithStatus(), reopened.ListHabitsWithStatus()); diff != "" {
		t.Errorf("status mismatch (-before +after):\n%s", diff)
	}
	if got := reopened.Habits()[0].UserID; got != "user-1" {
		t.Errorf("UserID = %q, want user-1", got)
	}

	// Derived fields are never persisted.
	raw, err := store.Get(constants.KeyHabits)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	var fields []map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("stored habits are not JSON: %v", err)
	}
	for _, k := range []string{"isCompleted", "streak"} {
		if _, ok := fields[0][k]; ok {
			t.Errorf("stored habit carries derived field %q", k)
		}
	}
}

func TestFailingStore(t *testing.T) {
	store := storage.NewFailingStore()
	store.FailReads = true
	store.FailWrites = true
	tr := New(store, utils.FixedClock(testNow))

	if got := len(tr.Habits()); got != 0 {
		t.Fatalf("habits after failed read = %d, want 0", got)
	}
	h := tr.AddHabit("Floss", models.TimeEvening)
	tr.ToggleCompletion(h.ID)

	if tr.Synced() {
		t.Error("Synced() = true after failed writes")
	}
	if !tr.IsCompletedToday(h.ID) {
		t.Error("in-memory state lost after failed write")
	}
}

func TestSyncedAfterWrites(t *testing.T) {
	tr, _ := newTestTracker(t)
	tr.AddHabit("Floss", models.TimeEvening)
	if !tr.Synced() {
		t.Error("Synced() = false with a healthy store")
	}
}

func TestRepair(t *testing.T) {
	store := storage.NewMemoryStore()
	seed(t, store,
		[]models.Habit{{ID: "h1", Name: "Read", TimePreference: models.TimeEvening, CreatedAt: testNow}},
		[]models.HabitCompletion{
			{ID: "c1", HabitID: "h1", Date: "2024-03-15", Completed: false},
			{ID: "c1b", HabitID: "h1", Date: "2024-03-15", Completed: true},
			{ID: "c2", HabitID: "gone", Date: "2024-03-15", Completed: true},
			{ID: "c3", HabitID: "gone", Date: "2024-03-14", Completed: true},
		})
	tr := New(store, utils.FixedClock(testNow))

	if got := tr.Repair(); got != 2 {
		t.Errorf("Repair() = %d, want 2", got)
	}
	if got := tr.DayStats("2024-03-15").Completed; got != 1 {
		t.Errorf("completed after repair = %d, want 1", got)
	}

	// The store now holds one record per (habit, date) and no orphans.
	stored, ok := storage.Load[[]models.HabitCompletion](storage.NewAdapter(store), constants.KeyCompletions)
	if !ok || len(stored) != 1 || stored[0].ID != "c1b" {
		t.Errorf("stored completions = %+v, want only c1b", stored)
	}
	if got := tr.Repair(); got != 0 {
		t.Errorf("second Repair() = %d, want 0", got)
	}
}
