package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/internal/tracker"
	"github.com/julianstephens/habitkit/internal/tui/components/habits"
	"github.com/julianstephens/habitkit/internal/utils"
)

func newTestModel(t *testing.T) (Model, *tracker.Tracker, models.Habit) {
	t.Helper()
	tr := tracker.New(storage.NewMemoryStore(), utils.FixedClock(time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)))
	h := tr.AddHabit("Drink water", models.TimeAnytime)
	m := NewModel(tr)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model), tr, h
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestToggleMessage(t *testing.T) {
	m, tr, h := newTestModel(t)

	next, _ := m.Update(habits.ToggleHabitMsg{ID: h.ID})
	m = next.(Model)
	if !tr.IsCompletedToday(h.ID) {
		t.Fatal("habit not completed after toggle message")
	}
	if !strings.Contains(m.View(), "✓ Drink water") {
		t.Errorf("view does not show the completed habit:\n%s", m.View())
	}
	if !strings.Contains(m.View(), "1/1 done (100%)") {
		t.Errorf("footer does not show today's stats:\n%s", m.View())
	}

	next, _ = m.Update(habits.ToggleHabitMsg{ID: h.ID})
	m = next.(Model)
	if tr.IsCompletedToday(h.ID) {
		t.Error("habit still completed after second toggle")
	}
}

func TestToggleKeyEmitsMessage(t *testing.T) {
	m, _, h := newTestModel(t)

	_, cmd := m.Update(keyRune('m'))
	if cmd == nil {
		t.Fatal("expected a command from the toggle key")
	}
	msg, ok := cmd().(habits.ToggleHabitMsg)
	if !ok || msg.ID != h.ID {
		t.Errorf("toggle key produced %#v, want ToggleHabitMsg for %s", msg, h.ID)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m, tr, h := newTestModel(t)

	next, _ := m.Update(habits.DeleteHabitMsg{ID: h.ID, Name: h.Name})
	m = next.(Model)
	if m.state != StateConfirmDelete {
		t.Fatalf("state = %v, want StateConfirmDelete", m.state)
	}

	next, _ = m.Update(keyRune('n'))
	m = next.(Model)
	if m.state != StateToday || len(tr.Habits()) != 1 {
		t.Fatalf("cancel left state=%v habits=%d", m.state, len(tr.Habits()))
	}

	next, _ = m.Update(habits.DeleteHabitMsg{ID: h.ID, Name: h.Name})
	m = next.(Model)
	next, _ = m.Update(keyRune('y'))
	m = next.(Model)
	if len(tr.Habits()) != 0 {
		t.Error("habit not deleted after confirmation")
	}
	if m.state != StateToday {
		t.Errorf("state = %v, want StateToday", m.state)
	}
}

func TestTabsAndWeekNavigation(t *testing.T) {
	m, _, _ := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.state != StateWeek {
		t.Fatalf("state = %v, want StateWeek", m.state)
	}
	if !strings.Contains(m.View(), "Week of 2024-03-10") {
		t.Errorf("week view missing header:\n%s", m.View())
	}

	next, _ = m.Update(keyRune('h'))
	m = next.(Model)
	if !strings.Contains(m.View(), "Week of 2024-03-03") {
		t.Errorf("previous week not shown:\n%s", m.View())
	}

	// The week view never moves past the current week.
	next, _ = m.Update(keyRune('l'))
	m = next.(Model)
	next, _ = m.Update(keyRune('l'))
	m = next.(Model)
	if m.weekModel.Offset() != 0 {
		t.Errorf("offset = %d, want 0", m.weekModel.Offset())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	if m.state != StateToday {
		t.Errorf("state = %v, want StateToday", m.state)
	}
}

func TestAddHabitOpensForm(t *testing.T) {
	m, _, _ := newTestModel(t)

	next, _ := m.Update(habits.AddHabitMsg{})
	m = next.(Model)
	if m.state != StateAddHabit || m.form == nil {
		t.Fatalf("state = %v, want StateAddHabit with a form", m.state)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.state != StateToday {
		t.Errorf("esc left state = %v, want StateToday", m.state)
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	next, cmd := m.Update(keyRune('q'))
	if !next.(Model).quitting || cmd == nil {
		t.Error("q did not quit")
	}
}
