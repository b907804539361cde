// Package tui is the interactive habit checklist: today's habits with their
// streaks, a week view, and a footer with today's progress.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/tracker"
	"github.com/julianstephens/habitkit/internal/tui/components/habits"
	"github.com/julianstephens/habitkit/internal/tui/components/week"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateWeek
	StateAddHabit
	StateConfirmDelete
)

// tabCount is the number of states reachable with tab
const tabCount = 2

var tabTitles = []string{"Today", "Week"}

type HabitFormModel struct {
	Name string
	Time string
}

type Model struct {
	tracker       *tracker.Tracker
	state         SessionState
	keys          KeyMap
	help          help.Model
	habitsModel   habits.Model
	weekModel     week.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	deleteID      string
	deleteName    string
	statusMessage string
	quitting      bool
	width         int
	height        int
}

func NewModel(tr *tracker.Tracker) Model {
	m := Model{
		tracker:     tr,
		state:       StateToday,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		habitsModel: habits.New(tr.ListHabitsWithStatus(), 0, 0),
		weekModel:   week.New(tr.WeekStats(0), tr.Today()),
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		hk := habits.DefaultKeyMap()
		keys = append(keys, hk.Toggle, hk.Add, hk.Delete)
	case StateWeek:
		keys = append(keys, m.keys.PrevWeek, m.keys.NextWeek)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.PrevWeek, m.keys.NextWeek}
	hk := habits.DefaultKeyMap()
	return [][]key.Binding{global, navigation, {hk.Toggle, hk.Add, hk.Delete}}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads every view from the tracker.
func (m *Model) refresh() {
	m.habitsModel.SetHabits(m.tracker.ListHabitsWithStatus())
	offset := m.weekModel.Offset()
	m.weekModel.SetWeek(m.tracker.WeekStats(offset), m.tracker.Today(), offset)
	if !m.tracker.Synced() {
		m.statusMessage = "⚠ Changes could not be saved"
	}
}

func newHabitForm(f *HabitFormModel) *huh.Form {
	options := make([]huh.Option[string], 0, len(models.TimePreferences))
	for _, p := range models.TimePreferences {
		options = append(options, huh.NewOption(p.Label(), string(p)))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&f.Name).
				Validate(validateName),
			huh.NewSelect[string]().
				Title("Time of day").
				Options(options...).
				Value(&f.Time),
		),
	)
}
