package habits

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitkit/internal/models"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID string
}

type DeleteHabitMsg struct {
	ID   string
	Name string
}

type Item struct {
	Status models.HabitStatus
}

func (i Item) Title() string {
	if i.Status.IsCompleted {
		return "✓ " + i.Status.Name
	}
	return "○ " + i.Status.Name
}

func (i Item) Description() string {
	streak := fmt.Sprintf("%d day streak", i.Status.Streak)
	if i.Status.Streak == 1 {
		streak = "1 day streak"
	}
	return fmt.Sprintf("%s · %s", i.Status.TimePreference.Label(), streak)
}

func (i Item) FilterValue() string { return i.Status.Name }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "m"),
			key.WithHelp("space/m", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(statuses []models.HabitStatus, width, height int) Model {
	l := list.New(toItems(statuses), list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func toItems(statuses []models.HabitStatus) []list.Item {
	items := make([]list.Item, len(statuses))
	for i, s := range statuses {
		items[i] = Item{Status: s}
	}
	return items
}

// SetHabits replaces the list contents, keeping the cursor where it was.
func (m *Model) SetHabits(statuses []models.HabitStatus) {
	idx := m.list.Index()
	m.list.SetItems(toItems(statuses))
	if idx >= len(statuses) {
		idx = len(statuses) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

// Selected returns the habit under the cursor.
func (m Model) Selected() (models.HabitStatus, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i.Status, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if s, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleHabitMsg{ID: s.ID} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if s, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: s.ID, Name: s.Name} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
