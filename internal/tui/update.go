package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/tui/components/habits"
	"github.com/julianstephens/habitkit/internal/validation"
)

func validateName(s string) error {
	_, err := validation.ValidateHabitName(s)
	return err
}

// footerHeight covers the tabs, the stats footer and the short help line.
const footerHeight = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitsModel.SetSize(msg.Width-4, msg.Height-footerHeight)
		m.weekModel.SetSize(msg.Width - 4)
		return m, nil
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case habits.AddHabitMsg:
		m.habitForm = &HabitFormModel{Time: string(models.TimeAnytime)}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habits.ToggleHabitMsg:
		if c, ok := m.tracker.ToggleCompletion(msg.ID); ok {
			m.statusMessage = ""
			if c.Completed {
				m.statusMessage = fmt.Sprintf("Streak: %d", m.tracker.HabitStreak(msg.ID))
			}
		}
		m.refresh()
		return m, nil

	case habits.DeleteHabitMsg:
		m.deleteID = msg.ID
		m.deleteName = msg.Name
		m.state = StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.state == StateWeek {
			return m.updateWeek(msg)
		}
	}

	if m.state == StateToday {
		var cmd tea.Cmd
		m.habitsModel, cmd = m.habitsModel.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateWeek(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	offset := m.weekModel.Offset()
	switch {
	case key.Matches(msg, m.keys.PrevWeek):
		offset--
	case key.Matches(msg, m.keys.NextWeek):
		if offset < 0 {
			offset++
		}
	default:
		return m, nil
	}
	m.weekModel.SetWeek(m.tracker.WeekStats(offset), m.tracker.Today(), offset)
	return m, nil
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateToday
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		name, err := validation.ValidateHabitName(m.habitForm.Name)
		if err != nil {
			m.form.State = huh.StateNormal
			return m, cmd
		}
		pref, err := models.ParseTimePreference(m.habitForm.Time)
		if err != nil {
			pref = models.TimeAnytime
		}
		habit := m.tracker.AddHabit(name, pref)
		m.statusMessage = fmt.Sprintf("Added %s", habit.Name)
		m.refresh()
		m.state = StateToday
	case huh.StateAborted:
		m.state = StateToday
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		if m.tracker.DeleteHabit(m.deleteID) {
			m.statusMessage = fmt.Sprintf("Deleted %s", m.deleteName)
		}
		m.refresh()
	case key.Matches(keyMsg, m.keys.Cancel):
	default:
		return m, nil
	}
	m.state = StateToday
	m.deleteID, m.deleteName = "", ""
	return m, nil
}
