package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/tui/components/week"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.habitsModel.View())
	case StateWeek:
		content = docStyle.Render(m.weekModel.View())
	case StateAddHabit:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewFooter(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewFooter shows today's progress and the last seven days.
func (m Model) viewFooter() string {
	stats := m.tracker.DayStats(m.tracker.Today())
	recent := m.tracker.RecentStats(constants.DefaultRecentDays)
	line := fmt.Sprintf("%d/%d done (%d%%)   %s", stats.Completed, stats.Total, stats.CompletionRate, week.Strip(recent))
	if m.statusMessage != "" {
		line += "   " + warningStyle.Render(m.statusMessage)
	}
	return footerStyle.Render(line)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-footerHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q and all of its history?", m.deleteName)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
