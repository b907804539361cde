package week

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/utils"
)

const barWidth = 24

var (
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	todayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	fullStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	partStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model renders one week of day stats as horizontal bars.
type Model struct {
	stats  models.WeekStats
	today  string
	offset int
	width  int
}

func New(stats models.WeekStats, today string) Model {
	return Model{stats: stats, today: today}
}

func (m *Model) SetWeek(stats models.WeekStats, today string, offset int) {
	m.stats = stats
	m.today = today
	m.offset = offset
}

func (m Model) Offset() int {
	return m.offset
}

func (m *Model) SetSize(width int) {
	m.width = width
}

func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Week of %s", m.stats.StartDate)
	switch {
	case m.offset == 0:
		title += " (this week)"
	case m.offset == -1:
		title += " (last week)"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	for _, d := range m.stats.Days {
		label := d.Date
		if t, err := utils.ParseDate(d.Date); err == nil {
			label = t.Format("Mon 01-02")
		}
		if d.Date == m.today {
			label = todayStyle.Render(label)
		}
		fmt.Fprintf(&b, "%s  %s  %3d%%  %d/%d\n", label, bar(d.CompletionRate), d.CompletionRate, d.Completed, d.Total)
	}
	return b.String()
}

// Strip renders the week as a single line of day markers for the status footer.
func Strip(stats models.WeekStats) string {
	marks := make([]string, 0, len(stats.Days))
	for _, d := range stats.Days {
		switch {
		case d.Total > 0 && d.Completed == d.Total:
			marks = append(marks, fullStyle.Render("●"))
		case d.Completed > 0:
			marks = append(marks, partStyle.Render("◐"))
		default:
			marks = append(marks, emptyStyle.Render("○"))
		}
	}
	return strings.Join(marks, " ")
}

func bar(rate int) string {
	filled := rate * barWidth / 100
	style := partStyle
	if rate == 100 {
		style = fullStyle
	}
	return style.Render(strings.Repeat("█", filled)) + emptyStyle.Render(strings.Repeat("░", barWidth-filled))
}
