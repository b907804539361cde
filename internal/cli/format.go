package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/utils"
)

const barWidth = 20

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func formatStreak(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// progressBar renders rate (0-100) as a fixed-width bar.
func progressBar(rate int) string {
	filled := rate * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func formatDayStats(s models.DayStats) string {
	return fmt.Sprintf("%d/%d completed (%d%%)", s.Completed, s.Total, s.CompletionRate)
}

// weekdayLabel returns "Mon 03-11" for a YYYY-MM-DD date, or the date itself if it
// does not parse.
func weekdayLabel(date string) string {
	t, err := utils.ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Mon 01-02")
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format("15:04")
}
