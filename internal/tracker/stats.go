package tracker

import (
	"github.com/julianstephens/habitkit/internal/habits"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/utils"
)

// DayStats summarizes date. The total is the number of habits that exist now, not
// the number that existed on date.
func (t *Tracker) DayStats(date string) models.DayStats {
	return habits.NewDayStats(date, t.ledger.CompletedOn(date), t.habits.Len())
}

// WeekStats returns the Sunday-to-Saturday week containing today, shifted by offset
// weeks.
func (t *Tracker) WeekStats(offset int) models.WeekStats {
	dates, err := utils.WeekDates(t.Today(), offset)
	if err != nil {
		logger.Error("Failed to compute week", "offset", offset, "error", err)
		return models.WeekStats{}
	}
	return t.weekOf(dates)
}

// RecentStats returns stats for the n days ending today, oldest first.
func (t *Tracker) RecentStats(n int) models.WeekStats {
	dates, err := utils.RecentDates(t.Today(), n)
	if err != nil || len(dates) == 0 {
		return models.WeekStats{}
	}
	return t.weekOf(dates)
}

func (t *Tracker) weekOf(dates []string) models.WeekStats {
	week := models.WeekStats{
		StartDate: dates[0],
		EndDate:   dates[len(dates)-1],
		Days:      make([]models.DayStats, len(dates)),
	}
	for i, d := range dates {
		week.Days[i] = t.DayStats(d)
	}
	return week
}

// TodaySummary aggregates today's progress and groups the habits by time preference
// in display order (morning, anytime, evening).
func (t *Tracker) TodaySummary() models.TodaySummary {
	today := t.Today()
	statuses := t.ListHabitsWithStatus()

	summary := models.TodaySummary{}
	completed := 0
	for _, s := range statuses {
		if s.IsCompleted {
			completed++
		}
		summary.TotalStreak += s.Streak
	}
	summary.DayStats = habits.NewDayStats(today, completed, len(statuses))

	for _, pref := range models.TimePreferences {
		group := models.TimeGroup{TimePreference: pref}
		for _, s := range statuses {
			if s.TimePreference != pref {
				continue
			}
			group.Habits = append(group.Habits, s)
			if s.IsCompleted {
				group.Completed++
			}
		}
		summary.Groups = append(summary.Groups, group)
	}
	return summary
}
