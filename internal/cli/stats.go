package cli

import (
	"fmt"

	"github.com/julianstephens/habitkit/internal/utils"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	tr := ctx.Tracker()

	date := c.Date
	if date == "" || date == "today" {
		date = tr.Today()
	} else if _, err := utils.ParseDate(date); err != nil {
		return err
	}

	stats := tr.DayStats(date)
	ctx.printf("Habits for %s: %s\n\n", date, formatDayStats(stats))

	habits := tr.Habits()
	if len(habits) == 0 {
		ctx.println("  No habits found.")
		return nil
	}
	for _, h := range habits {
		completion, ok := tr.GetCompletion(h.ID, date)
		done := ok && completion.Completed
		line := fmt.Sprintf("  %s %s", checkbox(done), h.Name)
		if done && completion.CompletedAt != nil {
			line += fmt.Sprintf("  (%s)", formatTime(completion.CompletedAt))
		}
		ctx.println(line)
	}
	return nil
}

type WeekCmd struct {
	Offset int `help:"Weeks relative to the current one (-1 is last week)." default:"0"`
}

func (c *WeekCmd) Run(ctx *Context) error {
	tr := ctx.Tracker()
	week := tr.WeekStats(c.Offset)
	today := tr.Today()

	ctx.printf("Week of %s to %s\n\n", week.StartDate, week.EndDate)
	total := 0
	for _, d := range week.Days {
		marker := " "
		if d.Date == today {
			marker = ">"
		}
		ctx.printf("%s %s  %s  %3d%%  %d/%d\n",
			marker, weekdayLabel(d.Date), progressBar(d.CompletionRate), d.CompletionRate, d.Completed, d.Total)
		total += d.Completed
	}
	ctx.printf("\nCompletions this week: %d\n", total)
	return nil
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	summary := ctx.Tracker().TodaySummary()

	ctx.printf("Today (%s): %s\n", summary.Date, formatDayStats(summary.DayStats))
	ctx.printf("%s  total streak: %s\n", progressBar(summary.CompletionRate), formatStreak(summary.TotalStreak))

	if summary.Total == 0 {
		ctx.println("\nNo habits yet. Add one with 'habitkit habit add'.")
		return nil
	}
	for _, g := range summary.Groups {
		if len(g.Habits) == 0 {
			continue
		}
		ctx.printf("\n%s (%d/%d)\n", g.TimePreference.Label(), g.Completed, len(g.Habits))
		for _, s := range g.Habits {
			ctx.printf("  %s %-30s  %s\n", checkbox(s.IsCompleted), s.Name, formatStreak(s.Streak))
		}
	}
	return nil
}
