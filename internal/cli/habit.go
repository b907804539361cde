package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with today's status."`
	Edit   HabitEditCmd   `cmd:"" help:"Rename a habit or change its time of day."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its history."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle today's completion for a habit."`
	Streak HabitStreakCmd `cmd:"" help:"Show a habit's current streak."`
}

type HabitAddCmd struct {
	Name string `arg:"" optional:"" help:"Habit name. Prompts when omitted."`
	Time string `help:"Time of day (morning|anytime|evening)." default:"anytime"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	name, timeStr := c.Name, c.Time
	if strings.TrimSpace(name) == "" {
		if err := promptHabit(&name, &timeStr); err != nil {
			return err
		}
	}

	name, err := validation.ValidateHabitName(name)
	if err != nil {
		return err
	}
	pref, err := models.ParseTimePreference(timeStr)
	if err != nil {
		return err
	}

	tr := ctx.Tracker()
	for _, h := range tr.Habits() {
		if h.Name == name {
			return fmt.Errorf("habit with name %q already exists", name)
		}
	}

	habit := tr.AddHabit(name, pref)
	ctx.printf("Added habit: %s (%s)\n", habit.Name, habit.TimePreference)
	ctx.warnUnsynced()
	return nil
}

// promptHabit asks for the habit fields with a huh form.
func promptHabit(name, timeStr *string) error {
	options := make([]huh.Option[string], 0, len(models.TimePreferences))
	for _, p := range models.TimePreferences {
		options = append(options, huh.NewOption(p.Label(), string(p)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(name).
				Validate(func(s string) error {
					_, err := validation.ValidateHabitName(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Time of day").
				Options(options...).
				Value(timeStr),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("habit form: %w", err)
	}
	return nil
}

type HabitListCmd struct {
	JSON bool `help:"Print habits as JSON."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	statuses := ctx.Tracker().ListHabitsWithStatus()

	if c.JSON {
		enc := json.NewEncoder(ctx.out())
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	if len(statuses) == 0 {
		ctx.println("No habits found.")
		return nil
	}

	for _, s := range statuses {
		ctx.printf("%s %-30s  %-8s  %s  %s\n",
			checkbox(s.IsCompleted), s.Name, s.TimePreference, formatStreak(s.Streak), shortID(s.ID))
	}
	return nil
}

type HabitEditCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
	Name  string `help:"New name."`
	Time  string `help:"New time of day (morning|anytime|evening)."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	tr := ctx.Tracker()
	habit, err := resolveHabit(tr, c.Habit)
	if err != nil {
		return err
	}

	var upd models.HabitUpdate
	if c.Name != "" {
		name, err := validation.ValidateHabitName(c.Name)
		if err != nil {
			return err
		}
		upd.Name = &name
	}
	if c.Time != "" {
		pref, err := models.ParseTimePreference(c.Time)
		if err != nil {
			return err
		}
		upd.TimePreference = &pref
	}
	if upd.Name == nil && upd.TimePreference == nil {
		return fmt.Errorf("nothing to change, pass --name or --time")
	}

	tr.UpdateHabit(habit.ID, upd)
	updated, _ := tr.Habit(habit.ID)
	ctx.printf("Updated habit: %s (%s)\n", updated.Name, updated.TimePreference)
	ctx.warnUnsynced()
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	tr := ctx.Tracker()
	habit, err := resolveHabit(tr, c.Habit)
	if err != nil {
		return err
	}
	tr.DeleteHabit(habit.ID)
	ctx.printf("Deleted habit: %s\n", habit.Name)
	ctx.warnUnsynced()
	return nil
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	tr := ctx.Tracker()
	habit, err := resolveHabit(tr, c.Habit)
	if err != nil {
		return err
	}

	completion, _ := tr.ToggleCompletion(habit.ID)
	if completion.Completed {
		ctx.printf("Marked %q done for %s (streak: %s)\n", habit.Name, completion.Date, formatStreak(tr.HabitStreak(habit.ID)))
	} else {
		ctx.printf("Unmarked %q for %s\n", habit.Name, completion.Date)
	}
	ctx.warnUnsynced()
	return nil
}

type HabitStreakCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *HabitStreakCmd) Run(ctx *Context) error {
	tr := ctx.Tracker()
	habit, err := resolveHabit(tr, c.Habit)
	if err != nil {
		return err
	}
	ctx.printf("%s: %s\n", habit.Name, formatStreak(tr.HabitStreak(habit.ID)))
	return nil
}
