package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habitkit/internal/backup"
	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/internal/storage/sqlite"
	"github.com/julianstephens/habitkit/internal/utils"
	"github.com/julianstephens/habitkit/internal/validation"
)

// pinger is implemented by stores backed by a server or database handle.
type pinger interface {
	Ping() error
}

type DoctorCmd struct {
	Fix bool `help:"Remove orphaned and duplicate completion records."`
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	hasError := false
	reachable := false

	if err := checkStoreReachable(ctx); err != nil {
		ctx.printf("❌ Store reachable: FAIL\n")
		ctx.printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.printf("✓ Store reachable: OK (%s)\n", ctx.Store.GetConfigPath())
		reachable = true
	}

	if err := checkBackupsPresent(ctx); err != nil {
		ctx.printf("⚠ Backups present: WARNING\n")
		ctx.printf("   %v\n", err)
	} else {
		ctx.printf("✓ Backups present: OK\n")
	}

	if reachable {
		result := validateRecords(ctx)
		switch {
		case !result.HasConflicts():
			ctx.printf("✓ Data validation: OK\n")
		case cmd.Fix && fixable(result):
			removed := ctx.Tracker().Repair()
			ctx.printf("✓ Data validation: FIXED (removed %d orphaned completions, collapsed %d duplicate days)\n",
				removed, result.Count(validation.ConflictDuplicateCompletion))
			ctx.warnUnsynced()
		default:
			ctx.printf("❌ Data validation: FAIL\n")
			for _, c := range result.Conflicts {
				ctx.printf("   - %s\n", c.Description)
			}
			if fixable(result) {
				ctx.println("   Run 'habitkit doctor --fix' to repair completion records.")
			}
			hasError = true
		}
	} else {
		ctx.printf("⊘ Data validation: SKIPPED (store not reachable)\n")
	}

	if err := checkClock(ctx); err != nil {
		ctx.printf("❌ Clock/timezone: FAIL\n")
		ctx.printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.printf("✓ Clock/timezone: OK (today is %s, %s)\n", utils.DateString(ctx.Clock()), time.Local.String())
	}

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}
	ctx.println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	if p, ok := ctx.Store.(pinger); ok {
		if err := p.Ping(); err != nil {
			return fmt.Errorf("store did not answer: %w", err)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return nil
	}
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return errors.New("no backups found, run 'habitkit backup' to create one")
	}
	return nil
}

// validateRecords checks the records as stored, before the tracker collapses them.
func validateRecords(ctx *Context) validation.ValidationResult {
	adapter := storage.NewAdapter(ctx.Store)
	habits, _ := storage.Load[[]models.Habit](adapter, constants.KeyHabits)
	completions, _ := storage.Load[[]models.HabitCompletion](adapter, constants.KeyCompletions)

	v := validation.New()
	result := v.ValidateHabits(habits)
	result.Merge(v.ValidateCompletions(completions, habits))
	return result
}

// fixable reports whether every conflict is one Tracker.Repair resolves.
func fixable(result validation.ValidationResult) bool {
	for _, c := range result.Conflicts {
		if c.Type != validation.ConflictOrphanCompletion && c.Type != validation.ConflictDuplicateCompletion {
			return false
		}
	}
	return true
}

func checkClock(ctx *Context) error {
	now := ctx.Clock()
	if now.Year() < 2000 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	return nil
}
