package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/habitkit/internal/auth"
	herrors "github.com/julianstephens/habitkit/internal/errors"
	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/internal/tracker"
	"github.com/julianstephens/habitkit/internal/utils"
)

// Context is handed to every command's Run method. Store is already loaded unless the
// command manages its own store (init, keyring).
type Context struct {
	Store storage.Provider
	Clock utils.Clock
	Out   io.Writer

	tracker *tracker.Tracker
	session *auth.Session
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

// Session returns the session bound to the store.
func (c *Context) Session() *auth.Session {
	if c.session == nil {
		c.session = auth.NewSession(c.Store, c.Clock)
	}
	return c.session
}

// Tracker returns the tracker bound to the store, opened on first use. New records
// are stamped with the signed-in user's id.
func (c *Context) Tracker() *tracker.Tracker {
	if c.tracker == nil {
		c.tracker = tracker.New(c.Store, c.Clock)
		if user, ok := c.Session().Current(); ok {
			c.tracker.SetUser(user.ID)
		}
	}
	return c.tracker
}

// warnUnsynced tells the user when a change lives only in this process.
func (c *Context) warnUnsynced() {
	if c.tracker != nil && !c.tracker.Synced() {
		logger.Warn("Changes were not saved", "store", c.Store.GetConfigPath())
		c.println("⚠ Warning: the change could not be saved to the store and will be lost on exit.")
	}
}

// resolveHabit finds a habit by id, falling back to an exact name match.
func resolveHabit(tr *tracker.Tracker, ref string) (models.Habit, error) {
	if h, ok := tr.Habit(ref); ok {
		return h, nil
	}
	var matches []models.Habit
	for _, h := range tr.Habits() {
		if h.Name == ref {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 0:
		return models.Habit{}, herrors.HabitNotFound(ref)
	case 1:
		return matches[0], nil
	default:
		return models.Habit{}, fmt.Errorf("%w: %q matches %d habits", herrors.ErrAmbiguousHabit, ref, len(matches))
	}
}
