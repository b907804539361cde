package habits

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitkit/internal/models"
)

// Ledger owns the completion records. It holds at most one record per
// (habit, date); un-completing a day flips the record instead of removing it.
type Ledger struct {
	completions []models.HabitCompletion
}

// NewLedger starts a ledger from previously stored completions. If the stored set
// breaks the one-record-per-day rule, the last record for a pair wins.
func NewLedger(completions []models.HabitCompletion) *Ledger {
	l := &Ledger{}
	seen := make(map[[2]string]int, len(completions))
	for _, c := range completions {
		k := [2]string{c.HabitID, c.Date}
		if i, ok := seen[k]; ok {
			l.completions[i] = c
			continue
		}
		seen[k] = len(l.completions)
		l.completions = append(l.completions, c)
	}
	return l
}

// Toggle flips the completion of habitID on date. A missing record is created as
// completed. Flipping to completed stamps now; flipping back clears the stamp.
func (l *Ledger) Toggle(habitID, date, userID string, now time.Time) models.HabitCompletion {
	if i := l.index(habitID, date); i >= 0 {
		c := &l.completions[i]
		c.Completed = !c.Completed
		if c.Completed {
			stamp := now
			c.CompletedAt = &stamp
		} else {
			c.CompletedAt = nil
		}
		return *c
	}

	stamp := now
	c := models.HabitCompletion{
		ID:          uuid.New().String(),
		HabitID:     habitID,
		Date:        date,
		Completed:   true,
		CompletedAt: &stamp,
		UserID:      userID,
	}
	l.completions = append(l.completions, c)
	return c
}

// Get returns the record for habitID on date, if any.
func (l *Ledger) Get(habitID, date string) (models.HabitCompletion, bool) {
	if i := l.index(habitID, date); i >= 0 {
		return l.completions[i], true
	}
	return models.HabitCompletion{}, false
}

// Purge removes every record for habitID and returns how many were removed.
func (l *Ledger) Purge(habitID string) int {
	kept := l.completions[:0]
	for _, c := range l.completions {
		if c.HabitID != habitID {
			kept = append(kept, c)
		}
	}
	removed := len(l.completions) - len(kept)
	clear(l.completions[len(kept):])
	l.completions = kept
	return removed
}

// CompletedDates returns the dates on which habitID is marked completed.
func (l *Ledger) CompletedDates(habitID string) []string {
	var dates []string
	for _, c := range l.completions {
		if c.HabitID == habitID && c.Completed {
			dates = append(dates, c.Date)
		}
	}
	return dates
}

// CompletedOn counts the records marked completed on date.
func (l *Ledger) CompletedOn(date string) int {
	n := 0
	for _, c := range l.completions {
		if c.Date == date && c.Completed {
			n++
		}
	}
	return n
}

// All returns a copy of every record in insertion order.
func (l *Ledger) All() []models.HabitCompletion {
	out := make([]models.HabitCompletion, len(l.completions))
	for i, c := range l.completions {
		if c.CompletedAt != nil {
			stamp := *c.CompletedAt
			c.CompletedAt = &stamp
		}
		out[i] = c
	}
	return out
}

func (l *Ledger) Len() int {
	return len(l.completions)
}

func (l *Ledger) index(habitID, date string) int {
	for i, c := range l.completions {
		if c.HabitID == habitID && c.Date == date {
			return i
		}
	}
	return -1
}
