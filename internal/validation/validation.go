package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/utils"
)

// ErrEmptyName is returned for habit names that are blank after trimming
var ErrEmptyName = errors.New("habit name cannot be empty")

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateHabitName    ConflictType = "duplicate_habit_name"
	ConflictEmptyHabitName        ConflictType = "empty_habit_name"
	ConflictInvalidTimePreference ConflictType = "invalid_time_preference"
	ConflictDuplicateCompletion   ConflictType = "duplicate_completion"
	ConflictOrphanCompletion      ConflictType = "orphan_completion"
	ConflictInvalidDate           ConflictType = "invalid_date"
)

// Conflict represents a problem found in stored habits or completions
type Conflict struct {
	Type          ConflictType
	Description   string
	Date          string   // YYYY-MM-DD (if applicable)
	HabitIDs      []string // habits involved
	CompletionIDs []string // completion records involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Merge appends the conflicts of other
func (vr *ValidationResult) Merge(other ValidationResult) {
	vr.Conflicts = append(vr.Conflicts, other.Conflicts...)
}

// Count returns the number of conflicts of type t
func (vr *ValidationResult) Count(t ConflictType) int {
	n := 0
	for _, c := range vr.Conflicts {
		if c.Type == t {
			n++
		}
	}
	return n
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// ValidateHabitName trims name and rejects it if nothing is left.
func ValidateHabitName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}
	return trimmed, nil
}

// Validator checks stored records for broken invariants
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateHabits checks habit definitions: names must be non-empty and unique, and the
// time preference must be one of the known values.
func (v *Validator) ValidateHabits(habits []models.Habit) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	nameIDs := make(map[string][]string)
	var names []string
	for _, h := range habits {
		if strings.TrimSpace(h.Name) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyHabitName,
				Description: fmt.Sprintf("Habit %s has an empty name", h.ID),
				HabitIDs:    []string{h.ID},
			})
			continue
		}
		if _, seen := nameIDs[h.Name]; !seen {
			names = append(names, h.Name)
		}
		nameIDs[h.Name] = append(nameIDs[h.Name], h.ID)
	}

	for _, name := range names {
		ids := nameIDs[name]
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateHabitName,
				Description: fmt.Sprintf("Duplicate habit name: %q (IDs: %v)", name, ids),
				HabitIDs:    ids,
			})
		}
	}

	for _, h := range habits {
		if !h.TimePreference.Valid() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidTimePreference,
				Description: fmt.Sprintf("Habit %q has invalid time preference: %q", h.Name, h.TimePreference),
				HabitIDs:    []string{h.ID},
			})
		}
	}

	return result
}

// ValidateCompletions checks completion records against the habits they reference:
// one record per (habit, date), a well-formed date, and an existing habit.
func (v *Validator) ValidateCompletions(completions []models.HabitCompletion, habits []models.Habit) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	known := make(map[string]bool, len(habits))
	for _, h := range habits {
		known[h.ID] = true
	}

	byDay := make(map[[2]string][]string)
	for _, c := range completions {
		if !utils.ValidateDate(c.Date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:          ConflictInvalidDate,
				Description:   fmt.Sprintf("Completion %s has invalid date: %q", c.ID, c.Date),
				Date:          c.Date,
				HabitIDs:      []string{c.HabitID},
				CompletionIDs: []string{c.ID},
			})
		}
		if !known[c.HabitID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:          ConflictOrphanCompletion,
				Description:   fmt.Sprintf("%s: completion %s references missing habit %s", c.Date, c.ID, c.HabitID),
				Date:          c.Date,
				HabitIDs:      []string{c.HabitID},
				CompletionIDs: []string{c.ID},
			})
		}
		k := [2]string{c.HabitID, c.Date}
		byDay[k] = append(byDay[k], c.ID)
	}

	keys := make([][2]string, 0, len(byDay))
	for k, ids := range byDay {
		if len(ids) > 1 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][1] != keys[j][1] {
			return keys[i][1] < keys[j][1]
		}
		return keys[i][0] < keys[j][0]
	})
	for _, k := range keys {
		ids := byDay[k]
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:          ConflictDuplicateCompletion,
			Description:   fmt.Sprintf("%s: habit %s has %d completion records", k[1], k[0], len(ids)),
			Date:          k[1],
			HabitIDs:      []string{k[0]},
			CompletionIDs: ids,
		})
	}

	return result
}
