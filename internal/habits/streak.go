package habits

import (
	"slices"

	"github.com/julianstephens/habitkit/internal/utils"
)

// CalculateStreak counts consecutive completed days ending at today.
//
// dates are YYYY-MM-DD strings in any order; duplicates count once. The fixed-width
// format makes lexicographic order chronological, so the dates are sorted newest
// first and matched against today, yesterday, and so on until the first gap. A
// habit not completed today has a streak of 0. Dates after today are ignored.
func CalculateStreak(dates []string, today string) int {
	sorted := make([]string, 0, len(dates))
	for _, d := range dates {
		if d <= today {
			sorted = append(sorted, d)
		}
	}
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	slices.Reverse(sorted)

	streak := 0
	expected := today
	for _, d := range sorted {
		if d != expected {
			break
		}
		streak++
		prev, err := utils.AddDays(expected, -1)
		if err != nil {
			break
		}
		expected = prev
	}
	return streak
}
