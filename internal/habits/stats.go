package habits

import "github.com/julianstephens/habitkit/internal/models"

// NewDayStats builds the stats for one day. The rate is completed/total as a
// percentage rounded half up, and 0 when there are no habits.
func NewDayStats(date string, completed, total int) models.DayStats {
	return models.DayStats{
		Date:           date,
		Completed:      completed,
		Total:          total,
		CompletionRate: CompletionRate(completed, total),
	}
}

// CompletionRate returns round(completed/total*100) with halves rounded up.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*completed + total) / (2 * total)
}
