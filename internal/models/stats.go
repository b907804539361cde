package models

// DayStats summarizes completions across all habits for one calendar day
type DayStats struct {
	Date           string `json:"date"`
	Completed      int    `json:"completed"`
	Total          int    `json:"total"`
	CompletionRate int    `json:"completionRate"`
}

// WeekStats holds seven consecutive days of stats
type WeekStats struct {
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	Days      []DayStats `json:"days"`
}

// TimeGroup is the set of habits sharing a time preference
type TimeGroup struct {
	TimePreference TimePreference `json:"timePreference"`
	Habits         []HabitStatus  `json:"habits"`
	Completed      int            `json:"completed"`
}

// TodaySummary is the aggregate shown on the today view
type TodaySummary struct {
	DayStats
	TotalStreak int         `json:"totalStreak"`
	Groups      []TimeGroup `json:"groups"`
}
