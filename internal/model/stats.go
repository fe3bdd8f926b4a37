package model

// UserStats is the single per-installation stats record. Streaks are stored
// but not auto-maintained; level is never advanced by any mutation.
type UserStats struct {
	DailyStreak             int `json:"dailyStreak"`
	WeeklyStreak            int `json:"weeklyStreak"`
	MonthlyStreak           int `json:"monthlyStreak"`
	YearlyStreak            int `json:"yearlyStreak"`
	TotalTimeReadMinutes    int `json:"totalTimeReadMinutes"`
	TotalTimeWrittenMinutes int `json:"totalTimeWrittenMinutes"`
	TotalPagesRead          int `json:"totalPagesRead"`
	CurrentWPM              int `json:"currentWPM"`
	Coins                   int `json:"coins"`
	XP                      int `json:"xp"`
	Level                   int `json:"level"`
}

func DefaultStats() UserStats {
	return UserStats{Level: 1}
}

// NextLevelXP is the displayed threshold for the next level. Nothing in the
// tracker crosses it automatically.
func (s UserStats) NextLevelXP() int {
	return s.Level * 1000
}

// TodayStats is derived from the session log for the current calendar date.
type TodayStats struct {
	Time  int `json:"time"`
	Pages int `json:"pages"`
	WPM   int `json:"wpm"`
}
