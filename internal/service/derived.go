package service

import (
	"math"
	"strings"
	"time"

	"readflow_backend/internal/model"
)

// TodaysStats reduces the session log to the current calendar date.
// Writing sessions contribute pages but never reading time; the average
// WPM ignores sessions that were not measured (wpm == 0).
func TodaysStats(sessions []model.ReadingSession, today time.Time) model.TodayStats {
	prefix := today.Format("2006-01-02")

	var out model.TodayStats
	var wpmSum, wpmCount int
	for _, s := range sessions {
		if !strings.HasPrefix(s.Date, prefix) {
			continue
		}
		if s.Type != model.SessionWriting {
			out.Time += roundMinutes(s.DurationSeconds)
		}
		out.Pages += s.Pages
		if s.WPM > 0 {
			wpmSum += s.WPM
			wpmCount++
		}
	}
	if wpmCount > 0 {
		out.WPM = int(math.Round(float64(wpmSum) / float64(wpmCount)))
	}
	return out
}

// sweepBadges unlocks every still-locked badge whose condition now holds.
// Unlocks are permanent; the sweep never re-locks.
func sweepBadges(badges []model.Badge, stats model.UserStats) bool {
	changed := false
	for i := range badges {
		if !badges[i].Unlocked && badges[i].Condition.Met(stats) {
			badges[i].Unlocked = true
			changed = true
		}
	}
	return changed
}

func roundMinutes(seconds int) int {
	return int(math.Round(float64(seconds) / 60.0))
}
