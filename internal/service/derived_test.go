package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"readflow_backend/internal/model"
)

var testDay = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func sessionOn(day time.Time, seconds, wpm, pages int, typ model.SessionType) model.ReadingSession {
	return model.ReadingSession{
		ID:              model.NewID(day),
		Date:            day.Format(time.RFC3339),
		DurationSeconds: seconds,
		WPM:             wpm,
		Pages:           pages,
		Type:            typ,
	}
}

func TestTodaysStats(t *testing.T) {
	yesterday := testDay.AddDate(0, 0, -1)

	tests := []struct {
		name     string
		sessions []model.ReadingSession
		want     model.TodayStats
	}{
		{
			name: "empty log",
			want: model.TodayStats{},
		},
		{
			name: "thirty minute manual log",
			sessions: []model.ReadingSession{
				sessionOn(testDay, 1800, 0, 20, model.SessionManualLog),
			},
			want: model.TodayStats{Time: 30, Pages: 20, WPM: 0},
		},
		{
			name: "writing time excluded, pages counted",
			sessions: []model.ReadingSession{
				sessionOn(testDay, 600, 0, 0, model.SessionManualLog),
				sessionOn(testDay, 1200, 0, 5, model.SessionWriting),
			},
			want: model.TodayStats{Time: 10, Pages: 5, WPM: 0},
		},
		{
			name: "wpm averages measured sessions only",
			sessions: []model.ReadingSession{
				sessionOn(testDay, 60, 200, 0, model.SessionSpeedTest),
				sessionOn(testDay, 60, 301, 0, model.SessionSpeedTest),
				sessionOn(testDay, 1800, 0, 10, model.SessionManualLog),
			},
			want: model.TodayStats{Time: 32, Pages: 10, WPM: 251},
		},
		{
			name: "other days ignored",
			sessions: []model.ReadingSession{
				sessionOn(yesterday, 3600, 250, 40, model.SessionSpeedTest),
				sessionOn(testDay, 90, 0, 0, model.SessionManualLog),
			},
			want: model.TodayStats{Time: 2, Pages: 0, WPM: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TodaysStats(tt.sessions, testDay)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSweepBadgesMonotonic(t *testing.T) {
	badges := model.DefaultBadges()

	changed := sweepBadges(badges, model.UserStats{CurrentWPM: 320})
	assert.True(t, changed)
	assert.True(t, badges[1].Unlocked)

	// dropping back below the threshold never re-locks
	changed = sweepBadges(badges, model.UserStats{CurrentWPM: 100})
	assert.False(t, changed)
	assert.True(t, badges[1].Unlocked)

	// already-unlocked badges do not report a change
	changed = sweepBadges(badges, model.UserStats{CurrentWPM: 320})
	assert.False(t, changed)
}

func TestRoundMinutes(t *testing.T) {
	tests := []struct {
		seconds int
		want    int
	}{
		{0, 0},
		{29, 0},
		{30, 1},
		{90, 2},
		{125, 2},
		{1800, 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundMinutes(tt.seconds), "seconds=%d", tt.seconds)
	}
}
