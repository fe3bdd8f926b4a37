package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readflow_backend/internal/model"
	"readflow_backend/internal/store"
	"readflow_backend/internal/util"
)

func newTestTracker(t *testing.T) (*TrackerService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	s := NewTrackerService(st, nil)
	s.now = func() time.Time { return testDay }
	return s, st
}

func TestNewTrackerServiceSeedsDefaults(t *testing.T) {
	s, _ := newTestTracker(t)

	assert.Equal(t, model.DefaultStats(), s.Stats())
	assert.Equal(t, model.DefaultGoals(), s.Goals())
	assert.Empty(t, s.Sessions())
	assert.Empty(t, s.Activities())

	badges := s.Badges()
	require.Len(t, badges, 3)
	for _, b := range badges {
		assert.False(t, b.Unlocked, b.Name)
	}
}

func TestNewTrackerServiceLoadsPersistedState(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(store.SlotStats, model.UserStats{Level: 1, XP: 700, CurrentWPM: 310, TotalPagesRead: 50}))

	s := NewTrackerService(st, nil)
	assert.Equal(t, 700, s.Stats().XP)

	// badge flags are rebuilt from the loaded stats
	badges := s.Badges()
	assert.True(t, badges[1].Unlocked, "Speed Demon")
	assert.False(t, badges[2].Unlocked, "Bookworm")
}

func TestSaveSessionSpeedTest(t *testing.T) {
	s, st := newTestTracker(t)
	before := s.Stats()

	session, stats := s.SaveSession(SessionInput{
		DurationSeconds: 60,
		WPM:             250,
		Type:            model.SessionSpeedTest,
		PassageTitle:    "The Art of Reading",
		Subject:         "history",
	})

	assert.Equal(t, testDay.Format(time.RFC3339), session.Date)
	assert.NotEmpty(t, session.ID)

	assert.Equal(t, before.XP+100, stats.XP)
	assert.Equal(t, before.Coins+20, stats.Coins)
	assert.Equal(t, before.TotalTimeReadMinutes+1, stats.TotalTimeReadMinutes)
	assert.Equal(t, 250, stats.CurrentWPM)
	assert.Equal(t, 1, stats.Level, "level never advances")

	// both touched slots were mirrored to the store
	var persisted []model.ReadingSession
	ok, err := st.Get(store.SlotSessions, &persisted)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, persisted, 1)
	assert.Equal(t, session, persisted[0])

	var persistedStats model.UserStats
	ok, err = st.Get(store.SlotStats, &persistedStats)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, stats, persistedStats)
}

func TestSaveSessionByType(t *testing.T) {
	tests := []struct {
		name        string
		in          SessionInput
		wantRead    int
		wantWritten int
		wantWPM     int
	}{
		{
			name:     "manual log counts reading time, keeps wpm",
			in:       SessionInput{DurationSeconds: 1800, Pages: 20, Type: model.SessionManualLog},
			wantRead: 30,
		},
		{
			name:        "writing counts written time only",
			in:          SessionInput{DurationSeconds: 600, Type: model.SessionWriting},
			wantWritten: 10,
		},
		{
			name:     "speed test sets current wpm",
			in:       SessionInput{DurationSeconds: 90, WPM: 180, Type: model.SessionSpeedTest},
			wantRead: 2,
			wantWPM:  180,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestTracker(t)
			_, stats := s.SaveSession(tt.in)
			assert.Equal(t, tt.wantRead, stats.TotalTimeReadMinutes)
			assert.Equal(t, tt.wantWritten, stats.TotalTimeWrittenMinutes)
			assert.Equal(t, tt.wantWPM, stats.CurrentWPM)
			assert.Equal(t, tt.in.Pages, stats.TotalPagesRead)
		})
	}
}

func TestSessionsNewestFirst(t *testing.T) {
	s, _ := newTestTracker(t)
	s.SaveSession(SessionInput{DurationSeconds: 60, Type: model.SessionManualLog, Subject: "first"})
	s.SaveSession(SessionInput{DurationSeconds: 60, Type: model.SessionManualLog, Subject: "second"})

	out := s.Sessions()
	require.Len(t, out, 2)
	assert.Equal(t, "second", out[0].Subject)
	assert.Equal(t, "first", out[1].Subject)
}

func TestRecentSessionsCapped(t *testing.T) {
	s, _ := newTestTracker(t)
	for i := 0; i < 12; i++ {
		s.SaveSession(SessionInput{DurationSeconds: 60, Type: model.SessionManualLog})
	}
	assert.Len(t, s.RecentSessions(10), 10)
	assert.Len(t, s.RecentSessions(20), 12)
}

func TestAddGoalLogsCreation(t *testing.T) {
	s, _ := newTestTracker(t)

	goal := s.AddGoal(GoalInput{
		Title:  "Read 50 Pages",
		Target: 50,
		Unit:   model.UnitPages,
		Period: model.PeriodWeekly,
	})
	assert.NotEmpty(t, goal.ID)
	assert.False(t, goal.Completed)

	acts := s.Activities()
	require.Len(t, acts, 1)
	assert.Equal(t, model.ActivityGoal, acts[0].Type)
	assert.Equal(t, model.SubtypeCreation, acts[0].Subtype)
	assert.Equal(t, "New goal set: Read 50 Pages", acts[0].Description)
}

func TestToggleGoalRoundTrip(t *testing.T) {
	s, _ := newTestTracker(t)
	goals := s.Goals()
	require.NotEmpty(t, goals)
	id := goals[0].ID

	g, err := s.ToggleGoal(id)
	require.NoError(t, err)
	assert.True(t, g.Completed)
	assert.Equal(t, 50, s.Stats().XP)
	assert.Equal(t, 10, s.Stats().Coins)

	acts := s.Activities()
	require.Len(t, acts, 1)
	assert.Equal(t, model.SubtypeCompletion, acts[0].Subtype)
	assert.Equal(t, "Completed goal: "+goals[0].Title, acts[0].Description)

	g, err = s.ToggleGoal(id)
	require.NoError(t, err)
	assert.False(t, g.Completed)
	assert.Equal(t, 0, s.Stats().XP)
	assert.Equal(t, 0, s.Stats().Coins)

	// un-completing logs nothing
	assert.Len(t, s.Activities(), 1)
}

func TestToggleGoalClampsAtZero(t *testing.T) {
	s, _ := newTestTracker(t)
	id := s.Goals()[0].ID

	_, err := s.ToggleGoal(id)
	require.NoError(t, err)

	// burn the reward so the refund would go negative
	s.mu.Lock()
	s.stats.XP = 20
	s.stats.Coins = 5
	s.mu.Unlock()

	_, err = s.ToggleGoal(id)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Stats().XP)
	assert.Equal(t, 0, s.Stats().Coins)
}

func TestToggleGoalUnknownID(t *testing.T) {
	s, _ := newTestTracker(t)
	_, err := s.ToggleGoal("missing")
	assert.ErrorIs(t, err, util.ErrGoalNotFound)
}

func TestDeleteGoal(t *testing.T) {
	s, _ := newTestTracker(t)
	id := s.Goals()[0].ID

	s.DeleteGoal(id)
	for _, g := range s.Goals() {
		assert.NotEqual(t, id, g.ID)
	}

	// unknown id is a no-op
	before := len(s.Goals())
	s.DeleteGoal("missing")
	assert.Len(t, s.Goals(), before)
}

func TestUpdateWPMUnlocksBadge(t *testing.T) {
	s, _ := newTestTracker(t)

	stats := s.UpdateWPM(305)
	assert.Equal(t, 305, stats.CurrentWPM)

	badges := s.Badges()
	assert.True(t, badges[1].Unlocked, "Speed Demon")
}

func TestLogActivityPrepends(t *testing.T) {
	s, _ := newTestTracker(t)

	s.LogActivity(model.ActivityItem{Type: model.ActivitySyllabus, Subtype: model.SubtypeProgress, Description: "Started: Jwara"})
	s.LogActivity(model.ActivityItem{Type: model.ActivitySyllabus, Subtype: model.SubtypeCompletion, Description: "Completed: Jwara"})

	acts := s.Activities()
	require.Len(t, acts, 2)
	assert.Equal(t, "Completed: Jwara", acts[0].Description)
	assert.NotEmpty(t, acts[0].ID)
	assert.NotEmpty(t, acts[0].Date)
}
