package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readflow_backend/internal/model"
	"readflow_backend/internal/util"
)

func setElapsed(s *TrackerService, seconds int) {
	s.mu.Lock()
	s.timer.seconds = seconds
	s.mu.Unlock()
}

func TestStopTimerWithoutStart(t *testing.T) {
	s, _ := newTestTracker(t)
	_, err := s.StopTimer()
	assert.ErrorIs(t, err, util.ErrTimerNotRunning)
}

func TestStopTimerZeroSecondsRecordsNothing(t *testing.T) {
	s, _ := newTestTracker(t)
	s.StartTimer(ModeReading)

	session, err := s.StopTimer()
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Empty(t, s.Sessions())
	assert.False(t, s.Timer().Active)
}

func TestStopTimerReadingFeedsMinuteGoals(t *testing.T) {
	s, _ := newTestTracker(t)
	s.StartTimer(ModeReading)
	setElapsed(s, 125)

	session, err := s.StopTimer()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, model.SessionManualLog, session.Type)
	assert.Equal(t, 125, session.DurationSeconds)

	// 125s -> 2 whole minutes on every minutes-unit goal, any period
	for _, g := range s.Goals() {
		if g.Unit == model.UnitMinutes {
			assert.Equal(t, 2, g.Current, g.Title)
		} else {
			assert.Equal(t, 0, g.Current, g.Title)
		}
	}

	// the session itself still pays the flat reward
	assert.Equal(t, 100, s.Stats().XP)
	assert.Equal(t, 20, s.Stats().Coins)
}

func TestStopTimerWritingSession(t *testing.T) {
	s, _ := newTestTracker(t)
	s.StartTimer(ModeWriting)
	setElapsed(s, 600)

	session, err := s.StopTimer()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, model.SessionWriting, session.Type)
	assert.Equal(t, 10, s.Stats().TotalTimeWrittenMinutes)
	assert.Equal(t, 0, s.Stats().TotalTimeReadMinutes)

	// writing never feeds minute goals
	for _, g := range s.Goals() {
		assert.Equal(t, 0, g.Current, g.Title)
	}
}

func TestStartTimerRestartResetsCounter(t *testing.T) {
	s, _ := newTestTracker(t)
	s.StartTimer(ModeReading)
	setElapsed(s, 90)

	status := s.StartTimer(ModeWriting)
	assert.True(t, status.Active)
	assert.Equal(t, ModeWriting, status.Mode)
	assert.Equal(t, 0, s.Timer().Seconds)

	_, err := s.StopTimer()
	require.NoError(t, err)
}

func TestTimerStatus(t *testing.T) {
	s, _ := newTestTracker(t)
	assert.False(t, s.Timer().Active)

	s.StartTimer(ModeReading)
	setElapsed(s, 42)

	status := s.Timer()
	assert.True(t, status.Active)
	assert.Equal(t, ModeReading, status.Mode)
	assert.Equal(t, 42, status.Seconds)

	_, err := s.StopTimer()
	require.NoError(t, err)
	assert.False(t, s.Timer().Active)
}
