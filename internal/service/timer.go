package service

import (
	"time"

	"readflow_backend/internal/model"
	"readflow_backend/internal/store"
	"readflow_backend/internal/util"
)

// TimerStatus is the live view of the active session stopwatch.
type TimerStatus struct {
	Active  bool      `json:"active"`
	Mode    TimerMode `json:"mode,omitempty"`
	Seconds int       `json:"seconds"`
}

// StartTimer begins a reading or writing session. Starting while a timer
// is already running discards the old counter and starts over.
func (s *TrackerService) StartTimer(mode TimerMode) TimerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTickerLocked()
	s.timer = timerState{
		active: true,
		mode:   mode,
		stop:   make(chan struct{}),
	}
	go s.tick(s.timer.stop)
	return TimerStatus{Active: true, Mode: mode}
}

// tick increments the elapsed counter once per second until stopped.
func (s *TrackerService) tick(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.timer.active {
				s.timer.seconds++
			}
			s.mu.Unlock()
		}
	}
}

func (s *TrackerService) cancelTickerLocked() {
	if s.timer.stop != nil {
		close(s.timer.stop)
		s.timer.stop = nil
	}
	s.timer.active = false
}

// Timer reports the current stopwatch state.
func (s *TrackerService) Timer() TimerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TimerStatus{Active: s.timer.active, Mode: s.timer.mode, Seconds: s.timer.seconds}
}

// StopTimer ends the active session. With zero elapsed seconds nothing is
// recorded. Otherwise the elapsed time becomes a manual-log (or writing)
// session, and in reading mode every minutes-unit goal gains the elapsed
// whole minutes regardless of its period.
func (s *TrackerService) StopTimer() (*model.ReadingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer.stop == nil && !s.timer.active {
		return nil, util.ErrTimerNotRunning
	}

	mode := s.timer.mode
	seconds := s.timer.seconds
	s.cancelTickerLocked()
	s.timer = timerState{}

	if seconds == 0 {
		return nil, nil
	}

	sessionType := model.SessionManualLog
	if mode == ModeWriting {
		sessionType = model.SessionWriting
	}
	session, _ := s.saveSessionLocked(SessionInput{
		DurationSeconds: seconds,
		Type:            sessionType,
	})

	if mode == ModeReading {
		minutes := seconds / 60
		if minutes > 0 {
			for i := range s.goals {
				if s.goals[i].Unit == model.UnitMinutes {
					s.goals[i].Current += minutes
				}
			}
			s.persist(store.SlotTasks, s.goals)
		}
	}

	return &session, nil
}
