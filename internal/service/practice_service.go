package service

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"readflow_backend/internal/model"
	"readflow_backend/internal/util"
)

// AttemptState tracks a speed-test attempt through its lifecycle.
type AttemptState string

const (
	AttemptReady    AttemptState = "ready"
	AttemptReading  AttemptState = "reading"
	AttemptFinished AttemptState = "finished"
)

// PassageGenerator produces a reading passage for a topic. Implementations
// must not fail; on gateway errors they return a fallback passage.
type PassageGenerator interface {
	GeneratePassage(ctx context.Context, topic string) model.ReadingPassage
}

// SessionRecorder persists a finished session and returns the updated stats.
type SessionRecorder interface {
	SaveSession(in SessionInput) (model.ReadingSession, model.UserStats)
}

// Attempt is a server-side speed-test in progress.
type Attempt struct {
	ID        string               `json:"id"`
	Topic     string               `json:"topic"`
	Passage   model.ReadingPassage `json:"passage"`
	State     AttemptState         `json:"state"`
	StartedAt time.Time            `json:"-"`
	Elapsed   int                  `json:"elapsedSeconds,omitempty"`
	WPM       int                  `json:"wpm,omitempty"`
}

// ManualLogInput is a self-reported reading session.
type ManualLogInput struct {
	Minutes int    `json:"minutes" binding:"required,gt=0"`
	Pages   int    `json:"pages" binding:"required,gt=0"`
	Subject string `json:"subject"`
}

// PracticeService orchestrates speed-test attempts and manual session logs.
type PracticeService struct {
	mu       sync.Mutex
	log      *zap.Logger
	passages PassageGenerator
	recorder SessionRecorder
	now      func() time.Time

	attempts map[string]*Attempt
}

func NewPracticeService(passages PassageGenerator, recorder SessionRecorder, log *zap.Logger) *PracticeService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PracticeService{
		log:      log,
		passages: passages,
		recorder: recorder,
		now:      time.Now,
		attempts: make(map[string]*Attempt),
	}
}

// Start fetches a passage for the topic and opens a ready attempt.
func (s *PracticeService) Start(ctx context.Context, topic string) *Attempt {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = "the benefits of daily reading"
	}
	passage := s.passages.GeneratePassage(ctx, topic)

	s.mu.Lock()
	defer s.mu.Unlock()
	a := &Attempt{
		ID:      model.GenerateUUID(),
		Topic:   topic,
		Passage: passage,
		State:   AttemptReady,
	}
	s.attempts[a.ID] = a
	s.log.Debug("practice attempt opened",
		zap.String("id", a.ID), zap.String("topic", topic), zap.Int("words", passage.WordCount))
	return a
}

// Begin starts the reading clock on a ready attempt.
func (s *PracticeService) Begin(id string) (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attempts[id]
	if !ok {
		return nil, util.ErrAttemptNotFound
	}
	if a.State != AttemptReady {
		return nil, util.ErrAttemptNotReady
	}
	a.State = AttemptReading
	a.StartedAt = s.now()
	return a, nil
}

// Finish stops the clock and computes the words-per-minute result.
// Elapsed time is floored at one second so the rate is always defined.
func (s *PracticeService) Finish(id string) (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attempts[id]
	if !ok {
		return nil, util.ErrAttemptNotFound
	}
	if a.State != AttemptReading {
		return nil, util.ErrAttemptNotReady
	}
	elapsed := int(s.now().Sub(a.StartedAt) / time.Second)
	if elapsed < 1 {
		elapsed = 1
	}
	a.State = AttemptFinished
	a.Elapsed = elapsed
	a.WPM = int(math.Round(float64(a.Passage.WordCount) / float64(elapsed) * 60))
	return a, nil
}

// Save persists the finished attempt as a speed-test session and discards it.
func (s *PracticeService) Save(id string) (model.ReadingSession, model.UserStats, error) {
	s.mu.Lock()
	a, ok := s.attempts[id]
	if !ok {
		s.mu.Unlock()
		return model.ReadingSession{}, model.UserStats{}, util.ErrAttemptNotFound
	}
	if a.State != AttemptFinished {
		s.mu.Unlock()
		return model.ReadingSession{}, model.UserStats{}, util.ErrAttemptNotReady
	}
	delete(s.attempts, id)
	s.mu.Unlock()

	session, stats := s.recorder.SaveSession(SessionInput{
		DurationSeconds: a.Elapsed,
		WPM:             a.WPM,
		Type:            model.SessionSpeedTest,
		PassageTitle:    a.Passage.Title,
		Subject:         a.Topic,
	})
	return session, stats, nil
}

// Discard drops an attempt without recording anything.
func (s *PracticeService) Discard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, id)
}

// ManualLog records a self-reported session, estimating word volume at
// 250 words per page.
func (s *PracticeService) ManualLog(in ManualLogInput) (model.ReadingSession, model.UserStats, error) {
	if in.Minutes <= 0 || in.Pages <= 0 {
		return model.ReadingSession{}, model.UserStats{}, util.ErrInvalidInput
	}
	words := in.Pages * 250
	wpm := int(math.Round(float64(words) / float64(in.Minutes)))
	session, stats := s.recorder.SaveSession(SessionInput{
		DurationSeconds: in.Minutes * 60,
		WPM:             wpm,
		Pages:           in.Pages,
		Type:            model.SessionManualLog,
		Subject:         in.Subject,
	})
	return session, stats, nil
}
