package service

import (
	"sync"
	"time"

	"readflow_backend/internal/model"
	"readflow_backend/internal/store"
	"readflow_backend/internal/util"
	"readflow_backend/pkg/monitoring"

	"go.uber.org/zap"
)

type TimerMode string

const (
	ModeReading TimerMode = "reading"
	ModeWriting TimerMode = "writing"
)

// TrackerService owns the application state: stats, goals, the session and
// activity logs, and badge unlock flags. Every mutation happens under the
// lock and mirrors the touched slots to the store before returning. Store
// writes are per-slot and not transactional across slots.
type TrackerService struct {
	mu    sync.Mutex
	store store.Store
	log   *zap.Logger
	now   func() time.Time

	stats      model.UserStats
	goals      []model.Goal
	sessions   []model.ReadingSession
	activities []model.ActivityItem
	badges     []model.Badge

	timer timerState
}

type timerState struct {
	active  bool
	mode    TimerMode
	seconds int
	stop    chan struct{}
}

// SessionInput is the caller-supplied part of a session; id and date are
// assigned at save time.
type SessionInput struct {
	DurationSeconds int               `json:"durationSeconds" binding:"min=0"`
	WPM             int               `json:"wpm" binding:"min=0"`
	Pages           int               `json:"pages" binding:"min=0"`
	Type            model.SessionType `json:"type" binding:"required,oneof=speed-test manual-log writing"`
	PassageTitle    string            `json:"passageTitle"`
	Subject         string            `json:"subject"`
}

type GoalInput struct {
	Title        string           `json:"title" binding:"required"`
	Target       int              `json:"target" binding:"required,gt=0"`
	Unit         model.GoalUnit   `json:"unit" binding:"required,oneof=minutes pages"`
	Period       model.GoalPeriod `json:"period" binding:"required,oneof=daily weekly monthly"`
	ReminderTime string           `json:"reminderTime"`
	Subject      string           `json:"subject"`
}

func NewTrackerService(st store.Store, log *zap.Logger) *TrackerService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &TrackerService{
		store: st,
		log:   log,
		now:   time.Now,
	}
	s.load()
	return s
}

// load pulls each slot from the store, falling back to the built-in
// defaults for absent or malformed slots. Badges are not persisted; their
// unlock flags are recomputed from the loaded stats.
func (s *TrackerService) load() {
	if ok, err := s.store.Get(store.SlotStats, &s.stats); err != nil {
		s.log.Error("load stats slot", zap.Error(err))
	} else if !ok {
		s.stats = model.DefaultStats()
	}
	if ok, err := s.store.Get(store.SlotTasks, &s.goals); err != nil {
		s.log.Error("load tasks slot", zap.Error(err))
	} else if !ok {
		s.goals = model.DefaultGoals()
	}
	if ok, err := s.store.Get(store.SlotSessions, &s.sessions); err != nil {
		s.log.Error("load sessions slot", zap.Error(err))
	} else if !ok {
		s.sessions = nil
	}
	if ok, err := s.store.Get(store.SlotActivities, &s.activities); err != nil {
		s.log.Error("load activities slot", zap.Error(err))
	} else if !ok {
		s.activities = nil
	}

	s.badges = model.DefaultBadges()
	sweepBadges(s.badges, s.stats)
}

func (s *TrackerService) persist(slot string, value interface{}) {
	if err := s.store.Set(slot, value); err != nil {
		s.log.Error("persist slot", zap.String("slot", slot), zap.Error(err))
	}
}

// Stats returns the current stats snapshot.
func (s *TrackerService) Stats() model.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// TodayStats derives today's totals from the session log.
func (s *TrackerService) TodayStats() model.TodayStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TodaysStats(s.sessions, s.now())
}

// Sessions returns the log newest-first.
func (s *TrackerService) Sessions() []model.ReadingSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ReadingSession, len(s.sessions))
	for i, sess := range s.sessions {
		out[len(s.sessions)-1-i] = sess
	}
	return out
}

// RecentSessions returns up to n of the latest sessions, oldest first,
// for the insight gateway.
func (s *TrackerService) RecentSessions(n int) []model.ReadingSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	start := len(s.sessions) - n
	if start < 0 {
		start = 0
	}
	out := make([]model.ReadingSession, len(s.sessions)-start)
	copy(out, s.sessions[start:])
	return out
}

func (s *TrackerService) Activities() []model.ActivityItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ActivityItem, len(s.activities))
	copy(out, s.activities)
	return out
}

func (s *TrackerService) Goals() []model.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Badges runs an unlock sweep against the current stats and returns the
// badge list. The sweep is idempotent.
func (s *TrackerService) Badges() []model.Badge {
	s.mu.Lock()
	defer s.mu.Unlock()
	sweepBadges(s.badges, s.stats)
	out := make([]model.Badge, len(s.badges))
	copy(out, s.badges)
	return out
}

// SaveSession appends to the session log and applies the stat deltas:
// +100 XP and +20 coins regardless of type, read/written minutes by type,
// pages, and currentWPM only for speed tests. Session saves are not
// activity-logged.
func (s *TrackerService) SaveSession(in SessionInput) (model.ReadingSession, model.UserStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveSessionLocked(in)
}

func (s *TrackerService) saveSessionLocked(in SessionInput) (model.ReadingSession, model.UserStats) {
	now := s.now()
	session := model.ReadingSession{
		ID:              model.NewID(now),
		Date:            now.Format(time.RFC3339),
		DurationSeconds: in.DurationSeconds,
		WPM:             in.WPM,
		Pages:           in.Pages,
		Type:            in.Type,
		PassageTitle:    in.PassageTitle,
		Subject:         in.Subject,
	}
	s.sessions = append(s.sessions, session)

	minutes := roundMinutes(in.DurationSeconds)
	if in.Type == model.SessionSpeedTest {
		s.stats.CurrentWPM = in.WPM
	}
	if in.Type == model.SessionWriting {
		s.stats.TotalTimeWrittenMinutes += minutes
	} else {
		s.stats.TotalTimeReadMinutes += minutes
	}
	s.stats.TotalPagesRead += in.Pages
	s.stats.XP += 100
	s.stats.Coins += 20

	sweepBadges(s.badges, s.stats)
	monitoring.SessionCounter.WithLabelValues(string(in.Type)).Inc()

	s.persist(store.SlotSessions, s.sessions)
	s.persist(store.SlotStats, s.stats)

	return session, s.stats
}

// AddGoal appends a goal and logs a goal/creation activity.
func (s *TrackerService) AddGoal(in GoalInput) model.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	goal := model.Goal{
		ID:           model.NewID(now),
		Title:        in.Title,
		Target:       in.Target,
		Unit:         in.Unit,
		Period:       in.Period,
		ReminderTime: in.ReminderTime,
		Subject:      in.Subject,
	}
	s.goals = append(s.goals, goal)
	s.persist(store.SlotTasks, s.goals)

	s.logActivityLocked(model.ActivityItem{
		Type:        model.ActivityGoal,
		Subtype:     model.SubtypeCreation,
		Description: "New goal set: " + goal.Title,
		Subject:     goal.Subject,
	})
	return goal
}

// ToggleGoal flips completion. Completing awards +50 XP / +10 coins and
// logs a goal/completion activity; un-completing takes them back, clamped
// at zero, and logs nothing.
func (s *TrackerService) ToggleGoal(id string) (model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.goals {
		if s.goals[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Goal{}, util.ErrGoalNotFound
	}

	g := &s.goals[idx]
	g.Completed = !g.Completed
	if g.Completed {
		s.stats.XP += 50
		s.stats.Coins += 10
		s.logActivityLocked(model.ActivityItem{
			Type:        model.ActivityGoal,
			Subtype:     model.SubtypeCompletion,
			Description: "Completed goal: " + g.Title,
			Subject:     g.Subject,
		})
	} else {
		s.stats.XP = max(0, s.stats.XP-50)
		s.stats.Coins = max(0, s.stats.Coins-10)
	}

	sweepBadges(s.badges, s.stats)
	s.persist(store.SlotTasks, s.goals)
	s.persist(store.SlotStats, s.stats)
	return *g, nil
}

// DeleteGoal removes unconditionally; deleting an unknown id is a no-op.
func (s *TrackerService) DeleteGoal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.goals[:0]
	for _, g := range s.goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	s.goals = kept
	s.persist(store.SlotTasks, s.goals)
}

// UpdateWPM sets the manually measured reading speed.
func (s *TrackerService) UpdateWPM(wpm int) model.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.CurrentWPM = wpm
	sweepBadges(s.badges, s.stats)
	s.persist(store.SlotStats, s.stats)
	return s.stats
}

// LogActivity prepends an item to the activity log (newest first) and
// persists it. The syllabus service logs through here so all activity
// lives in the one slot.
func (s *TrackerService) LogActivity(item model.ActivityItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logActivityLocked(item)
}

func (s *TrackerService) logActivityLocked(item model.ActivityItem) {
	now := s.now()
	if item.ID == "" {
		item.ID = model.NewID(now)
	}
	if item.Date == "" {
		item.Date = now.Format(time.RFC3339)
	}
	s.activities = append([]model.ActivityItem{item}, s.activities...)
	s.persist(store.SlotActivities, s.activities)
}
