package service

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"readflow_backend/internal/model"
	"readflow_backend/internal/store"
	"readflow_backend/internal/util"

	"go.uber.org/zap"
)

// Chapters completed per subject that count as hitting the weekly bar.
// Counts all-time completions, not a calendar window.
const weeklyChapterTarget = 3

// ActivityLogger receives goal/syllabus events for the shared activity log.
type ActivityLogger interface {
	LogActivity(item model.ActivityItem)
}

// SyllabusService owns the curriculum tree and the schedule flags. All of
// it persists as the single syllabus-state slot.
type SyllabusService struct {
	mu       sync.Mutex
	store    store.Store
	log      *zap.Logger
	activity ActivityLogger
	now      func() time.Time

	state model.SyllabusState
}

func NewSyllabusService(st store.Store, activity ActivityLogger, log *zap.Logger) *SyllabusService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &SyllabusService{
		store:    st,
		log:      log,
		activity: activity,
		now:      time.Now,
	}
	if ok, err := s.store.Get(store.SlotSyllabus, &s.state); err != nil {
		s.log.Error("load syllabus slot", zap.Error(err))
	} else if !ok || len(s.state.Subjects) == 0 {
		s.state = model.DefaultSyllabus()
	}
	// a stored override pointing outside the subject list degrades to auto
	if idx := s.state.ManualSubjectIndex; idx != nil && (*idx < 0 || *idx >= len(s.state.Subjects)) {
		s.state.ManualSubjectIndex = nil
	}
	return s
}

func (s *SyllabusService) persist() {
	if err := s.store.Set(store.SlotSyllabus, s.state); err != nil {
		s.log.Error("persist syllabus slot", zap.Error(err))
	}
}

// State returns a deep copy of the syllabus tree and flags.
func (s *SyllabusService) State() model.SyllabusState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyStateLocked()
}

func (s *SyllabusService) copyStateLocked() model.SyllabusState {
	out := model.SyllabusState{
		Subjects:  make([]model.Subject, len(s.state.Subjects)),
		BufferDay: s.state.BufferDay,
	}
	for i, sub := range s.state.Subjects {
		chapters := make([]model.Chapter, len(sub.Chapters))
		copy(chapters, sub.Chapters)
		out.Subjects[i] = model.Subject{Name: sub.Name, Color: sub.Color, Chapters: chapters}
	}
	if s.state.ManualSubjectIndex != nil {
		idx := *s.state.ManualSubjectIndex
		out.ManualSubjectIndex = &idx
	}
	return out
}

// ToggleChapter advances the chapter's 3-state cycle:
// not-started -> in-progress -> completed -> not-started. The first two
// transitions log activities; clearing a completed chapter logs nothing.
func (s *SyllabusService) ToggleChapter(subjectIndex int, chapterID string) (model.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if subjectIndex < 0 || subjectIndex >= len(s.state.Subjects) {
		return model.Chapter{}, util.ErrSubjectNotFound
	}
	subject := &s.state.Subjects[subjectIndex]

	var chapter *model.Chapter
	for i := range subject.Chapters {
		if subject.Chapters[i].ID == chapterID {
			chapter = &subject.Chapters[i]
			break
		}
	}
	if chapter == nil {
		return model.Chapter{}, util.ErrChapterNotFound
	}

	switch {
	case !chapter.IsCompleted && !chapter.IsInProgress:
		chapter.IsInProgress = true
		s.activity.LogActivity(model.ActivityItem{
			Type:        model.ActivitySyllabus,
			Subtype:     model.SubtypeProgress,
			Description: "Started: " + chapter.Title,
			Subject:     subject.Name,
		})
	case chapter.IsInProgress:
		chapter.IsInProgress = false
		chapter.IsCompleted = true
		s.activity.LogActivity(model.ActivityItem{
			Type:        model.ActivitySyllabus,
			Subtype:     model.SubtypeCompletion,
			Description: "Completed: " + chapter.Title,
			Subject:     subject.Name,
		})
	default:
		chapter.IsCompleted = false
		chapter.IsInProgress = false
	}

	s.persist()
	return *chapter, nil
}

// AddChapter appends a not-started chapter with a generated id.
func (s *SyllabusService) AddChapter(subjectIndex int, title string) (model.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if subjectIndex < 0 || subjectIndex >= len(s.state.Subjects) {
		return model.Chapter{}, util.ErrSubjectNotFound
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Chapter{}, util.ErrInvalidInput
	}

	chapter := model.Chapter{
		ID:    fmt.Sprintf("custom_%d", s.now().UnixMilli()),
		Title: title,
	}
	s.state.Subjects[subjectIndex].Chapters = append(s.state.Subjects[subjectIndex].Chapters, chapter)
	s.persist()
	return chapter, nil
}

// DeleteChapter removes by id.
func (s *SyllabusService) DeleteChapter(subjectIndex int, chapterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if subjectIndex < 0 || subjectIndex >= len(s.state.Subjects) {
		return util.ErrSubjectNotFound
	}
	subject := &s.state.Subjects[subjectIndex]
	kept := subject.Chapters[:0]
	for _, c := range subject.Chapters {
		if c.ID != chapterID {
			kept = append(kept, c)
		}
	}
	subject.Chapters = kept
	s.persist()
	return nil
}

// Reset clears progress on every chapter in every subject. Irreversible.
func (s *SyllabusService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Subjects {
		for j := range s.state.Subjects[i].Chapters {
			s.state.Subjects[i].Chapters[j].IsCompleted = false
			s.state.Subjects[i].Chapters[j].IsInProgress = false
		}
	}
	s.persist()
}

// Progress aggregates completion percentages overall and per subject,
// plus the fixed-target weekly bar.
func (s *SyllabusService) Progress() model.SyllabusProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := model.SyllabusProgress{
		Subjects: make([]model.SubjectProgress, len(s.state.Subjects)),
	}
	for i, sub := range s.state.Subjects {
		completed := 0
		for _, c := range sub.Chapters {
			if c.IsCompleted {
				completed++
			}
		}
		out.TotalChapters += len(sub.Chapters)
		out.CompletedChapters += completed
		out.Subjects[i] = model.SubjectProgress{
			Name:           sub.Name,
			Color:          sub.Color,
			Completed:      completed,
			Total:          len(sub.Chapters),
			Percent:        percentage(completed, len(sub.Chapters)),
			WeeklyTarget:   weeklyChapterTarget,
			WeeklyProgress: min(100, percentage(completed, weeklyChapterTarget)),
		}
	}
	out.Percent = percentage(out.CompletedChapters, out.TotalChapters)
	return out
}

// TodaySchedule picks the daily focus: manual override first, then buffer
// day, then weekend revision, then the weekday rotation through subjects
// (Monday is subject 0), targeting the first unfinished chapter.
func (s *SyllabusService) TodaySchedule() model.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.state.ManualSubjectIndex; idx != nil && *idx >= 0 && *idx < len(s.state.Subjects) {
		subject := s.state.Subjects[*idx]
		return model.Schedule{
			Type:     model.ScheduleManual,
			Title:    subject.Name,
			Subtitle: focusLine(subject),
			Color:    subject.Color,
		}
	}

	if s.state.BufferDay {
		return model.Schedule{
			Type:     model.ScheduleBuffer,
			Title:    "Rest & Recharge",
			Subtitle: "Take a break to consolidate memory.",
			Color:    "slate",
		}
	}

	day := s.now().Weekday()
	if day == time.Sunday || day == time.Saturday {
		return model.Schedule{
			Type:     model.ScheduleRevision,
			Title:    "Weekly Revision",
			Subtitle: `Review all "In Progress" topics`,
			Color:    "indigo",
		}
	}

	subject := s.state.Subjects[(int(day)-1)%len(s.state.Subjects)]
	return model.Schedule{
		Type:     model.ScheduleStudy,
		Title:    subject.Name,
		Subtitle: focusLine(subject),
		Color:    subject.Color,
	}
}

// CycleSchedule advances the manual focus: buffer -> subject 0, auto ->
// subject 0, subject i -> i+1, last subject -> back to auto.
func (s *SyllabusService) CycleSchedule() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.BufferDay {
		s.state.BufferDay = false
		zero := 0
		s.state.ManualSubjectIndex = &zero
		s.persist()
		return
	}

	if s.state.ManualSubjectIndex == nil {
		zero := 0
		s.state.ManualSubjectIndex = &zero
	} else {
		next := *s.state.ManualSubjectIndex + 1
		if next >= len(s.state.Subjects) {
			s.state.ManualSubjectIndex = nil
		} else {
			s.state.ManualSubjectIndex = &next
		}
	}
	s.persist()
}

// ToggleBufferDay flips rest mode and clears any manual override.
func (s *SyllabusService) ToggleBufferDay() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.BufferDay = !s.state.BufferDay
	s.state.ManualSubjectIndex = nil
	s.persist()
	return s.state.BufferDay
}

func focusLine(subject model.Subject) string {
	for _, c := range subject.Chapters {
		if !c.IsCompleted {
			return "Focus: " + c.Title
		}
	}
	if len(subject.Chapters) > 0 {
		return "Focus: " + subject.Chapters[0].Title
	}
	return "Focus: All Complete!"
}

func percentage(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
