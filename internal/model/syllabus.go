package model

// Chapter progress is tri-state: not-started (both flags false),
// in-progress, completed. The two flags are never simultaneously true.
type Chapter struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	IsCompleted  bool   `json:"isCompleted"`
	IsInProgress bool   `json:"isInProgress"`
}

type Subject struct {
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	Chapters []Chapter `json:"chapters"`
}

// SyllabusState is the single persisted syllabus blob. The schedule
// override and buffer-day flags ride with the subjects so everything lives
// in the one syllabus-state slot.
type SyllabusState struct {
	Subjects           []Subject `json:"subjects"`
	BufferDay          bool      `json:"bufferDay"`
	ManualSubjectIndex *int      `json:"manualSubjectIndex,omitempty"`
}

type ScheduleType string

const (
	ScheduleManual   ScheduleType = "manual"
	ScheduleBuffer   ScheduleType = "buffer"
	ScheduleRevision ScheduleType = "revision"
	ScheduleStudy    ScheduleType = "study"
)

// Schedule is the derived daily recommendation. It is recomputed on every
// read and never persisted itself.
type Schedule struct {
	Type     ScheduleType `json:"type"`
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Color    string       `json:"color"`
}

type SubjectProgress struct {
	Name           string `json:"name"`
	Color          string `json:"color"`
	Completed      int    `json:"completed"`
	Total          int    `json:"total"`
	Percent        int    `json:"percent"`
	WeeklyTarget   int    `json:"weeklyTarget"`
	WeeklyProgress int    `json:"weeklyProgress"`
}

type SyllabusProgress struct {
	TotalChapters     int               `json:"totalChapters"`
	CompletedChapters int               `json:"completedChapters"`
	Percent           int               `json:"percent"`
	Subjects          []SubjectProgress `json:"subjects"`
}
