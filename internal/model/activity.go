package model

type ActivityType string

const (
	ActivitySyllabus ActivityType = "syllabus"
	ActivityGoal     ActivityType = "goal"
)

type ActivitySubtype string

const (
	SubtypeCompletion ActivitySubtype = "completion"
	SubtypeCreation   ActivitySubtype = "creation"
	SubtypeProgress   ActivitySubtype = "progress"
)

// ActivityItem is an append-only log entry for goal and syllabus events.
// Session saves are intentionally not activity-logged.
type ActivityItem struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"` // ISO 8601
	Type        ActivityType    `json:"type"`
	Subtype     ActivitySubtype `json:"subtype"`
	Description string          `json:"description"`
	Subject     string          `json:"subject,omitempty"`
}
