package model

type SessionType string

const (
	SessionSpeedTest SessionType = "speed-test"
	SessionManualLog SessionType = "manual-log"
	SessionWriting   SessionType = "writing"
)

// ReadingSession is one timed or manually logged reading/writing record.
// Sessions are immutable once saved; the log is append-only.
type ReadingSession struct {
	ID              string      `json:"id"`
	Date            string      `json:"date"` // ISO 8601
	DurationSeconds int         `json:"durationSeconds"`
	WPM             int         `json:"wpm"` // 0 means not measured
	Pages           int         `json:"pages,omitempty"`
	Type            SessionType `json:"type"`
	PassageTitle    string      `json:"passageTitle,omitempty"`
	Subject         string      `json:"subject,omitempty"`
}
