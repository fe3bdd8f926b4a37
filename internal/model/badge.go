package model

type BadgeConditionKind string

const (
	ConditionStreakThreshold BadgeConditionKind = "streak-threshold"
	ConditionWPMThreshold    BadgeConditionKind = "wpm-threshold"
	ConditionPagesThreshold  BadgeConditionKind = "pages-threshold"
)

// BadgeCondition is a serializable unlock rule evaluated against UserStats.
type BadgeCondition struct {
	Kind  BadgeConditionKind `json:"kind"`
	Value int                `json:"value"`
}

func (c BadgeCondition) Met(s UserStats) bool {
	switch c.Kind {
	case ConditionStreakThreshold:
		return s.DailyStreak >= c.Value
	case ConditionWPMThreshold:
		return s.CurrentWPM >= c.Value
	case ConditionPagesThreshold:
		return s.TotalPagesRead >= c.Value
	default:
		return false
	}
}

// Badge unlock is monotonic: once Unlocked flips to true it never reverts,
// even if the underlying stat later drops below the threshold.
type Badge struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Unlocked    bool           `json:"unlocked"`
	Color       string         `json:"color"`
	Condition   BadgeCondition `json:"condition"`
}

func DefaultBadges() []Badge {
	return []Badge{
		{ID: "1", Name: "7 Day Streak", Description: "Read for 7 days in a row", Icon: "flame", Color: "orange",
			Condition: BadgeCondition{Kind: ConditionStreakThreshold, Value: 7}},
		{ID: "2", Name: "Speed Demon", Description: "Reach 300 WPM", Icon: "zap", Color: "violet",
			Condition: BadgeCondition{Kind: ConditionWPMThreshold, Value: 300}},
		{ID: "3", Name: "Bookworm", Description: "Read 1000 Pages", Icon: "book", Color: "emerald",
			Condition: BadgeCondition{Kind: ConditionPagesThreshold, Value: 1000}},
	}
}
