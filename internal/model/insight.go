package model

type PassageDifficulty string

const (
	DifficultyEasy   PassageDifficulty = "Easy"
	DifficultyMedium PassageDifficulty = "Medium"
	DifficultyHard   PassageDifficulty = "Hard"
)

type ReadingPassage struct {
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	WordCount  int               `json:"wordCount"`
	Difficulty PassageDifficulty `json:"difficulty"`
}

type InsightType string

const (
	InsightEncouragement InsightType = "encouragement"
	InsightAnalysis      InsightType = "analysis"
	InsightTip           InsightType = "tip"
)

type ReadingInsight struct {
	Message string      `json:"message"`
	Type    InsightType `json:"type"`
}
