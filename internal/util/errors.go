package util

import "errors"

var (
	ErrGoalNotFound    = errors.New("goal not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrChapterNotFound = errors.New("chapter not found")
	ErrAttemptNotFound = errors.New("attempt not found")
	ErrAttemptNotReady = errors.New("attempt not in a valid state for this transition")
	ErrTimerNotRunning = errors.New("no active timer")
	ErrInvalidInput    = errors.New("invalid input")
)
