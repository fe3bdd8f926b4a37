package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewID returns a millisecond-timestamp identifier, the scheme the stored
// entities use for their ids.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

func GenerateUUID() string {
	return uuid.New().String()
}
