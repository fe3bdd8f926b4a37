// Package store implements the persistence layer: named slots holding one
// JSON document each, written whole on every mutation, last write wins.
package store

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot names. The tracker persists nothing outside these five.
const (
	SlotStats      = "stats"
	SlotTasks      = "tasks"
	SlotSessions   = "sessions"
	SlotActivities = "activities"
	SlotSyllabus   = "syllabus-state"
)

// Store reads and writes JSON documents by slot name. Get reports false
// when the slot has never been written, leaving the caller on its built-in
// default.
type Store interface {
	Get(key string, out interface{}) (bool, error)
	Set(key string, value interface{}) error
}

// Entry is one persisted slot.
type Entry struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     string    `gorm:"type:longtext;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Entry) TableName() string {
	return "store_entries"
}

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Get(key string, out interface{}) (bool, error) {
	var entry Entry
	err := s.DB.First(&entry, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(entry.Value), out); err != nil {
		// Malformed stored data falls back to defaults, never a fatal error.
		return false, nil
	}
	return true, nil
}

func (s *GormStore) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := Entry{Key: key, Value: string(raw)}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
