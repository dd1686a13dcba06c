package storage

import (
	"fmt"
	"time"

	"gorm.io/gorm/clause"
)

// Slot is one row of the slots table.
type Slot struct {
	Key       string    `gorm:"column:slot_key;primaryKey"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName pins the table name used by the SQL migrations.
func (Slot) TableName() string { return "slots" }

// SQLiteStore keeps slots in a SQLite table through gorm.
type SQLiteStore struct {
	m *Manager
}

// NewSQLiteStore returns a store over an opened and migrated Manager.
func NewSQLiteStore(m *Manager) *SQLiteStore {
	return &SQLiteStore{m: m}
}

// Get returns the value stored under key.
func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var slots []Slot
	if err := s.m.DB().Where("slot_key = ?", key).Limit(1).Find(&slots).Error; err != nil {
		return "", false, fmt.Errorf("failed to read slot %q: %w", key, err)
	}
	if len(slots) == 0 {
		return "", false, nil
	}
	return slots[0].Value, true, nil
}

// Set inserts or replaces the value under key.
func (s *SQLiteStore) Set(key, value string) error {
	slot := Slot{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.m.DB().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *SQLiteStore) Delete(key string) error {
	if err := s.m.DB().Where("slot_key = ?", key).Delete(&Slot{}).Error; err != nil {
		return fmt.Errorf("failed to delete slot %q: %w", key, err)
	}
	return nil
}

// Keys lists stored keys in lexical order.
func (s *SQLiteStore) Keys() ([]string, error) {
	var keys []string
	if err := s.m.DB().Model(&Slot{}).Order("slot_key").Pluck("slot_key", &keys).Error; err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	return keys, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.m.Close()
}
