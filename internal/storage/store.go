// Package storage is the string-keyed slot facade every collection is
// persisted through. Each slot holds one serialized collection.
package storage

import (
	"errors"
	"fmt"

	"wealthdesk/internal/config"
	"wealthdesk/internal/logger"
)

// Slot keys, one per entity collection.
const (
	KeyClients  = "clients"
	KeyTasks    = "tasks"
	KeyNotes    = "notes"
	KeyFolios   = "folios"
	KeyHoldings = "holdings"
)

// Keys lists every collection slot.
var Keys = []string{KeyClients, KeyTasks, KeyNotes, KeyFolios, KeyHoldings}

// Store drivers accepted by Open.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// ErrClosed is returned by a store after Close.
var ErrClosed = errors.New("storage: store is closed")

// Store reads and writes whole serialized values under string keys.
// An absent key is not an error: Get reports ok=false.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

// Open builds the store selected by cfg.StoreDriver.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case DriverMemory:
		logger.Get().Info("Using in-memory store")
		return NewMemoryStore(), nil
	case DriverSQLite, "":
		m, err := NewManager(cfg.StorePath)
		if err != nil {
			return nil, err
		}
		if err := m.RunMigrations(); err != nil {
			_ = m.Close()
			return nil, err
		}
		logger.Get().Infof("Using SQLite store at %s", cfg.StorePath)
		return NewSQLiteStore(m), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
