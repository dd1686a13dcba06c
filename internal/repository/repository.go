// Package repository provides typed CRUD over the entity collections kept in
// a storage.Store. Lookups of an unknown id return a nil record and a nil
// error; errors are reserved for storage failures and corrupt collections.
package repository

import (
	"time"

	"wealthdesk/internal/models"
	"wealthdesk/internal/storage"
)

// Clock returns the current time.
type Clock func() time.Time

func today(now Clock) models.Date {
	return models.DateOf(now().UTC())
}

// Repositories bundles one repository per collection over a shared store.
type Repositories struct {
	Clients  ClientRepository
	Tasks    TaskRepository
	Notes    NoteRepository
	Folios   FolioRepository
	Holdings HoldingRepository

	store storage.Store
	now   Clock
}

// New builds the repositories without seeding. A nil clock uses time.Now.
func New(store storage.Store, now Clock) *Repositories {
	if now == nil {
		now = time.Now
	}
	return &Repositories{
		Clients:  NewClientRepository(store, now),
		Tasks:    NewTaskRepository(store),
		Notes:    NewNoteRepository(store, now),
		Folios:   NewFolioRepository(store),
		Holdings: NewHoldingRepository(store, now),
		store:    store,
		now:      now,
	}
}

// Open builds the repositories and seeds every absent collection with the
// example data.
func Open(store storage.Store, now Clock) (*Repositories, error) {
	r := New(store, now)
	if _, err := r.Seed(); err != nil {
		return nil, err
	}
	return r, nil
}

// Store returns the underlying store.
func (r *Repositories) Store() storage.Store { return r.store }

// Close closes the underlying store.
func (r *Repositories) Close() error { return r.store.Close() }
