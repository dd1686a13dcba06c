// Package testutil provides test helpers for setting up stores and
// repositories, creating fixtures, and making assertions.
package testutil

import (
	"strings"
	"testing"
	"time"

	"wealthdesk/internal/repository"
	"wealthdesk/internal/storage"
)

// FixedNow is the clock tests run against unless they need another one.
var FixedNow = time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)

// Clock returns a clock pinned to t.
func Clock(t time.Time) repository.Clock {
	return func() time.Time { return t }
}

// SetupTestStore opens a SQLite store on a private in-memory database and
// closes it when the test ends.
func SetupTestStore(t *testing.T) storage.Store {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	m, err := storage.NewManager("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := m.RunMigrations(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	s := storage.NewSQLiteStore(m)
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
	return s
}

// NewMemoryRepos returns unseeded repositories over a fresh MemoryStore,
// pinned to FixedNow.
func NewMemoryRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	return repository.New(storage.NewMemoryStore(), Clock(FixedNow))
}

// NewSeededRepos returns repositories over a fresh MemoryStore holding the
// example data, pinned to FixedNow.
func NewSeededRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	repos, err := repository.Open(storage.NewMemoryStore(), Clock(FixedNow))
	if err != nil {
		t.Fatalf("failed to seed repositories: %v", err)
	}
	return repos
}
