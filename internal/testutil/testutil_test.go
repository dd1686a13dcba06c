package testutil_test

import (
	"testing"

	"wealthdesk/internal/errors"
	"wealthdesk/internal/logger"
	"wealthdesk/internal/models"
	"wealthdesk/internal/storage"
	"wealthdesk/internal/testutil"
)

func init() {
	logger.Init("test")
}

func TestSetupTestStore(t *testing.T) {
	s := testutil.SetupTestStore(t)

	if err := s.Set(storage.KeyClients, "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get(storage.KeyClients)
	testutil.AssertNoError(t, err)
	if !ok || v != "[]" {
		t.Errorf("expected stored slot, got %q (present=%v)", v, ok)
	}
}

func TestFixtures(t *testing.T) {
	repos := testutil.NewMemoryRepos(t)

	client := testutil.CreateTestClient(t, repos)
	if client.ID == "" {
		t.Fatal("client should have an id")
	}
	if !client.CreatedAt.Equal(testutil.FixedNow) {
		t.Errorf("expected CreatedAt %v, got %v", testutil.FixedNow, client.CreatedAt)
	}

	h := testutil.CreateTestHolding(t, repos, client.ID, models.AssetClassStocks,
		models.MustParseDate("2023-06-10"), 10, 100, 120)
	if len(h.PriceHistory) != 2 {
		t.Errorf("expected 2 history samples, got %d", len(h.PriceHistory))
	}

	task := testutil.CreateTestTask(t, repos, client.ID, models.MustParseDate("2024-06-12"))
	if !task.IsOpen() {
		t.Error("new task should be open")
	}
}

func TestSeededRepos(t *testing.T) {
	repos := testutil.NewSeededRepos(t)
	clients, err := repos.Clients.List()
	testutil.AssertNoError(t, err)
	if len(clients) != 3 {
		t.Errorf("expected 3 seeded clients, got %d", len(clients))
	}
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, errors.ErrClientNotFound, "CLIENT_NOT_FOUND")
	testutil.AssertFloat(t, "pi", 3.1415926, 3.14159261)
}
