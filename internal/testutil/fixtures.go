package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"wealthdesk/internal/models"
	"wealthdesk/internal/repository"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestClient creates an Active client with a unique name and email.
func CreateTestClient(t *testing.T, repos *repository.Repositories) *models.Client {
	t.Helper()
	n := nextID()
	return CreateTestClientWith(t, repos, models.Client{
		Name:    fmt.Sprintf("Client %d", n),
		Company: "Acme",
		Email:   fmt.Sprintf("client%d@test.com", n),
		Status:  models.ClientStatusActive,
		Owner:   "Test Owner",
	})
}

// CreateTestClientWith stores c as given.
func CreateTestClientWith(t *testing.T, repos *repository.Repositories, c models.Client) *models.Client {
	t.Helper()
	created, err := repos.Clients.Add(c)
	if err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}
	return created
}

// CreateTestTask creates a Pending, Medium task for the client due on due.
func CreateTestTask(t *testing.T, repos *repository.Repositories, clientID string, due models.Date) *models.Task {
	t.Helper()
	task, err := repos.Tasks.Add(models.Task{
		ClientID:   clientID,
		Title:      fmt.Sprintf("Task %d", nextID()),
		DueDate:    due,
		Priority:   models.TaskPriorityMedium,
		Status:     models.TaskStatusPending,
		AssignedTo: "Test Owner",
	})
	if err != nil {
		t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

// CreateTestNote creates a note for the client.
func CreateTestNote(t *testing.T, repos *repository.Repositories, clientID, content string) *models.Note {
	t.Helper()
	note, err := repos.Notes.Add(models.Note{ClientID: clientID, Content: content, CreatedBy: "Test Owner"})
	if err != nil {
		t.Fatalf("failed to create test note: %v", err)
	}
	return note
}

// CreateTestFolio creates a folio for the client.
func CreateTestFolio(t *testing.T, repos *repository.Repositories, clientID string) *models.Folio {
	t.Helper()
	folio, err := repos.Folios.Add(models.Folio{
		ClientID:    clientID,
		FolioNumber: fmt.Sprintf("F-%06d", nextID()),
		Provider:    "HDFC Mutual Fund",
	})
	if err != nil {
		t.Fatalf("failed to create test folio: %v", err)
	}
	return folio
}

// CreateTestHolding creates a holding for the client.
func CreateTestHolding(t *testing.T, repos *repository.Repositories, clientID string, class models.AssetClass, purchased models.Date, units, cost, price float64) *models.Holding {
	t.Helper()
	h, err := repos.Holdings.Add(models.Holding{
		ClientID:     clientID,
		AssetClass:   class,
		Name:         fmt.Sprintf("Holding %d", nextID()),
		PurchaseDate: purchased,
		Units:        units,
		AverageCost:  cost,
		CurrentPrice: price,
	})
	if err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return h
}
