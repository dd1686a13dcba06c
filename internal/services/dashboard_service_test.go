package services

import (
	"fmt"
	"testing"
	"time"

	"wealthdesk/internal/models"
	"wealthdesk/internal/repository"
	"wealthdesk/internal/storage"
	"wealthdesk/internal/testutil"
)

func TestGetDashboard(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		d, err := NewDashboardService(testutil.NewMemoryRepos(t)).GetDashboard()
		testutil.AssertNoError(t, err)
		if d.TotalClients != 0 || len(d.RecentClients) != 0 || len(d.UpcomingTasks) != 0 {
			t.Errorf("expected empty dashboard, got %+v", d)
		}
		if len(d.StatusDistribution) != 4 {
			t.Errorf("expected every status in the distribution, got %d", len(d.StatusDistribution))
		}
	})

	t.Run("counts and lists", func(t *testing.T) {
		// Each client is created one hour after the previous one.
		now := testutil.FixedNow
		repos := repository.New(storage.NewMemoryStore(), func() time.Time { now = now.Add(time.Hour); return now })

		statuses := []models.ClientStatus{
			models.ClientStatusActive, models.ClientStatusActive, models.ClientStatusLead,
			models.ClientStatusInactive, models.ClientStatusChurned, models.ClientStatusLead,
			models.ClientStatusActive,
		}
		var last *models.Client
		for i, st := range statuses {
			last = testutil.CreateTestClientWith(t, repos, models.Client{
				Name: fmt.Sprintf("C%d", i), Company: "X", Email: fmt.Sprintf("c%d@x.in", i), Status: st,
			})
		}

		base := models.MustParseDate("2024-06-10")
		var tasks []*models.Task
		for i := 6; i >= 0; i-- {
			tasks = append(tasks, testutil.CreateTestTask(t, repos, last.ID, base.AddDays(i)))
		}
		done := models.TaskStatusCompleted
		inProgress := models.TaskStatusInProgress
		// tasks[6] is due soonest; completing it drops it from the upcoming list.
		_, err := repos.Tasks.Update(tasks[6].ID, models.TaskPatch{Status: &done})
		testutil.AssertNoError(t, err)
		_, err = repos.Tasks.Update(tasks[5].ID, models.TaskPatch{Status: &inProgress})
		testutil.AssertNoError(t, err)

		d, err := NewDashboardService(repos).GetDashboard()
		testutil.AssertNoError(t, err)

		if d.TotalClients != 7 || d.ActiveClients != 3 || d.NewLeads != 2 {
			t.Errorf("unexpected counts %d/%d/%d", d.TotalClients, d.ActiveClients, d.NewLeads)
		}
		if d.PendingTasks != 5 {
			t.Errorf("expected 5 pending tasks, got %d", d.PendingTasks)
		}
		for _, sc := range d.StatusDistribution {
			if sc.Status == models.ClientStatusChurned && sc.Count != 1 {
				t.Errorf("expected 1 churned client, got %d", sc.Count)
			}
		}

		if len(d.RecentClients) != 5 || d.RecentClients[0].ID != last.ID {
			t.Errorf("expected 5 recent clients starting with the newest")
		}
		if len(d.UpcomingTasks) != 5 {
			t.Fatalf("expected 5 upcoming tasks, got %d", len(d.UpcomingTasks))
		}
		if d.UpcomingTasks[0].ID != tasks[5].ID {
			t.Errorf("expected the in-progress task due tomorrow first, got %s", d.UpcomingTasks[0].DueDate)
		}
		for _, task := range d.UpcomingTasks {
			if !task.IsOpen() {
				t.Errorf("completed task %s listed as upcoming", task.ID)
			}
		}
	})
}
