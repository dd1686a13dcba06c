package services

import (
	"sort"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/repository"
)

const dashboardListSize = 5

// dashboardService builds the landing page overview.
type dashboardService struct {
	repos *repository.Repositories
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(repos *repository.Repositories) DashboardServicer {
	return &dashboardService{repos: repos}
}

// GetDashboard counts clients by status and picks the newest clients and the
// soonest open tasks.
func (s *dashboardService) GetDashboard() (*Dashboard, error) {
	clients, err := s.repos.Clients.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	tasks, err := s.repos.Tasks.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	counts := make(map[models.ClientStatus]int, len(models.ClientStatuses))
	for _, c := range clients {
		counts[c.Status]++
	}
	d := &Dashboard{
		TotalClients:  len(clients),
		ActiveClients: counts[models.ClientStatusActive],
		NewLeads:      counts[models.ClientStatusLead],
	}
	for _, st := range models.ClientStatuses {
		d.StatusDistribution = append(d.StatusDistribution, StatusCount{Status: st, Count: counts[st]})
	}

	recent := append([]models.Client(nil), clients...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	d.RecentClients = head(recent, dashboardListSize)

	open := []models.Task{}
	for _, t := range tasks {
		if t.Status == models.TaskStatusPending {
			d.PendingTasks++
		}
		if t.IsOpen() {
			open = append(open, t)
		}
	}
	sortByDue(open)
	d.UpcomingTasks = head(open, dashboardListSize)

	return d, nil
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[:n]
	}
	if items == nil {
		return []T{}
	}
	return items
}
