package services

import (
	"sort"
	"strings"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/pagination"
	"wealthdesk/internal/repository"
)

// taskService handles task-related business logic.
type taskService struct {
	repos *repository.Repositories
}

// NewTaskService creates a new TaskServicer.
func NewTaskService(repos *repository.Repositories) TaskServicer {
	return &taskService{repos: repos}
}

func (f TaskFilter) matches(t models.Task) bool {
	if f.ClientID != "" && t.ClientID != f.ClientID {
		return false
	}
	return f.Status == nil || t.Status == *f.Status
}

// ListTasks returns one page of the tasks matching filter, soonest due first.
func (s *taskService) ListTasks(filter TaskFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Task], error) {
	all, err := s.repos.Tasks.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	tasks := []models.Task{}
	for _, t := range all {
		if filter.matches(t) {
			tasks = append(tasks, t)
		}
	}
	sortByDue(tasks)
	resp := pagination.Paginate(tasks, page)
	return &resp, nil
}

// TaskBoard groups every task into one column per status.
func (s *taskService) TaskBoard() ([]TaskColumn, error) {
	all, err := s.repos.Tasks.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	board := make([]TaskColumn, len(models.TaskStatuses))
	for i, st := range models.TaskStatuses {
		board[i] = TaskColumn{Status: st, Tasks: []models.Task{}}
		for _, t := range all {
			if t.Status == st {
				board[i].Tasks = append(board[i].Tasks, t)
			}
		}
	}
	return board, nil
}

func (s *taskService) GetTask(id string) (*models.Task, error) {
	t, err := s.repos.Tasks.Get(id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if t == nil {
		return nil, apperrors.ErrTaskNotFound
	}
	return t, nil
}

// CreateTask stores a new task. Status defaults to Pending, priority to
// Medium and the assignee to the acting staff member.
func (s *taskService) CreateTask(actor Actor, t models.Task) (*models.Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "task title is required")
	}
	if t.DueDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due date is required")
	}
	if t.ClientID != "" {
		if _, err := requireClient(s.repos, t.ClientID); err != nil {
			return nil, err
		}
	}
	if t.Status == "" {
		t.Status = models.TaskStatusPending
	}
	if t.Priority == "" {
		t.Priority = models.TaskPriorityMedium
	}
	if t.AssignedTo == "" {
		t.AssignedTo = actor.Name
	}

	created, err := s.repos.Tasks.Add(t)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return created, nil
}

func (s *taskService) UpdateTask(id string, patch models.TaskPatch) (*models.Task, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "task title cannot be empty")
	}
	if patch.ClientID != nil && *patch.ClientID != "" {
		if _, err := requireClient(s.repos, *patch.ClientID); err != nil {
			return nil, err
		}
	}
	t, err := s.repos.Tasks.Update(id, patch)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if t == nil {
		return nil, apperrors.ErrTaskNotFound
	}
	return t, nil
}

func (s *taskService) DeleteTask(id string) error {
	ok, err := s.repos.Tasks.Delete(id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

func sortByDue(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DueDate.Before(tasks[j].DueDate)
	})
}
