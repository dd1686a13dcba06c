package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/pagination"
	"wealthdesk/internal/services"
)

func setupTaskRouter(svc services.TaskServicer) *gin.Engine {
	h := NewTaskHandler(svc)
	r := gin.New()
	g := r.Group("/tasks", injectActor(models.RoleStaff))
	g.GET("", h.ListTasks)
	g.POST("", h.CreateTask)
	g.GET("/board", h.TaskBoard)
	g.GET("/:id", h.GetTask)
	g.PUT("/:id", h.UpdateTask)
	g.PATCH("/:id/status", h.UpdateTaskStatus)
	g.DELETE("/:id", h.DeleteTask)
	return r
}

func TestTaskHandler_ListTasks(t *testing.T) {
	svc := &mockTaskService{
		listTasks: func(filter services.TaskFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Task], error) {
			if filter.ClientID != "c1" {
				t.Errorf("expected client filter c1, got %q", filter.ClientID)
			}
			if filter.Status == nil || *filter.Status != models.TaskStatusInProgress {
				t.Errorf("expected In Progress filter, got %v", filter.Status)
			}
			resp := pagination.Paginate([]models.Task{{ID: "t1"}}, page)
			return &resp, nil
		},
	}
	r := setupTaskRouter(svc)

	w := doRequest(r, http.MethodGet, "/tasks?client_id=c1&status=In+Progress", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/tasks?status=Done", nil)
	assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
}

func TestTaskHandler_TaskBoard(t *testing.T) {
	svc := &mockTaskService{
		taskBoard: func() ([]services.TaskColumn, error) {
			cols := []services.TaskColumn{}
			for _, st := range models.TaskStatuses {
				cols = append(cols, services.TaskColumn{Status: st, Tasks: []models.Task{}})
			}
			return cols, nil
		},
	}
	w := doRequest(setupTaskRouter(svc), http.MethodGet, "/tasks/board", nil)
	cols, _ := parseJSON(t, w)["columns"].([]any)
	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(cols))
	}
	if first, _ := cols[0].(map[string]any); first["status"] != "Pending" {
		t.Errorf("expected Pending first, got %v", first["status"])
	}
}

func TestTaskHandler_CreateTask(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockTaskService{
			createTask: func(actor services.Actor, task models.Task) (*models.Task, error) {
				if task.DueDate != models.NewDate(2024, 6, 30) {
					t.Errorf("expected due 2024-06-30, got %s", task.DueDate)
				}
				task.ID = "t5"
				return &task, nil
			},
		}
		w := doRequest(setupTaskRouter(svc), http.MethodPost, "/tasks", gin.H{
			"client_id": "c1", "title": "Send KYC form", "due_date": "2024-06-30", "priority": "High",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if parseJSON(t, w)["due_date"] != "2024-06-30" {
			t.Error("expected due_date echoed as a calendar date")
		}
	})

	t.Run("bad date", func(t *testing.T) {
		w := doRequest(setupTaskRouter(&mockTaskService{}), http.MethodPost, "/tasks", gin.H{
			"title": "x", "due_date": "30/06/2024",
		})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("bad priority", func(t *testing.T) {
		w := doRequest(setupTaskRouter(&mockTaskService{}), http.MethodPost, "/tasks", gin.H{
			"title": "x", "due_date": "2024-06-30", "priority": "Urgent",
		})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestTaskHandler_UpdateTaskStatus(t *testing.T) {
	svc := &mockTaskService{
		updateTask: func(id string, patch models.TaskPatch) (*models.Task, error) {
			if patch.Status == nil || patch.Title != nil {
				t.Errorf("expected status-only patch, got %+v", patch)
			}
			if id != "t1" {
				return nil, apperrors.ErrTaskNotFound
			}
			return &models.Task{ID: id, Status: *patch.Status}, nil
		},
	}
	r := setupTaskRouter(svc)

	w := doRequest(r, http.MethodPatch, "/tasks/t1/status", gin.H{"status": "Completed"})
	if w.Code != http.StatusOK || parseJSON(t, w)["status"] != "Completed" {
		t.Errorf("unexpected response %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodPatch, "/tasks/t1/status", gin.H{})
	assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")

	w = doRequest(r, http.MethodPatch, "/tasks/t9/status", gin.H{"status": "Pending"})
	assertErrorCode(t, w, http.StatusNotFound, "TASK_NOT_FOUND")
}

func TestTaskHandler_GetAndDelete(t *testing.T) {
	svc := &mockTaskService{
		getTask:    func(id string) (*models.Task, error) { return nil, apperrors.ErrTaskNotFound },
		deleteTask: func(id string) error { return nil },
	}
	r := setupTaskRouter(svc)

	assertErrorCode(t, doRequest(r, http.MethodGet, "/tasks/t1", nil), http.StatusNotFound, "TASK_NOT_FOUND")

	if w := doRequest(r, http.MethodDelete, "/tasks/t1", nil); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
