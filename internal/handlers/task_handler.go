package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/services"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService services.TaskServicer
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService services.TaskServicer) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	ClientID   string              `json:"client_id"`
	Title      string              `json:"title" binding:"required,max=300"`
	DueDate    models.Date         `json:"due_date" swaggertype:"string" example:"2024-06-30"`
	Priority   models.TaskPriority `json:"priority" binding:"omitempty,task_priority" example:"Medium"`
	Status     models.TaskStatus   `json:"status" binding:"omitempty,task_status" example:"Pending"`
	AssignedTo string              `json:"assigned_to" binding:"max=100"`
}

// UpdateTaskRequest represents the request body for editing a task
type UpdateTaskRequest struct {
	ClientID   *string              `json:"client_id"`
	Title      *string              `json:"title" binding:"omitempty,max=300"`
	DueDate    *models.Date         `json:"due_date" swaggertype:"string"`
	Priority   *models.TaskPriority `json:"priority" binding:"omitempty,task_priority"`
	Status     *models.TaskStatus   `json:"status" binding:"omitempty,task_status"`
	AssignedTo *string              `json:"assigned_to" binding:"omitempty,max=100"`
}

// UpdateTaskStatusRequest moves a task between board columns
type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required,task_status"`
}

// TaskListQuery holds the filters accepted by the task list.
type TaskListQuery struct {
	ClientID string            `form:"client_id"`
	Status   models.TaskStatus `form:"status" binding:"omitempty,task_status"`
}

// ListTasks handles listing tasks
// @Summary     List tasks
// @Description Get a paginated list of tasks, soonest due first
// @Tags        tasks
// @Produce     json
// @Security    BearerAuth
// @Param       client_id query string false "Client ID"
// @Param       status    query string false "Task status (Pending, In Progress, Completed)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Task]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var q TaskListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := services.TaskFilter{ClientID: q.ClientID}
	if q.Status != "" {
		filter.Status = &q.Status
	}
	result, err := h.taskService.ListTasks(filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// TaskBoard handles the grouped task board
// @Summary     Task board
// @Description Get every task grouped into Pending, In Progress and Completed columns
// @Tags        tasks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]services.TaskColumn "Board columns keyed by columns"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /tasks/board [get]
func (h *TaskHandler) TaskBoard(c *gin.Context) {
	board, err := h.taskService.TaskBoard()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": board})
}

// GetTask handles fetching a single task
// @Summary     Get task
// @Tags        tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} models.Task
// @Failure     404 {object} ErrorResponse "Task not found"
// @Router      /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask handles task creation
// @Summary     Create task
// @Description Add a task. Status defaults to Pending, priority to Medium and assignee to the caller.
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTaskRequest true "Task"
// @Success     201 {object} models.Task
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	task, err := h.taskService.CreateTask(actor, models.Task{
		ClientID: req.ClientID, Title: req.Title, DueDate: req.DueDate,
		Priority: req.Priority, Status: req.Status, AssignedTo: req.AssignedTo,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles editing a task
// @Summary     Update task
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Task ID"
// @Param       request body UpdateTaskRequest true "Fields to change"
// @Success     200 {object} models.Task
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Router      /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	task, err := h.taskService.UpdateTask(id, models.TaskPatch{
		ClientID: req.ClientID, Title: req.Title, DueDate: req.DueDate,
		Priority: req.Priority, Status: req.Status, AssignedTo: req.AssignedTo,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTaskStatus moves a task to another board column
// @Summary     Update task status
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                  true "Task ID"
// @Param       request body UpdateTaskStatusRequest true "New status"
// @Success     200 {object} models.Task
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Task not found"
// @Router      /tasks/{id}/status [patch]
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	task, err := h.taskService.UpdateTask(id, models.TaskPatch{Status: &req.Status})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles deleting a task
// @Summary     Delete task
// @Tags        tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "Task not found"
// @Router      /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}
