package models

// Task is a follow-up item, usually tied to a client.
type Task struct {
	ID         string       `json:"id" yaml:"id"`
	ClientID   string       `json:"client_id" yaml:"client_id"`
	Title      string       `json:"title" yaml:"title"`
	DueDate    Date         `json:"due_date" yaml:"-" swaggertype:"string" format:"date"`
	Priority   TaskPriority `json:"priority" yaml:"priority"`
	Status     TaskStatus   `json:"status" yaml:"status"`
	AssignedTo string       `json:"assigned_to" yaml:"assigned_to"`
}

// IsOpen reports whether the task still needs work.
func (t Task) IsOpen() bool { return t.Status != TaskStatusCompleted }

// TaskPatch lists the task fields an update may change.
type TaskPatch struct {
	ClientID   *string       `json:"client_id,omitempty"`
	Title      *string       `json:"title,omitempty"`
	DueDate    *Date         `json:"due_date,omitempty"`
	Priority   *TaskPriority `json:"priority,omitempty"`
	Status     *TaskStatus   `json:"status,omitempty"`
	AssignedTo *string       `json:"assigned_to,omitempty"`
}

// Apply merges the set fields of p over t.
func (p TaskPatch) Apply(t *Task) {
	if p.ClientID != nil {
		t.ClientID = *p.ClientID
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
}
