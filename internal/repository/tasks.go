package repository

import (
	"wealthdesk/internal/models"
	"wealthdesk/internal/storage"
	"wealthdesk/internal/uuid"
)

// TaskRepository persists tasks in creation order.
type TaskRepository interface {
	List() ([]models.Task, error)
	ListByClient(clientID string) ([]models.Task, error)
	Get(id string) (*models.Task, error)
	Add(t models.Task) (*models.Task, error)
	Update(id string, p models.TaskPatch) (*models.Task, error)
	Delete(id string) (bool, error)
}

type taskRepository struct {
	c *collection[models.Task]
}

// NewTaskRepository returns a TaskRepository over the tasks slot.
func NewTaskRepository(store storage.Store) TaskRepository {
	return &taskRepository{c: newCollection[models.Task](store, storage.KeyTasks)}
}

func (r *taskRepository) List() ([]models.Task, error) { return r.c.list() }

func (r *taskRepository) ListByClient(clientID string) ([]models.Task, error) {
	return r.c.filter(byClient[models.Task](clientID))
}

func (r *taskRepository) Get(id string) (*models.Task, error) { return r.c.get(id) }

func (r *taskRepository) Add(t models.Task) (*models.Task, error) {
	t.ID = uuid.New()
	if err := r.c.add(t, false); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepository) Update(id string, p models.TaskPatch) (*models.Task, error) {
	return r.c.update(id, p.Apply)
}

func (r *taskRepository) Delete(id string) (bool, error) { return r.c.remove(id) }

func byClient[T models.ClientOwned](clientID string) func(T) bool {
	return func(it T) bool { return it.GetClientID() == clientID }
}
