package repository

import (
	"wealthdesk/internal/models"
	"wealthdesk/internal/storage"
	"wealthdesk/internal/uuid"
)

// ClientRepository persists clients newest-first.
type ClientRepository interface {
	List() ([]models.Client, error)
	Get(id string) (*models.Client, error)
	Add(c models.Client) (*models.Client, error)
	Update(id string, p models.ClientPatch) (*models.Client, error)
	Delete(id string) (bool, error)
}

type clientRepository struct {
	c   *collection[models.Client]
	now Clock
}

// NewClientRepository returns a ClientRepository over the clients slot.
func NewClientRepository(store storage.Store, now Clock) ClientRepository {
	return &clientRepository{c: newCollection[models.Client](store, storage.KeyClients), now: now}
}

func (r *clientRepository) List() ([]models.Client, error) { return r.c.list() }

func (r *clientRepository) Get(id string) (*models.Client, error) { return r.c.get(id) }

// Add assigns an id and stamps CreatedAt and LastContact with the current time.
func (r *clientRepository) Add(c models.Client) (*models.Client, error) {
	now := r.now()
	c.ID = uuid.New()
	c.CreatedAt = now
	c.LastContact = now
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if err := r.c.add(c, true); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) Update(id string, p models.ClientPatch) (*models.Client, error) {
	return r.c.update(id, p.Apply)
}

func (r *clientRepository) Delete(id string) (bool, error) { return r.c.remove(id) }
