package repository

import (
	"wealthdesk/internal/models"
	"wealthdesk/internal/storage"
	"wealthdesk/internal/uuid"
)

// FolioRepository persists folios in creation order.
type FolioRepository interface {
	List() ([]models.Folio, error)
	ListByClient(clientID string) ([]models.Folio, error)
	Get(id string) (*models.Folio, error)
	Add(f models.Folio) (*models.Folio, error)
	Update(id string, p models.FolioPatch) (*models.Folio, error)
	Delete(id string) (bool, error)
}

type folioRepository struct {
	c *collection[models.Folio]
}

// NewFolioRepository returns a FolioRepository over the folios slot.
func NewFolioRepository(store storage.Store) FolioRepository {
	return &folioRepository{c: newCollection[models.Folio](store, storage.KeyFolios)}
}

func (r *folioRepository) List() ([]models.Folio, error) { return r.c.list() }

func (r *folioRepository) ListByClient(clientID string) ([]models.Folio, error) {
	return r.c.filter(byClient[models.Folio](clientID))
}

func (r *folioRepository) Get(id string) (*models.Folio, error) { return r.c.get(id) }

func (r *folioRepository) Add(f models.Folio) (*models.Folio, error) {
	f.ID = uuid.New()
	if err := r.c.add(f, false); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *folioRepository) Update(id string, p models.FolioPatch) (*models.Folio, error) {
	return r.c.update(id, p.Apply)
}

func (r *folioRepository) Delete(id string) (bool, error) { return r.c.remove(id) }
