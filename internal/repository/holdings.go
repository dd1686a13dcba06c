package repository

import (
	"wealthdesk/internal/models"
	"wealthdesk/internal/storage"
	"wealthdesk/internal/uuid"
)

// HoldingRepository persists holdings in creation order and keeps each
// holding's price history trail.
type HoldingRepository interface {
	List() ([]models.Holding, error)
	ListByClient(clientID string) ([]models.Holding, error)
	Get(id string) (*models.Holding, error)
	Add(h models.Holding) (*models.Holding, error)
	Update(id string, p models.HoldingPatch) (*models.Holding, error)
	Delete(id string) (bool, error)
}

type holdingRepository struct {
	c   *collection[models.Holding]
	now Clock
}

// NewHoldingRepository returns a HoldingRepository over the holdings slot.
func NewHoldingRepository(store storage.Store, now Clock) HoldingRepository {
	return &holdingRepository{c: newCollection[models.Holding](store, storage.KeyHoldings), now: now}
}

func (r *holdingRepository) List() ([]models.Holding, error) { return r.c.list() }

func (r *holdingRepository) ListByClient(clientID string) ([]models.Holding, error) {
	return r.c.filter(byClient[models.Holding](clientID))
}

func (r *holdingRepository) Get(id string) (*models.Holding, error) { return r.c.get(id) }

// Add assigns an id and starts the price history with the purchase cost on
// the purchase date followed by the current price today. Any history on h is
// discarded.
func (r *holdingRepository) Add(h models.Holding) (*models.Holding, error) {
	h.ID = uuid.New()
	h.PriceHistory = initialHistory(h, today(r.now))
	if err := r.c.add(h, false); err != nil {
		return nil, err
	}
	return &h, nil
}

// Update merges p into the holding. When p moves the current price to a new
// value, one sample dated today is appended to the history.
func (r *holdingRepository) Update(id string, p models.HoldingPatch) (*models.Holding, error) {
	return r.c.update(id, func(h *models.Holding) {
		if p.PriceChanged(*h) {
			h.PriceHistory = append(h.PriceHistory, models.PricePoint{Date: today(r.now), Price: *p.CurrentPrice})
		}
		p.Apply(h)
	})
}

func (r *holdingRepository) Delete(id string) (bool, error) { return r.c.remove(id) }

func initialHistory(h models.Holding, on models.Date) []models.PricePoint {
	return []models.PricePoint{
		{Date: h.PurchaseDate, Price: h.AverageCost},
		{Date: on, Price: h.CurrentPrice},
	}
}
