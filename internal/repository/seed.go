package repository

import (
	_ "embed"
	"fmt"
	"time"

	"wealthdesk/internal/logger"
	"wealthdesk/internal/models"
	"wealthdesk/internal/storage"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

const day = 24 * time.Hour

type seedClient struct {
	models.Client   `yaml:",inline"`
	LastContactDays int `yaml:"last_contact_days"`
	CreatedDays     int `yaml:"created_days"`
}

type seedTask struct {
	models.Task `yaml:",inline"`
	DueDays     int `yaml:"due_days"`
}

type seedNote struct {
	models.Note `yaml:",inline"`
	CreatedDays int `yaml:"created_days"`
}

type seedData struct {
	Clients  []seedClient     `yaml:"clients"`
	Tasks    []seedTask       `yaml:"tasks"`
	Notes    []seedNote       `yaml:"notes"`
	Holdings []models.Holding `yaml:"holdings"`
	Folios   []models.Folio   `yaml:"folios"`
}

// Fixtures is the example data resolved against a point in time.
type Fixtures struct {
	Clients  []models.Client
	Tasks    []models.Task
	Notes    []models.Note
	Holdings []models.Holding
	Folios   []models.Folio
}

// LoadFixtures decodes the embedded example data with relative dates resolved
// against now.
func LoadFixtures(now time.Time) (*Fixtures, error) {
	var data seedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return nil, fmt.Errorf("invalid seed data: %w", err)
	}

	fx := &Fixtures{Folios: data.Folios}
	for _, sc := range data.Clients {
		c := sc.Client
		c.LastContact = now.Add(time.Duration(sc.LastContactDays) * day)
		c.CreatedAt = now.Add(time.Duration(sc.CreatedDays) * day)
		fx.Clients = append(fx.Clients, c)
	}
	on := models.DateOf(now.UTC())
	for _, st := range data.Tasks {
		t := st.Task
		t.DueDate = on.AddDays(st.DueDays)
		fx.Tasks = append(fx.Tasks, t)
	}
	for _, sn := range data.Notes {
		n := sn.Note
		n.CreatedAt = now.Add(time.Duration(sn.CreatedDays) * day)
		fx.Notes = append(fx.Notes, n)
	}
	for _, h := range data.Holdings {
		h.PriceHistory = initialHistory(h, on)
		fx.Holdings = append(fx.Holdings, h)
	}
	return fx, nil
}

// Seed writes the example data into every collection slot that does not
// exist yet and returns the keys it wrote. Existing slots are never touched,
// so running it again is a no-op. Call it before the repositories are shared.
func (r *Repositories) Seed() ([]string, error) {
	fx, err := LoadFixtures(r.now())
	if err != nil {
		return nil, err
	}

	log := logger.Named("repository")
	var seeded []string
	for _, slot := range []struct {
		key  string
		seed func() (bool, error)
	}{
		{storage.KeyClients, seedSlot(r.store, storage.KeyClients, fx.Clients)},
		{storage.KeyTasks, seedSlot(r.store, storage.KeyTasks, fx.Tasks)},
		{storage.KeyNotes, seedSlot(r.store, storage.KeyNotes, fx.Notes)},
		{storage.KeyHoldings, seedSlot(r.store, storage.KeyHoldings, fx.Holdings)},
		{storage.KeyFolios, seedSlot(r.store, storage.KeyFolios, fx.Folios)},
	} {
		wrote, err := slot.seed()
		if err != nil {
			return seeded, fmt.Errorf("failed to seed %s: %w", slot.key, err)
		}
		if !wrote {
			log.Debugw("collection present", "slot", slot.key)
			continue
		}
		seeded = append(seeded, slot.key)
		log.Infow("seeded collection", "slot", slot.key)
	}
	return seeded, nil
}

func seedSlot[T models.Record](store storage.Store, key string, items []T) func() (bool, error) {
	return func() (bool, error) {
		if items == nil {
			items = []T{}
		}
		return newCollection[T](store, key).seed(items)
	}
}
