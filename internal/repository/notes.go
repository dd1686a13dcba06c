package repository

import (
	"sort"

	"wealthdesk/internal/models"
	"wealthdesk/internal/storage"
	"wealthdesk/internal/uuid"
)

// NoteRepository persists notes newest-first.
type NoteRepository interface {
	List() ([]models.Note, error)
	ListByClient(clientID string) ([]models.Note, error)
	Get(id string) (*models.Note, error)
	Add(n models.Note) (*models.Note, error)
	Update(id string, p models.NotePatch) (*models.Note, error)
	Delete(id string) (bool, error)
}

type noteRepository struct {
	c   *collection[models.Note]
	now Clock
}

// NewNoteRepository returns a NoteRepository over the notes slot.
func NewNoteRepository(store storage.Store, now Clock) NoteRepository {
	return &noteRepository{c: newCollection[models.Note](store, storage.KeyNotes), now: now}
}

func (r *noteRepository) List() ([]models.Note, error) { return r.c.list() }

// ListByClient returns the client's notes ordered by CreatedAt, newest first.
func (r *noteRepository) ListByClient(clientID string) ([]models.Note, error) {
	notes, err := r.c.filter(byClient[models.Note](clientID))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes, nil
}

func (r *noteRepository) Get(id string) (*models.Note, error) { return r.c.get(id) }

func (r *noteRepository) Add(n models.Note) (*models.Note, error) {
	n.ID = uuid.New()
	n.CreatedAt = r.now()
	if err := r.c.add(n, true); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *noteRepository) Update(id string, p models.NotePatch) (*models.Note, error) {
	return r.c.update(id, p.Apply)
}

func (r *noteRepository) Delete(id string) (bool, error) { return r.c.remove(id) }
