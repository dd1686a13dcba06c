package services

import (
	"strings"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/repository"
)

// noteService handles client interaction notes.
type noteService struct {
	repos *repository.Repositories
	now   repository.Clock
}

// NewNoteService creates a new NoteServicer.
func NewNoteService(repos *repository.Repositories, now repository.Clock) NoteServicer {
	return &noteService{repos: repos, now: now}
}

// GetClientNotes returns the client's notes, newest first.
func (s *noteService) GetClientNotes(clientID string) ([]models.Note, error) {
	if _, err := requireClient(s.repos, clientID); err != nil {
		return nil, err
	}
	notes, err := s.repos.Notes.ListByClient(clientID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return notes, nil
}

// AddNote records a note by actor and moves the client's last contact to now.
func (s *noteService) AddNote(actor Actor, clientID, content string) (*models.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "note content is required")
	}
	if _, err := requireClient(s.repos, clientID); err != nil {
		return nil, err
	}

	createdBy := actor.Name
	if createdBy == "" {
		createdBy = "Unknown"
	}
	note, err := s.repos.Notes.Add(models.Note{ClientID: clientID, Content: content, CreatedBy: createdBy})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	contacted := s.now()
	if _, err := s.repos.Clients.Update(clientID, models.ClientPatch{LastContact: &contacted}); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return note, nil
}

func (s *noteService) UpdateNote(id, content string) (*models.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "note content is required")
	}
	note, err := s.repos.Notes.Update(id, models.NotePatch{Content: &content})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if note == nil {
		return nil, apperrors.ErrNoteNotFound
	}
	return note, nil
}

func (s *noteService) DeleteNote(id string) error {
	ok, err := s.repos.Notes.Delete(id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		return apperrors.ErrNoteNotFound
	}
	return nil
}
