package services

import (
	"strings"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/repository"
)

// folioService handles client folios.
type folioService struct {
	repos *repository.Repositories
}

// NewFolioService creates a new FolioServicer.
func NewFolioService(repos *repository.Repositories) FolioServicer {
	return &folioService{repos: repos}
}

func (s *folioService) GetClientFolios(clientID string) ([]models.Folio, error) {
	if _, err := requireClient(s.repos, clientID); err != nil {
		return nil, err
	}
	folios, err := s.repos.Folios.ListByClient(clientID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return folios, nil
}

// AddFolio attaches a folio to the client. Folio number and provider are required.
func (s *folioService) AddFolio(clientID string, f models.Folio) (*models.Folio, error) {
	f.FolioNumber = strings.TrimSpace(f.FolioNumber)
	f.Provider = strings.TrimSpace(f.Provider)
	if f.FolioNumber == "" || f.Provider == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "folio number and provider are required")
	}
	if _, err := requireClient(s.repos, clientID); err != nil {
		return nil, err
	}

	f.ClientID = clientID
	created, err := s.repos.Folios.Add(f)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return created, nil
}

func (s *folioService) UpdateFolio(id string, patch models.FolioPatch) (*models.Folio, error) {
	if patch.FolioNumber != nil && strings.TrimSpace(*patch.FolioNumber) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "folio number cannot be empty")
	}
	f, err := s.repos.Folios.Update(id, patch)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if f == nil {
		return nil, apperrors.ErrFolioNotFound
	}
	return f, nil
}

func (s *folioService) DeleteFolio(id string) error {
	ok, err := s.repos.Folios.Delete(id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		return apperrors.ErrFolioNotFound
	}
	return nil
}
