package services

import (
	"strings"

	"wealthdesk/internal/csvio"
	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/pagination"
	"wealthdesk/internal/repository"
)

// clientService handles client-related business logic.
type clientService struct {
	repos *repository.Repositories
}

// NewClientService creates a new ClientServicer.
func NewClientService(repos *repository.Repositories) ClientServicer {
	return &clientService{repos: repos}
}

// requireClient returns the client with id or ErrClientNotFound.
func requireClient(repos *repository.Repositories, id string) (*models.Client, error) {
	c, err := repos.Clients.Get(id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if c == nil {
		return nil, apperrors.ErrClientNotFound
	}
	return c, nil
}

func (f ClientFilter) matches(c models.Client) bool {
	if f.Status != nil && c.Status != *f.Status {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Company), q) ||
		strings.Contains(strings.ToLower(c.Email), q)
}

// SearchClients returns every client matching filter in stored order.
func (s *clientService) SearchClients(filter ClientFilter) ([]models.Client, error) {
	all, err := s.repos.Clients.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	out := []models.Client{}
	for _, c := range all {
		if filter.matches(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListClients returns one page of the clients matching filter.
func (s *clientService) ListClients(filter ClientFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Client], error) {
	clients, err := s.SearchClients(filter)
	if err != nil {
		return nil, err
	}
	resp := pagination.Paginate(clients, page)
	return &resp, nil
}

func (s *clientService) GetClient(id string) (*models.Client, error) {
	return requireClient(s.repos, id)
}

// CreateClient validates and stores a new client. Status defaults to Lead and
// the owner to the acting staff member.
func (s *clientService) CreateClient(actor Actor, c models.Client) (*models.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Company = strings.TrimSpace(c.Company)
	c.Email = strings.TrimSpace(c.Email)
	if c.Name == "" || c.Company == "" || c.Email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name, company and email are required")
	}

	if c.Status == "" {
		c.Status = models.ClientStatusLead
	} else if _, err := models.ParseClientStatus(string(c.Status)); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	if c.Segment != "" {
		if _, err := models.ParseClientSegment(string(c.Segment)); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
	}
	if c.Owner == "" {
		c.Owner = actor.Name
	}

	created, err := s.repos.Clients.Add(c)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return created, nil
}

func (s *clientService) UpdateClient(id string, patch models.ClientPatch) (*models.Client, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name cannot be empty")
	}
	if patch.Status != nil {
		if _, err := models.ParseClientStatus(string(*patch.Status)); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
	}
	if patch.Segment != nil && *patch.Segment != "" {
		if _, err := models.ParseClientSegment(string(*patch.Segment)); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
	}

	updated, err := s.repos.Clients.Update(id, patch)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if updated == nil {
		return nil, apperrors.ErrClientNotFound
	}
	return updated, nil
}

// ArchiveClient marks the client Inactive.
func (s *clientService) ArchiveClient(id string) (*models.Client, error) {
	inactive := models.ClientStatusInactive
	return s.UpdateClient(id, models.ClientPatch{Status: &inactive})
}

// DeleteClient removes the client record only. Its tasks, notes, folios and
// holdings are left in place.
func (s *clientService) DeleteClient(actor Actor, id string) error {
	if !actor.IsAdmin() {
		return apperrors.WithMessage(apperrors.ErrForbidden, "only admins can delete clients")
	}
	ok, err := s.repos.Clients.Delete(id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		return apperrors.ErrClientNotFound
	}
	return nil
}

// ExportClients renders the clients matching filter as CSV.
func (s *clientService) ExportClients(filter ClientFilter) (string, error) {
	clients, err := s.SearchClients(filter)
	if err != nil {
		return "", err
	}
	return csvio.Export(clients), nil
}

// ImportClients adds one client per usable CSV row. Rows without a name,
// company or email are counted as skipped.
func (s *clientService) ImportClients(actor Actor, csvText string) (*ImportResult, error) {
	owner := actor.Name
	if owner == "" {
		owner = "admin"
	}
	parsed, skipped := csvio.Parse(csvText, owner)

	result := &ImportResult{Skipped: skipped, Clients: []models.Client{}}
	for _, c := range parsed {
		created, err := s.repos.Clients.Add(c)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result.Clients = append(result.Clients, *created)
	}
	result.Imported = len(result.Clients)
	return result, nil
}
